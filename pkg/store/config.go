package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultStreakWindow bounds the backward streak scan when the config does
// not override it.
const DefaultStreakWindow = 30

// Config exposes the settings the store and runners need.
type Config interface {
	BasePath() string
	StreakWindow() int
}

// LoadConfig reads .nikki config (yaml implicit) from the working directory
// or NIKKI_CONFIG_PATH, with NIKKI_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.nikki.db")
	viper.SetDefault("streak-window", DefaultStreakWindow)
	viper.SetConfigName(".nikki")
	viper.SetEnvPrefix("NIKKI")
	viper.AutomaticEnv()

	if override := os.Getenv("NIKKI_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	window := viper.GetInt("streak-window")
	if window <= 0 {
		window = DefaultStreakWindow
	}

	return &fileConfig{Path: path, Window: window}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	Window int    `json:"streak-window"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) StreakWindow() int {
	return f.Window
}
