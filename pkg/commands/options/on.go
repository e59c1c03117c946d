package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/nikki/pkg/dates"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-2-28" or --on="2/28".`)
}

// GetOn resolves the flag into a date key, empty when the flag was not set.
func (o *OnOptions) GetOn() (dates.Key, error) {
	return parseDate(o.OnString)
}

func parseDate(s string) (dates.Key, error) {
	if s == "" {
		return "", nil
	}
	t, err := time.Parse(layoutISO, s)
	if err != nil {
		t, err = time.Parse(layoutISOShort, s)
		if err != nil {
			return "", err
		}
		t = t.AddDate(time.Now().Year(), 0, 0)
	}
	return dates.ToKey(t), nil
}
