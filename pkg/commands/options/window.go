package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/nikki/pkg/timeutil"
)

// WindowOptions
type WindowOptions struct {
	Window string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", "",
		`Bound the streak scan, example: --window="4w" or --window=30.`)
}

// GetWindow resolves the flag into a day count, 0 when the flag was not set.
func (o *WindowOptions) GetWindow() (int, error) {
	days, _, err := timeutil.ParseWindow(o.Window)
	return days, err
}
