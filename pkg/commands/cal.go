package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/nikki/pkg/commands/options"
	"tableflip.dev/nikki/pkg/dates"
	"tableflip.dev/nikki/pkg/runner/cal"
)

func addCal(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "cal",
		Short: "Draw the month as a completion calendar",
		Example: `
nikki cal
nikki cal --on="2026-7-1"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			var month time.Time
			if on != "" {
				if month, err = dates.FromKey(on); err != nil {
					return output.HandleError(err)
				}
			}
			s, _, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			r := cal.Cal{
				On:      month,
				Service: s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
