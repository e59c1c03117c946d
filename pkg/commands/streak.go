package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nikki/pkg/commands/options"
	"tableflip.dev/nikki/pkg/runner/streak"
)

func addStreak(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "streak ID",
		Short: "Show the run of consecutive completed days for a task",
		Example: `
nikki streak 1b9d6bcd
nikki streak 1b9d6bcd --on="2026-8-1"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			window, err := wo.GetWindow()
			if err != nil {
				return output.HandleError(err)
			}
			s, _, cfg, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			if window == 0 {
				window = cfg.StreakWindow()
			}
			r := streak.Streak{
				ID:      args[0],
				End:     on,
				Window:  window,
				Service: s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddWindowArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}
