package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nikki/pkg/commands/options"
	"tableflip.dev/nikki/pkg/runner/reportrun"
)

func addReport(topLevel *cobra.Command) {
	po := &options.PeriodOptions{}
	io := &options.IDOptions{}
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show achievement rates for a period",
		Example: `
nikki report
nikki report --period=month
nikki report --from="2026-8-1" --to="2026-8-15"
nikki report --id 1b9d6bcd
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := po.GetFrom()
			if err != nil {
				return output.HandleError(err)
			}
			to, err := po.GetTo()
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
			r := reportrun.Report{
				Period:  po.Period,
				From:    from,
				To:      to,
				TaskID:  io.ID,
				Window:  window,
				Service: s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddPeriodArgs(cmd, po)
	options.AddIDArgs(cmd, io)
	options.AddWindowArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}
