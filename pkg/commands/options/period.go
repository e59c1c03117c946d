package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/nikki/pkg/dates"
	"tableflip.dev/nikki/pkg/runner/reportrun"
)

// PeriodOptions captures the report window flags.
type PeriodOptions struct {
	Period string
	From   string
	To     string
}

func AddPeriodArgs(cmd *cobra.Command, o *PeriodOptions) {
	cmd.Flags().StringVarP(&o.Period, "period", "p", reportrun.PeriodWeek,
		fmt.Sprintf("Report period. One of %q, %q, %q, %q.",
			reportrun.PeriodWeek, reportrun.PeriodPrevWeek,
			reportrun.PeriodMonth, reportrun.PeriodPrevMonth))
	cmd.Flags().StringVar(&o.From, "from", "",
		`Custom range start, example: --from="2026-8-1".`)
	cmd.Flags().StringVar(&o.To, "to", "",
		`Custom range end, inclusive.`)
}

func (o *PeriodOptions) GetFrom() (dates.Key, error) { return parseDate(o.From) }

func (o *PeriodOptions) GetTo() (dates.Key, error) { return parseDate(o.To) }
