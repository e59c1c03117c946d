package options

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/nikki/pkg/dates"
	"tableflip.dev/nikki/pkg/task"
)

// RuleOptions captures the recurrence flags. At most one may be set; none
// means a one-time task.
type RuleOptions struct {
	Daily    bool
	Weekly   string
	Weekdays bool
	Weekends bool
}

func AddRuleArgs(cmd *cobra.Command, o *RuleOptions) {
	cmd.Flags().BoolVar(&o.Daily, "daily", false,
		"Repeat every day.")
	cmd.Flags().StringVar(&o.Weekly, "weekly", "",
		`Repeat on the named days, example: --weekly="mon,wed,fri".`)
	cmd.Flags().BoolVar(&o.Weekdays, "weekdays", false,
		"Repeat Monday through Friday.")
	cmd.Flags().BoolVar(&o.Weekends, "weekends", false,
		"Repeat Saturday and Sunday.")
}

// GetRule resolves the flags into a recurrence rule, nil when none was set.
func (o *RuleOptions) GetRule() (*task.Rule, error) {
	set := 0
	for _, b := range []bool{o.Daily, o.Weekly != "", o.Weekdays, o.Weekends} {
		if b {
			set++
		}
	}
	if set > 1 {
		return nil, errors.New("too many recurrence flags set, confused")
	}

	switch {
	case o.Daily:
		return task.Daily(), nil
	case o.Weekdays:
		return task.Weekdays(), nil
	case o.Weekends:
		return task.Weekends(), nil
	case o.Weekly != "":
		var days []int
		for _, name := range strings.Split(o.Weekly, ",") {
			d, err := dates.ParseWeekday(strings.TrimSpace(name))
			if err != nil {
				return nil, err
			}
			days = append(days, d)
		}
		return task.Weekly(days...), nil
	}
	return nil, nil
}
