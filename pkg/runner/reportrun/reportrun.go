// Package reportrun provides the runner that renders period reports.
package reportrun

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/nikki/pkg/app"
	"tableflip.dev/nikki/pkg/dates"
	"tableflip.dev/nikki/pkg/printers"
	"tableflip.dev/nikki/pkg/report"
)

// Period names for the report window flag.
const (
	PeriodWeek      = "week"
	PeriodPrevWeek  = "prev-week"
	PeriodMonth     = "month"
	PeriodPrevMonth = "prev-month"
)

// Report prints performance statistics for a window: per-task rates and the
// best day, plus a trend comparison and streak when a task id is given.
type Report struct {
	Period   string    // one of the Period constants; ignored when From/To set
	From, To dates.Key // custom inclusive range
	TaskID   string    // optional single-task focus
	Window   int       // streak scan bound
	Service  *app.Service

	// Now is the clock the period arithmetic uses; defaults to time.Now.
	Now func() time.Time
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no state engine")
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}

	days, previous, label, err := n.resolveWindow(now())
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(label)

	if n.TaskID != "" {
		t, ok := n.Service.TaskByID(n.TaskID)
		if !ok {
			return fmt.Errorf("no task with id %q", n.TaskID)
		}
		perf := report.TaskPerformance(n.Service, n.TaskID, days)
		pp.Performance([]report.Row{{TaskID: t.ID, Title: t.Title, Performance: perf}})

		if len(previous) > 0 {
			pp.Trend(report.CompareTrend(n.Service, n.TaskID, days, previous))
		}

		if len(days) > 0 {
			end := days[len(days)-1]
			streak, err := report.Streak(n.Service, n.TaskID, end, n.Window)
			if err != nil {
				return err
			}
			pp.Streak(t.Title, streak)
		}
		return nil
	}

	pp.Performance(report.AllTasksPerformance(n.Service, days))
	if best, ok := report.BestDay(n.Service, days); ok {
		pp.BestDay(best)
	}
	return nil
}

// resolveWindow maps the period flag (or custom range) to the report days
// and the equal-length period immediately preceding them.
func (n *Report) resolveWindow(now time.Time) (days, previous []dates.Key, label string, err error) {
	if n.From != "" || n.To != "" {
		if n.From == "" || n.To == "" {
			return nil, nil, "", errors.New("custom range needs both --from and --to")
		}
		days, err = dates.Range(n.From, n.To)
		if err != nil {
			return nil, nil, "", err
		}
		previous = precedingRange(days)
		return days, previous, fmt.Sprintf("%s .. %s", n.From, n.To), nil
	}

	switch n.Period {
	case PeriodWeek, "":
		return report.CurrentWeek(now), report.PreviousWeek(now), "this week", nil
	case PeriodPrevWeek:
		cur := report.PreviousWeek(now)
		return cur, precedingRange(cur), "last week", nil
	case PeriodMonth:
		return report.CurrentMonth(now), report.PreviousMonth(now), "this month", nil
	case PeriodPrevMonth:
		cur := report.PreviousMonth(now)
		return cur, precedingRange(cur), "last month", nil
	default:
		return nil, nil, "", fmt.Errorf("unknown period %q", n.Period)
	}
}

// precedingRange returns the window of equal length that ends the day
// before days begins.
func precedingRange(days []dates.Key) []dates.Key {
	if len(days) == 0 {
		return nil
	}
	start, err := dates.FromKey(days[0])
	if err != nil {
		return nil
	}
	prevEnd := start.AddDate(0, 0, -1)
	prevStart := start.AddDate(0, 0, -len(days))
	prev, err := dates.Range(dates.ToKey(prevStart), dates.ToKey(prevEnd))
	if err != nil {
		return nil
	}
	return prev
}
