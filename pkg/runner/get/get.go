// Package get provides runners that list tasks and occurrences.
package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/nikki/pkg/app"
	"tableflip.dev/nikki/pkg/dates"
	"tableflip.dev/nikki/pkg/printers"
)

// Get prints the occurrences for one day, or every task with --all.
type Get struct {
	On      dates.Key // defaults to the selected date
	All     bool
	ShowID  bool
	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no state engine")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.All {
		pp.Title("all tasks")
		pp.Tasks(n.Service.AllTasks())
		return nil
	}

	day := n.On
	if day == "" {
		day = n.Service.SelectedDate()
	}
	if !dates.Valid(day) {
		return fmt.Errorf("get: %q is not a date", day)
	}

	pp.DayList(day, n.Service.OccurrencesOn(day), func(id string) bool {
		return n.Service.IsCompleted(id, day)
	})
	return nil
}
