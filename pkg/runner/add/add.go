// Package add provides the runner that creates tasks.
package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/nikki/pkg/app"
	"tableflip.dev/nikki/pkg/dates"
	"tableflip.dev/nikki/pkg/printers"
	"tableflip.dev/nikki/pkg/task"
)

// Add creates a one-time or recurring task and reprints the affected day.
type Add struct {
	Title   string
	Rule    *task.Rule // nil means one-time, occurring on On
	On      dates.Key  // target date; defaults to the selected date
	ShowID  bool
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no state engine")
	}

	day := n.On
	if day == "" {
		day = n.Service.SelectedDate()
	}

	var err error
	if n.Rule != nil {
		_, err = n.Service.AddRecurringTask(n.Title, n.Rule)
	} else {
		_, err = n.Service.AddOneTimeTask(n.Title, day)
	}
	if err != nil {
		return err
	}
	if saveErr := n.Service.LastSaveErr(); saveErr != nil {
		return fmt.Errorf("task added but not saved: %w", saveErr)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.DayList(day, n.Service.OccurrencesOn(day), func(id string) bool {
		return n.Service.IsCompleted(id, day)
	})
	return nil
}
