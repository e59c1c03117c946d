// Package done provides the runner that records per-day completion.
package done

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/nikki/pkg/app"
	"tableflip.dev/nikki/pkg/dates"
	"tableflip.dev/nikki/pkg/printers"
)

// Done sets, unsets, or clears the completion flag for one (task, day) pair.
type Done struct {
	ID      string
	On      dates.Key // defaults to the selected date
	Undo    bool      // mark not done instead of done
	Clear   bool      // remove the record for that day entirely
	ShowID  bool
	Service *app.Service
}

func (n *Done) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no state engine")
	}
	if _, ok := n.Service.TaskByID(n.ID); !ok {
		return fmt.Errorf("no task with id %q", n.ID)
	}

	day := n.On
	if day == "" {
		day = n.Service.SelectedDate()
	}

	if n.Clear {
		n.Service.DeleteCompletionForDate(n.ID, day)
	} else if err := n.Service.SetCompletion(n.ID, day, !n.Undo); err != nil {
		return err
	}
	if saveErr := n.Service.LastSaveErr(); saveErr != nil {
		return fmt.Errorf("completion recorded but not saved: %w", saveErr)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.DayList(day, n.Service.OccurrencesOn(day), func(id string) bool {
		return n.Service.IsCompleted(id, day)
	})
	return nil
}
