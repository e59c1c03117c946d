// Package streak provides the runner that prints one task's streak.
package streak

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

// Streak counts consecutive completed occurrences backward from End.
type Streak struct {
	ID      string
	End     dates.Key // defaults to today
	Window  int
	Service *app.Service
}

func (n *Streak) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not compute streak, no state engine")
	}
	t, ok := n.Service.TaskByID(n.ID)
	if !ok {
		return fmt.Errorf("no task with id %q", n.ID)
	}

	end := n.End
	if end == "" {
		end = dates.ToKey(time.Now())
	}

	days, err := report.Streak(n.Service, n.ID, end, n.Window)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Streak(t.Title, days)
	return nil
}
