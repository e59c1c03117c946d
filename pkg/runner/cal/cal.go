// Package cal provides the runner that draws the month completion grid.
package cal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/nikki/pkg/app"
	"tableflip.dev/nikki/pkg/dates"
	"tableflip.dev/nikki/pkg/printers"
)

// Cal renders the month containing On with per-day completion shading.
type Cal struct {
	On      time.Time // zero means the current month
	Service *app.Service
}

func (n *Cal) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not draw calendar, no state engine")
	}

	on := n.On
	if on.IsZero() {
		on = time.Now()
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Calendar(on, func(day dates.Key) (int, int) {
		completed, total := 0, 0
		for _, t := range n.Service.OccurrencesOn(day) {
			total++
			if n.Service.IsCompleted(t.ID, day) {
				completed++
			}
		}
		return completed, total
	})
	return nil
}
