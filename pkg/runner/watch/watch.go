// Package watch provides the runner that follows external store changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/nikki/pkg/app"
	"tableflip.dev/nikki/pkg/dates"
	"tableflip.dev/nikki/pkg/printers"
	"tableflip.dev/nikki/pkg/store"
)

// Watch reprints the day list whenever the snapshot changes on disk, e.g.
// when another nikki invocation saves. Runs until ctx is cancelled.
type Watch struct {
	On          dates.Key // defaults to the selected date
	ShowID      bool
	Persistence store.Persistence
	Service     *app.Service
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not watch, no state engine")
	}
	if n.Persistence == nil {
		return errors.New("can not watch, no persistence")
	}

	day := n.On
	if day == "" {
		day = n.Service.SelectedDate()
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	render := func() {
		fmt.Print("\033[H\033[2J") // clear screen between refreshes
		fmt.Println("")
		pp.DayList(day, n.Service.OccurrencesOn(day), func(id string) bool {
			return n.Service.IsCompleted(id, day)
		})
	}

	unsubscribe := n.Service.Subscribe(render)
	defer unsubscribe()
	render()

	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if err := n.Service.Reload(); err != nil {
				fmt.Fprintf(os.Stderr, "watch: reload: %v\n", err)
			}
		}
	}
}
