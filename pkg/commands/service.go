package commands

import (
	"errors"
	"fmt"
	"os"

	"tableflip.dev/nikki/pkg/app"
	"tableflip.dev/nikki/pkg/store"
)

// loadService opens the configured store and builds the state engine on top
// of it. A snapshot that fails validation is reported but not fatal, the
// engine starts from the default snapshot and overwrites on the next save.
func loadService() (*app.Service, store.Persistence, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	p, err := store.Open(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	s, err := app.New(p)
	if err != nil {
		if errors.Is(err, store.ErrInvalidSnapshot) {
			fmt.Fprintf(os.Stderr, "warning: stored data unreadable, starting fresh: %v\n", err)
			return app.NewFromSnapshot(p, store.NewDefaultSnapshot()), p, cfg, nil
		}
		return nil, nil, nil, err
	}
	return s, p, cfg, nil
}
