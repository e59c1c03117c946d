// Package edit provides the runner that retitles a task.
package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/nikki/pkg/app"
)

// Edit replaces a task's title in place.
type Edit struct {
	ID      string
	Title   string
	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no state engine")
	}
	if _, ok := n.Service.TaskByID(n.ID); !ok {
		return fmt.Errorf("no task with id %q", n.ID)
	}
	if err := n.Service.EditTask(n.ID, n.Title); err != nil {
		return err
	}
	if saveErr := n.Service.LastSaveErr(); saveErr != nil {
		return fmt.Errorf("edited but not saved: %w", saveErr)
	}
	t, _ := n.Service.TaskByID(n.ID)
	fmt.Printf("renamed to %q\n", t.Title)
	return nil
}
