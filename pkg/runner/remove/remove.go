// Package remove provides the runner for the three removal flavors: hide
// for one day, archive, and hard delete.
package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/nikki/pkg/app"
	"tableflip.dev/nikki/pkg/dates"
)

// Remove suppresses, archives, or deletes a task. With On set only that
// day's occurrence is hidden; with Archive the task is soft-deleted and
// keeps its history; otherwise the task and all its records are purged.
type Remove struct {
	ID      string
	On      dates.Key
	Archive bool
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no state engine")
	}
	t, ok := n.Service.TaskByID(n.ID)
	if !ok {
		return fmt.Errorf("no task with id %q", n.ID)
	}

	switch {
	case n.On != "":
		if err := n.Service.HideOccurrence(n.ID, n.On); err != nil {
			return err
		}
		fmt.Printf("hidden %q on %s\n", t.Title, n.On)
	case n.Archive:
		n.Service.ArchiveTask(n.ID)
		fmt.Printf("archived %q\n", t.Title)
	default:
		n.Service.DeleteTask(n.ID)
		fmt.Printf("deleted %q\n", t.Title)
	}

	if saveErr := n.Service.LastSaveErr(); saveErr != nil {
		return fmt.Errorf("removed but not saved: %w", saveErr)
	}
	return nil
}
