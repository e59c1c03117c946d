// Package journal provides the runners for diary entries and categories.
package journal

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/nikki/pkg/app"
	"tableflip.dev/nikki/pkg/dates"
	"tableflip.dev/nikki/pkg/diary"
	"tableflip.dev/nikki/pkg/printers"
)

// Add appends a diary entry under an existing category.
type Add struct {
	On       dates.Key // defaults to the selected date
	Category string
	Content  string
	ShowID   bool
	Service  *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no state engine")
	}
	if !n.Service.HasCategory(n.Category) {
		return fmt.Errorf("unknown category %q, see: nikki diary categories", n.Category)
	}

	day := n.On
	if day == "" {
		day = n.Service.SelectedDate()
	}
	if _, err := n.Service.AddDiaryEntry(day, n.Category, n.Content); err != nil {
		return err
	}
	if saveErr := n.Service.LastSaveErr(); saveErr != nil {
		return fmt.Errorf("entry added but not saved: %w", saveErr)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title(string(day))
	pp.Diary(n.Service.DiaryEntriesOn(day))
	return nil
}

// Get prints diary entries: one day's, one category's, or all newest first.
type Get struct {
	On       dates.Key
	Category string
	All      bool
	ShowID   bool
	Service  *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no state engine")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	switch {
	case n.All:
		pp.Title("diary")
		pp.Diary(n.Service.AllDiaryEntries())
	case n.Category != "":
		pp.Title(n.Category)
		pp.Diary(n.Service.DiaryEntriesByCategory(n.Category))
	default:
		day := n.On
		if day == "" {
			day = n.Service.SelectedDate()
		}
		pp.Title(string(day))
		pp.Diary(n.Service.DiaryEntriesOn(day))
	}
	return nil
}

// Edit rewrites a diary entry: content only, or date and category too.
type Edit struct {
	ID       string
	Content  string
	On       dates.Key // with Category, switches to a full update
	Category string
	Service  *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no state engine")
	}

	var err error
	if n.On != "" || n.Category != "" {
		entry, found := findEntry(n.Service, n.ID)
		if !found {
			return fmt.Errorf("no diary entry with id %q", n.ID)
		}
		day := n.On
		if day == "" {
			day = entry.Date
		}
		category := n.Category
		if category == "" {
			category = entry.Category
		}
		if !n.Service.HasCategory(category) {
			return fmt.Errorf("unknown category %q", category)
		}
		err = n.Service.UpdateDiaryEntry(n.ID, day, category, n.Content)
	} else {
		err = n.Service.UpdateDiaryContent(n.ID, n.Content)
	}
	if err != nil {
		return err
	}
	if saveErr := n.Service.LastSaveErr(); saveErr != nil {
		return fmt.Errorf("entry updated but not saved: %w", saveErr)
	}
	return nil
}

// Remove deletes one diary entry.
type Remove struct {
	ID      string
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no state engine")
	}
	if _, found := findEntry(n.Service, n.ID); !found {
		return fmt.Errorf("no diary entry with id %q", n.ID)
	}
	n.Service.DeleteDiaryEntry(n.ID)
	if saveErr := n.Service.LastSaveErr(); saveErr != nil {
		return fmt.Errorf("entry removed but not saved: %w", saveErr)
	}
	return nil
}

// Categories lists the category set, optionally adding or removing one
// label first.
type Categories struct {
	Add     string
	Remove  string
	Service *app.Service
}

func (n *Categories) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list categories, no state engine")
	}

	if n.Add != "" {
		n.Service.AddDiaryCategory(n.Add)
	}
	if n.Remove != "" {
		n.Service.DeleteDiaryCategory(n.Remove)
	}
	if saveErr := n.Service.LastSaveErr(); saveErr != nil {
		return fmt.Errorf("categories changed but not saved: %w", saveErr)
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Categories(n.Service.Categories())
	return nil
}

func findEntry(s *app.Service, id string) (diary.Entry, bool) {
	for _, e := range s.AllDiaryEntries() {
		if e.ID == id {
			return e, true
		}
	}
	return diary.Entry{}, false
}
