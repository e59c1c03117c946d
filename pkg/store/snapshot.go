package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"tableflip.dev/nikki/pkg/dates"
	"tableflip.dev/nikki/pkg/diary"
	"tableflip.dev/nikki/pkg/task"
)

// CurrentVersion tags the persisted blob schema. Bump it when a new field is
// added; every new field must have a defined fallback so old blobs always
// migrate forward.
const CurrentVersion = "1.1.0"

// ErrInvalidSnapshot signals a blob that carries the current version tag but
// fails structural validation. Callers fall back to a default snapshot.
var ErrInvalidSnapshot = errors.New("store: invalid snapshot")

// Snapshot is the full durable state: tasks, per-day completion, diary
// entries, and the category list. Selected date and per-day hidden
// occurrences are session state and deliberately not part of the schema.
type Snapshot struct {
	Tasks        []*task.Task
	Completion   map[dates.Key]map[string]bool
	DiaryEntries []*diary.Entry
	Categories   []string
}

// NewDefaultSnapshot returns an empty snapshot with the seed categories.
func NewDefaultSnapshot() *Snapshot {
	return &Snapshot{
		Tasks:        []*task.Task{},
		Completion:   map[dates.Key]map[string]bool{},
		DiaryEntries: []*diary.Entry{},
		Categories:   diary.DefaultCategories(),
	}
}

// blob is the wire form of a snapshot.
type blob struct {
	Version      string                        `json:"version"`
	Tasks        []*task.Task                  `json:"tasks"`
	Completion   map[dates.Key]map[string]bool `json:"completion"`
	DiaryEntries []*diary.Entry                `json:"diaryEntries"`
	Categories   []string                      `json:"diaryCategories"`
	LastUpdated  int64                         `json:"lastUpdated"`
}

func (b *blob) snapshot() *Snapshot {
	s := &Snapshot{
		Tasks:        b.Tasks,
		Completion:   b.Completion,
		DiaryEntries: b.DiaryEntries,
		Categories:   b.Categories,
	}
	if s.Tasks == nil {
		s.Tasks = []*task.Task{}
	}
	if s.Completion == nil {
		s.Completion = map[dates.Key]map[string]bool{}
	}
	if s.DiaryEntries == nil {
		s.DiaryEntries = []*diary.Entry{}
	}
	if len(s.Categories) == 0 {
		s.Categories = diary.DefaultCategories()
	}
	return s
}

// validateBlob checks the structural shape of a current-version payload:
// tasks must be a JSON array and completion a JSON object. It does not
// attempt repair; repair is the legacy path's job.
func validateBlob(fields map[string]json.RawMessage) error {
	raw, ok := fields["tasks"]
	if !ok || !isJSONArray(raw) {
		return fmt.Errorf("%w: tasks is not an array", ErrInvalidSnapshot)
	}
	raw, ok = fields["completion"]
	if !ok || !isJSONObject(raw) {
		return fmt.Errorf("%w: completion is not an object", ErrInvalidSnapshot)
	}
	return nil
}

// coerceLegacy rebuilds a valid snapshot from an arbitrarily malformed or
// partial payload. Every field is salvaged independently and falls back to
// its default; the function never fails.
func coerceLegacy(fields map[string]json.RawMessage) *Snapshot {
	s := NewDefaultSnapshot()
	if fields == nil {
		return s
	}

	if raw, ok := fields["tasks"]; ok {
		s.Tasks = salvageList[task.Task](raw)
	}
	if raw, ok := fields["completion"]; ok {
		var completion map[dates.Key]map[string]bool
		if err := json.Unmarshal(raw, &completion); err == nil && completion != nil {
			s.Completion = completion
		}
	}
	if raw, ok := fields["diaryEntries"]; ok {
		s.DiaryEntries = salvageList[diary.Entry](raw)
	}
	if raw, ok := fields["diaryCategories"]; ok {
		var categories []string
		if err := json.Unmarshal(raw, &categories); err == nil && len(categories) > 0 {
			s.Categories = categories
		}
	}
	return s
}

// salvageList decodes a JSON array element by element, dropping entries that
// do not decode instead of rejecting the whole list. A non-array value
// yields an empty list.
func salvageList[T any](raw json.RawMessage) []*T {
	out := []*T{}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return out
	}
	for _, elem := range elems {
		v := new(T)
		if err := json.Unmarshal(elem, v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

func isJSONArray(raw json.RawMessage) bool {
	var v []json.RawMessage
	return json.Unmarshal(raw, &v) == nil
}

func isJSONObject(raw json.RawMessage) bool {
	var v map[string]json.RawMessage
	return json.Unmarshal(raw, &v) == nil && string(trimSpace(raw)) != "null"
}

func trimSpace(raw json.RawMessage) json.RawMessage {
	start, end := 0, len(raw)
	for start < end && isSpace(raw[start]) {
		start++
	}
	for end > start && isSpace(raw[end-1]) {
		end--
	}
	return raw[start:end]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
