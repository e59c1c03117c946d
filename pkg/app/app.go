// Package app hosts the state engine: the single writer of the snapshot.
// Every mutation persists the full snapshot, then notifies subscribers in
// registration order. Queries hand out defensive copies, never live state.
package app

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/nikki/pkg/dates"
	"tableflip.dev/nikki/pkg/diary"
	"tableflip.dev/nikki/pkg/store"
	"tableflip.dev/nikki/pkg/task"
)

var (
	// ErrEmptyTitle rejects a task title that trims to nothing. Enforced on
	// every write path, add and edit alike.
	ErrEmptyTitle = errors.New("app: task title is empty")
	// ErrEmptyContent rejects a diary entry whose content trims to nothing.
	ErrEmptyContent = errors.New("app: diary content is empty")
)

// Listener is a synchronous observer callback invoked after every mutation.
type Listener func()

type subscriber struct {
	id int
	fn Listener
}

// Service owns the canonical snapshot. It is single-writer and synchronous:
// a mutating call persists and notifies before it returns, so observable and
// durable state never diverge for longer than one call.
type Service struct {
	p    store.Persistence
	snap *store.Snapshot

	selected dates.Key
	hidden   map[dates.Key]map[string]bool

	subs    []subscriber
	nextSub int

	notifying bool
	renotify  bool

	saveErr error

	now   func() time.Time
	newID func() string
}

// New loads the stored snapshot and returns an engine over it. A load error
// is returned as-is; callers that want to keep going should fall back to
// NewFromSnapshot with a default snapshot.
func New(p store.Persistence) (*Service, error) {
	snap, err := p.Load()
	if err != nil {
		return nil, err
	}
	return NewFromSnapshot(p, snap), nil
}

// NewFromSnapshot wraps an engine around an already-constructed snapshot.
func NewFromSnapshot(p store.Persistence, snap *store.Snapshot) *Service {
	if snap == nil {
		snap = store.NewDefaultSnapshot()
	}
	s := &Service{
		p:      p,
		snap:   snap,
		hidden: make(map[dates.Key]map[string]bool),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	s.selected = dates.ToKey(s.now())
	return s
}

// Subscribe registers fn for change notifications and returns its
// unsubscribe function. Listeners run synchronously, in registration order.
func (s *Service) Subscribe(fn Listener) func() {
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Reload replaces the in-memory snapshot with the stored one, for example
// after another process saved. Session state (selected date, hidden
// occurrences) is kept. Notifies without persisting.
func (s *Service) Reload() error {
	snap, err := s.p.Load()
	if err != nil {
		return err
	}
	s.snap = snap
	s.emit(false)
	return nil
}

// LastSaveErr reports the outcome of the most recent persistence attempt.
// A failed save leaves the in-memory state correct but not durable; callers
// surface the error to the user instead of crashing.
func (s *Service) LastSaveErr() error {
	return s.saveErr
}

// emit persists (unless the change is session-only) and then notifies.
// Re-entrant mutations from inside a listener are legal; their notification
// passes are coalesced into the outer loop so the stack cannot grow
// unboundedly.
func (s *Service) emit(persist bool) {
	if persist {
		s.saveErr = s.p.Save(s.snap)
	}
	if s.notifying {
		s.renotify = true
		return
	}
	s.notifying = true
	for {
		subs := append([]subscriber(nil), s.subs...)
		for _, sub := range subs {
			sub.fn()
		}
		if !s.renotify {
			break
		}
		s.renotify = false
	}
	s.notifying = false
}

// SelectedDate returns the session's focused day.
func (s *Service) SelectedDate() dates.Key {
	return s.selected
}

// SetSelectedDate moves the session focus. It notifies but never persists;
// focus is not durable content.
func (s *Service) SetSelectedDate(day dates.Key) error {
	if _, err := dates.FromKey(day); err != nil {
		return err
	}
	s.selected = day
	s.emit(false)
	return nil
}

// AddRecurringTask creates a task governed by a repeat rule.
func (s *Service) AddRecurringTask(title string, rule *task.Rule) (task.Task, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return task.Task{}, ErrEmptyTitle
	}
	t := &task.Task{
		ID:        s.newID(),
		Title:     trimmed,
		Rule:      rule,
		CreatedAt: s.now().UnixMilli(),
	}
	s.snap.Tasks = append(s.snap.Tasks, t)
	s.emit(true)
	return t.Clone(), nil
}

// AddOneTimeTask creates a task that occurs only on the given day.
func (s *Service) AddOneTimeTask(title string, on dates.Key) (task.Task, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return task.Task{}, ErrEmptyTitle
	}
	if _, err := dates.FromKey(on); err != nil {
		return task.Task{}, err
	}
	t := &task.Task{
		ID:         s.newID(),
		Title:      trimmed,
		TargetDate: on,
		CreatedAt:  s.now().UnixMilli(),
	}
	s.snap.Tasks = append(s.snap.Tasks, t)
	s.emit(true)
	return t.Clone(), nil
}

// EditTask replaces the task title. Missing ids are a no-op; an empty
// replacement title is rejected.
func (s *Service) EditTask(id, title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrEmptyTitle
	}
	t := s.findTask(id)
	if t == nil {
		return nil
	}
	t.Title = trimmed
	s.emit(true)
	return nil
}

// ArchiveTask soft-deletes: the task stops occurring everywhere but keeps
// its identity and history.
func (s *Service) ArchiveTask(id string) {
	t := s.findTask(id)
	if t == nil {
		return
	}
	t.Archived = true
	s.emit(true)
}

// DeleteTask hard-deletes the task and purges its completion and
// hidden-occurrence records on every date.
func (s *Service) DeleteTask(id string) {
	idx := -1
	for i, t := range s.snap.Tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	s.snap.Tasks = append(s.snap.Tasks[:idx], s.snap.Tasks[idx+1:]...)

	for day, byTask := range s.snap.Completion {
		delete(byTask, id)
		if len(byTask) == 0 {
			delete(s.snap.Completion, day)
		}
	}
	for day, byTask := range s.hidden {
		delete(byTask, id)
		if len(byTask) == 0 {
			delete(s.hidden, day)
		}
	}
	s.emit(true)
}

// SetCompletion upserts the done flag for one (task, day) pair.
func (s *Service) SetCompletion(id string, day dates.Key, done bool) error {
	if _, err := dates.FromKey(day); err != nil {
		return err
	}
	byTask, ok := s.snap.Completion[day]
	if !ok {
		byTask = make(map[string]bool)
		s.snap.Completion[day] = byTask
	}
	byTask[id] = done
	s.emit(true)
	return nil
}

// DeleteCompletionForDate clears the completion flag for one day only,
// leaving the task and its schedule intact.
func (s *Service) DeleteCompletionForDate(id string, day dates.Key) {
	byTask, ok := s.snap.Completion[day]
	if !ok {
		return
	}
	if _, ok := byTask[id]; !ok {
		return
	}
	delete(byTask, id)
	if len(byTask) == 0 {
		delete(s.snap.Completion, day)
	}
	s.emit(true)
}

// HideOccurrence suppresses one recurring occurrence for one day without
// touching the rule or any other date. Hidden occurrences are session state
// and are not persisted.
func (s *Service) HideOccurrence(id string, day dates.Key) error {
	if _, err := dates.FromKey(day); err != nil {
		return err
	}
	byTask, ok := s.hidden[day]
	if !ok {
		byTask = make(map[string]bool)
		s.hidden[day] = byTask
	}
	byTask[id] = true
	s.emit(true)
	return nil
}

// IsOccurrenceHidden reports whether the occurrence is suppressed that day.
func (s *Service) IsOccurrenceHidden(id string, day dates.Key) bool {
	return s.hidden[day][id]
}

// IsCompleted reports the completion flag for one (task, day) pair; absence
// means not completed.
func (s *Service) IsCompleted(id string, day dates.Key) bool {
	return s.snap.Completion[day][id]
}

// OccurrencesOn resolves which tasks occur on the given day. Resolution is
// computed fresh on every call, never materialized: archived tasks are
// skipped, per-day hidden tasks are skipped, one-time tasks match their
// target date, and recurring tasks match by weekday.
func (s *Service) OccurrencesOn(day dates.Key) []task.Task {
	t, err := dates.FromKey(day)
	if err != nil {
		return nil
	}
	weekday := dates.Weekday(t)

	out := make([]task.Task, 0)
	for _, candidate := range s.snap.Tasks {
		if candidate.Archived {
			continue
		}
		if s.IsOccurrenceHidden(candidate.ID, day) {
			continue
		}
		if candidate.OccursOn(day, weekday) {
			out = append(out, candidate.Clone())
		}
	}
	return out
}

// AllTasks returns copies of every non-archived task.
func (s *Service) AllTasks() []task.Task {
	out := make([]task.Task, 0, len(s.snap.Tasks))
	for _, t := range s.snap.Tasks {
		if t.Archived {
			continue
		}
		out = append(out, t.Clone())
	}
	return out
}

// TaskByID returns a copy of the task, archived or not.
func (s *Service) TaskByID(id string) (task.Task, bool) {
	t := s.findTask(id)
	if t == nil {
		return task.Task{}, false
	}
	return t.Clone(), true
}

func (s *Service) findTask(id string) *task.Task {
	for _, t := range s.snap.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// AddDiaryEntry appends a journal note for the given day. Category
// membership is the caller's concern; the engine records what it is given.
func (s *Service) AddDiaryEntry(day dates.Key, category, content string) (diary.Entry, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return diary.Entry{}, ErrEmptyContent
	}
	if _, err := dates.FromKey(day); err != nil {
		return diary.Entry{}, err
	}
	e := &diary.Entry{
		ID:        s.newID(),
		Date:      day,
		Category:  category,
		Content:   trimmed,
		CreatedAt: s.now().UnixMilli(),
	}
	s.snap.DiaryEntries = append(s.snap.DiaryEntries, e)
	s.emit(true)
	return *e, nil
}

// UpdateDiaryEntry rewrites date, category, and content of an entry.
// Missing ids are a no-op.
func (s *Service) UpdateDiaryEntry(id string, day dates.Key, category, content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return ErrEmptyContent
	}
	if _, err := dates.FromKey(day); err != nil {
		return err
	}
	e := s.findDiaryEntry(id)
	if e == nil {
		return nil
	}
	e.Date = day
	e.Category = category
	e.Content = trimmed
	e.UpdatedAt = s.now().UnixMilli()
	s.emit(true)
	return nil
}

// UpdateDiaryContent rewrites only the content of an entry.
func (s *Service) UpdateDiaryContent(id, content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return ErrEmptyContent
	}
	e := s.findDiaryEntry(id)
	if e == nil {
		return nil
	}
	e.Content = trimmed
	e.UpdatedAt = s.now().UnixMilli()
	s.emit(true)
	return nil
}

// DeleteDiaryEntry removes the entry; missing ids are a no-op.
func (s *Service) DeleteDiaryEntry(id string) {
	for i, e := range s.snap.DiaryEntries {
		if e.ID == id {
			s.snap.DiaryEntries = append(s.snap.DiaryEntries[:i], s.snap.DiaryEntries[i+1:]...)
			s.emit(true)
			return
		}
	}
}

func (s *Service) findDiaryEntry(id string) *diary.Entry {
	for _, e := range s.snap.DiaryEntries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// DiaryEntriesOn returns copies of the entries dated to the given day.
func (s *Service) DiaryEntriesOn(day dates.Key) []diary.Entry {
	out := make([]diary.Entry, 0)
	for _, e := range s.snap.DiaryEntries {
		if e.Date == day {
			out = append(out, *e)
		}
	}
	return out
}

// DiaryEntriesByCategory returns copies of the entries in one category.
func (s *Service) DiaryEntriesByCategory(category string) []diary.Entry {
	out := make([]diary.Entry, 0)
	for _, e := range s.snap.DiaryEntries {
		if e.Category == category {
			out = append(out, *e)
		}
	}
	return out
}

// AllDiaryEntries returns copies of every entry, newest first.
func (s *Service) AllDiaryEntries() []diary.Entry {
	out := make([]diary.Entry, 0, len(s.snap.DiaryEntries))
	for _, e := range s.snap.DiaryEntries {
		out = append(out, *e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

// AddDiaryCategory appends a category label; duplicates after trimming are
// a no-op.
func (s *Service) AddDiaryCategory(name string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	for _, c := range s.snap.Categories {
		if c == trimmed {
			return
		}
	}
	s.snap.Categories = append(s.snap.Categories, trimmed)
	s.emit(true)
}

// DeleteDiaryCategory removes a category label; missing labels are a no-op.
// Entries already filed under the label keep it.
func (s *Service) DeleteDiaryCategory(name string) {
	for i, c := range s.snap.Categories {
		if c == name {
			s.snap.Categories = append(s.snap.Categories[:i], s.snap.Categories[i+1:]...)
			s.emit(true)
			return
		}
	}
}

// Categories returns a copy of the ordered category list.
func (s *Service) Categories() []string {
	return append([]string(nil), s.snap.Categories...)
}

// HasCategory reports whether the label is currently in the category list.
func (s *Service) HasCategory(name string) bool {
	for _, c := range s.snap.Categories {
		if c == name {
			return true
		}
	}
	return false
}
