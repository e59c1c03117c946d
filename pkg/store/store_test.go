package store

import (
	"encoding/json"
	"errors"
	"testing"

	"tableflip.dev/nikki/pkg/dates"
	"tableflip.dev/nikki/pkg/diary"
	"tableflip.dev/nikki/pkg/task"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string  { return t.path }
func (t testConfig) StreakWindow() int { return DefaultStreakWindow }

func open(t *testing.T) *persistence {
	t.Helper()
	p, err := Open(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("open persistence: %v", err)
	}
	return p.(*persistence)
}

func TestLoadEmptyReturnsDefault(t *testing.T) {
	p := open(t)
	s, err := p.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s.Tasks) != 0 || len(s.Completion) != 0 || len(s.DiaryEntries) != 0 {
		t.Fatalf("fresh snapshot is not empty: %+v", s)
	}
	want := diary.DefaultCategories()
	if len(s.Categories) != len(want) {
		t.Fatalf("fresh snapshot categories = %v, want %v", s.Categories, want)
	}
	for i := range want {
		if s.Categories[i] != want[i] {
			t.Fatalf("fresh snapshot categories = %v, want %v", s.Categories, want)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := open(t)

	s := NewDefaultSnapshot()
	s.Tasks = []*task.Task{
		{ID: "t1", Title: "run", Rule: task.Daily(), CreatedAt: 1700000000000},
		{ID: "t2", Title: "dentist", TargetDate: "2024-06-01", CreatedAt: 1700000000001},
	}
	s.Completion = map[dates.Key]map[string]bool{
		"2024-06-01": {"t1": true, "t2": false},
	}
	s.DiaryEntries = []*diary.Entry{
		{ID: "d1", Date: "2024-06-01", Category: "日常", Content: "morning walk", CreatedAt: 1700000000002},
	}
	s.Categories = append(s.Categories, "読書")

	if err := p.Save(s); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := p.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Tasks) != 2 || got.Tasks[0].Title != "run" || got.Tasks[1].TargetDate != "2024-06-01" {
		t.Fatalf("tasks did not round trip: %+v", got.Tasks)
	}
	if got.Tasks[0].Rule == nil || got.Tasks[0].Rule.Kind != task.KindDaily {
		t.Fatalf("rule did not round trip: %+v", got.Tasks[0].Rule)
	}
	if !got.Completion["2024-06-01"]["t1"] || got.Completion["2024-06-01"]["t2"] {
		t.Fatalf("completion did not round trip: %+v", got.Completion)
	}
	if len(got.DiaryEntries) != 1 || got.DiaryEntries[0].Content != "morning walk" {
		t.Fatalf("diary entries did not round trip: %+v", got.DiaryEntries)
	}
	if got.Categories[len(got.Categories)-1] != "読書" {
		t.Fatalf("categories did not round trip: %v", got.Categories)
	}
}

func TestSavedBlobCarriesVersionAndTimestamp(t *testing.T) {
	p := open(t)
	if err := p.Save(NewDefaultSnapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := p.d.Read(snapshotKey)
	if err != nil {
		t.Fatalf("read raw blob: %v", err)
	}
	var b blob
	if err := json.Unmarshal(raw, &b); err != nil {
		t.Fatalf("decode raw blob: %v", err)
	}
	if b.Version != CurrentVersion {
		t.Fatalf("blob version = %q, want %q", b.Version, CurrentVersion)
	}
	if b.LastUpdated == 0 {
		t.Fatal("blob lastUpdated not set")
	}
}

func TestLoadMigratesLegacyBlob(t *testing.T) {
	p := open(t)

	// No version tag, no tasks field at all, plus junk the coercion must skip.
	legacy := `{"completion":{"2024-06-01":{"t1":true}},"diaryCategories":["meals"]}`
	if err := p.d.Write(snapshotKey, []byte(legacy)); err != nil {
		t.Fatalf("seed legacy blob: %v", err)
	}

	s, err := p.Load()
	if err != nil {
		t.Fatalf("load legacy: %v", err)
	}
	if len(s.Tasks) != 0 {
		t.Fatalf("legacy tasks = %+v, want empty", s.Tasks)
	}
	if !s.Completion["2024-06-01"]["t1"] {
		t.Fatalf("legacy completion lost: %+v", s.Completion)
	}
	if len(s.Categories) != 1 || s.Categories[0] != "meals" {
		t.Fatalf("legacy categories = %v", s.Categories)
	}

	// Migration persists immediately: the stored blob is now current.
	raw, err := p.d.Read(snapshotKey)
	if err != nil {
		t.Fatalf("read migrated blob: %v", err)
	}
	var b blob
	if err := json.Unmarshal(raw, &b); err != nil {
		t.Fatalf("decode migrated blob: %v", err)
	}
	if b.Version != CurrentVersion {
		t.Fatalf("migrated version = %q, want %q", b.Version, CurrentVersion)
	}
}

func TestLoadMigratesMalformedPayloads(t *testing.T) {
	cases := []string{
		`not json at all`,
		`[]`,
		`null`,
		`{"version":"0.9.0","tasks":"nope","completion":17}`,
		`{"tasks":[{"id":"ok","title":"kept"},42,"junk"],"diaryEntries":false}`,
	}
	for _, payload := range cases {
		p := open(t)
		if err := p.d.Write(snapshotKey, []byte(payload)); err != nil {
			t.Fatalf("seed blob: %v", err)
		}
		s, err := p.Load()
		if err != nil {
			t.Fatalf("load %q: %v", payload, err)
		}
		if s == nil || s.Tasks == nil || s.Completion == nil || s.DiaryEntries == nil {
			t.Fatalf("load %q produced an incomplete snapshot: %+v", payload, s)
		}
	}
}

func TestCoerceLegacySalvagesElements(t *testing.T) {
	fields := map[string]json.RawMessage{
		"tasks": json.RawMessage(`[{"id":"ok","title":"kept"},42,{"id":"ok2","title":"also kept"}]`),
	}
	s := coerceLegacy(fields)
	if len(s.Tasks) != 2 || s.Tasks[0].ID != "ok" || s.Tasks[1].ID != "ok2" {
		t.Fatalf("salvaged tasks = %+v", s.Tasks)
	}
}

func TestLoadRejectsInvalidCurrentVersionBlob(t *testing.T) {
	p := open(t)

	// Current version tag, but completion is not an object: a structural
	// validation error the caller can fall back from.
	bad := `{"version":"` + CurrentVersion + `","tasks":[],"completion":"oops"}`
	if err := p.d.Write(snapshotKey, []byte(bad)); err != nil {
		t.Fatalf("seed blob: %v", err)
	}
	if _, err := p.Load(); !errors.Is(err, ErrInvalidSnapshot) {
		t.Fatalf("load = %v, want ErrInvalidSnapshot", err)
	}

	// Same for a non-array tasks field.
	bad = `{"version":"` + CurrentVersion + `","tasks":{},"completion":{}}`
	if err := p.d.Write(snapshotKey, []byte(bad)); err != nil {
		t.Fatalf("seed blob: %v", err)
	}
	if _, err := p.Load(); !errors.Is(err, ErrInvalidSnapshot) {
		t.Fatalf("load = %v, want ErrInvalidSnapshot", err)
	}
}

func TestClear(t *testing.T) {
	p := open(t)
	if err := p.Clear(); err != nil {
		t.Fatalf("clear with nothing stored: %v", err)
	}
	if err := p.Save(NewDefaultSnapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := p.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if p.d.Has(snapshotKey) {
		t.Fatal("blob still present after clear")
	}
}
