package task

import (
	"encoding/json"
	"testing"
)

func TestRuleMatches(t *testing.T) {
	cases := []struct {
		name string
		rule *Rule
		want [7]bool // indexed by weekday, 0 = Sunday
	}{
		{"daily", Daily(), [7]bool{true, true, true, true, true, true, true}},
		{"weekly mon+wed", Weekly(1, 3), [7]bool{false, true, false, true, false, false, false}},
		{"weekly empty", Weekly(), [7]bool{}},
		{"weekdays", Weekdays(), [7]bool{false, true, true, true, true, true, false}},
		{"weekends", Weekends(), [7]bool{true, false, false, false, false, false, true}},
		{"nil rule", nil, [7]bool{}},
		{"unknown kind", &Rule{Kind: "monthly"}, [7]bool{}},
	}
	for _, tc := range cases {
		for wd := 0; wd < 7; wd++ {
			if got := tc.rule.Matches(wd); got != tc.want[wd] {
				t.Errorf("%s: Matches(%d) = %v, want %v", tc.name, wd, got, tc.want[wd])
			}
		}
	}
}

func TestOccursOn(t *testing.T) {
	oneTime := Task{ID: "a", Title: "dentist", TargetDate: "2024-06-01"}
	if !oneTime.OccursOn("2024-06-01", 6) {
		t.Fatal("one-time task should occur on its target date")
	}
	if oneTime.OccursOn("2024-06-02", 0) {
		t.Fatal("one-time task occurred off its target date")
	}

	weekly := Task{ID: "b", Title: "gym", Rule: Weekly(1, 3)}
	if !weekly.OccursOn("2024-06-03", 1) { // a Monday
		t.Fatal("weekly task should occur on Monday")
	}
	if weekly.OccursOn("2024-06-04", 2) {
		t.Fatal("weekly task occurred on an unselected weekday")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Task{ID: "a", Title: "run", Rule: Weekly(1, 3)}
	cp := orig.Clone()
	cp.Title = "walk"
	cp.Rule.Days[0] = 5

	if orig.Title != "run" {
		t.Fatalf("clone mutated original title: %q", orig.Title)
	}
	if orig.Rule.Days[0] != 1 {
		t.Fatalf("clone shares the weekday slice: %v", orig.Rule.Days)
	}
}

func TestRuleWireFormat(t *testing.T) {
	// The kind strings are persisted; pin them.
	cases := map[string]*Rule{
		`{"kind":"daily"}`:                  Daily(),
		`{"kind":"weekly","days":[1,3]}`:    Weekly(1, 3),
		`{"kind":"weekDays","days":[1,2,3,4,5]}`: Weekdays(),
		`{"kind":"weekEnds","days":[0,6]}`:  Weekends(),
	}
	for want, rule := range cases {
		b, err := json.Marshal(rule)
		if err != nil {
			t.Fatalf("marshal %v: %v", rule, err)
		}
		if string(b) != want {
			t.Fatalf("marshal %v = %s, want %s", rule, b, want)
		}
		var back Rule
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", b, err)
		}
		if back.Kind != rule.Kind {
			t.Fatalf("round trip changed kind: %q -> %q", rule.Kind, back.Kind)
		}
	}
}
