// Package task defines the task model and its repeat rule.
package task

import (
	"fmt"

	"tableflip.dev/nikki/pkg/dates"
)

// RuleKind discriminates the supported repeat rules. The string values are
// part of the persisted schema and must not change.
type RuleKind string

const (
	// KindDaily repeats every day.
	KindDaily RuleKind = "daily"
	// KindWeekly repeats on an explicit set of weekdays.
	KindWeekly RuleKind = "weekly"
	// KindWeekdays repeats Monday through Friday.
	KindWeekdays RuleKind = "weekDays"
	// KindWeekends repeats Saturday and Sunday.
	KindWeekends RuleKind = "weekEnds"
)

// Rule describes when a recurring task repeats. Days is meaningful only for
// KindWeekly; an empty weekly day set is legal and matches no day.
type Rule struct {
	Kind RuleKind `json:"kind"`
	Days []int    `json:"days,omitempty"`
}

// Daily returns a rule that matches every day.
func Daily() *Rule { return &Rule{Kind: KindDaily} }

// Weekly returns a rule matching the given weekdays (0 = Sunday).
func Weekly(days ...int) *Rule {
	return &Rule{Kind: KindWeekly, Days: append([]int(nil), days...)}
}

// Weekdays returns a rule matching Monday through Friday.
func Weekdays() *Rule { return &Rule{Kind: KindWeekdays, Days: []int{1, 2, 3, 4, 5}} }

// Weekends returns a rule matching Saturday and Sunday.
func Weekends() *Rule { return &Rule{Kind: KindWeekends, Days: []int{0, 6}} }

// Matches reports whether the rule lands on the given weekday (0 = Sunday).
// Unknown kinds match nothing, so stale rules in old blobs stay inert.
func (r *Rule) Matches(weekday int) bool {
	if r == nil {
		return false
	}
	switch r.Kind {
	case KindDaily:
		return true
	case KindWeekly:
		for _, d := range r.Days {
			if d == weekday {
				return true
			}
		}
		return false
	case KindWeekdays:
		return weekday >= 1 && weekday <= 5
	case KindWeekends:
		return weekday == 0 || weekday == 6
	default:
		return false
	}
}

// String renders the rule for CLI display.
func (r *Rule) String() string {
	if r == nil {
		return "one-time"
	}
	switch r.Kind {
	case KindDaily:
		return "daily"
	case KindWeekly:
		names := [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}
		out := ""
		for i, d := range r.Days {
			if i > 0 {
				out += ","
			}
			if d >= 0 && d < 7 {
				out += names[d]
			}
		}
		return fmt.Sprintf("weekly(%s)", out)
	case KindWeekdays:
		return "weekdays"
	case KindWeekends:
		return "weekends"
	default:
		return string(r.Kind)
	}
}

func (r *Rule) clone() *Rule {
	if r == nil {
		return nil
	}
	cp := *r
	cp.Days = append([]int(nil), r.Days...)
	return &cp
}

// Task is a one-off or recurring item. Exactly one of TargetDate and Rule is
// set: a task without a rule occurs only on its target date.
type Task struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	TargetDate dates.Key `json:"targetDate,omitempty"`
	Rule       *Rule     `json:"rule,omitempty"`
	CreatedAt  int64     `json:"createdAt"`
	Archived   bool      `json:"archived,omitempty"`
}

// OccursOn reports whether the task generates an occurrence on the given day.
// Archival and per-day hiding are the engine's concern, not the task's.
func (t Task) OccursOn(day dates.Key, weekday int) bool {
	if t.Rule == nil {
		return t.TargetDate == day
	}
	return t.Rule.Matches(weekday)
}

// Clone returns a deep copy so callers can hand tasks out of the engine
// without exposing live state.
func (t Task) Clone() Task {
	cp := t
	cp.Rule = t.Rule.clone()
	return cp
}
