// Package dates defines the canonical calendar-day key and the calendar
// helpers shared by the store, the engine, and the reporting layer. A Key has
// no time-of-day and no timezone; two keys are equal iff they name the same
// local calendar date.
package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const layoutISO = "2006-01-02"

// ErrInvalidKey signals a date key whose components do not reconstruct to the
// original string, for example "2024-02-30".
var ErrInvalidKey = errors.New("dates: invalid date key")

// Key is a calendar date rendered as zero-padded "YYYY-MM-DD".
type Key string

// ToKey renders the calendar date of t as a Key. Time-of-day is dropped.
func ToKey(t time.Time) Key {
	return Key(t.Format(layoutISO))
}

// FromKey parses a Key back into a local-midnight time. The parse is strict:
// the components must round-trip to the identical string, so overflowed
// day-of-month values are rejected instead of rolling into the next month.
func FromKey(k Key) (time.Time, error) {
	t, err := time.ParseInLocation(layoutISO, string(k), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidKey, k)
	}
	if ToKey(t) != k {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidKey, k)
	}
	return t, nil
}

// Valid reports whether k parses as a well-formed date key.
func Valid(k Key) bool {
	_, err := FromKey(k)
	return err == nil
}

// Weekday returns the weekday of t as an integer in [0,6], 0 = Sunday.
func Weekday(t time.Time) int {
	return int(t.Weekday())
}

// Day truncates t to local midnight.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// MonthGrid returns the 6x7 grid of days covering the full weeks that overlap
// the month containing t. The grid starts on the Sunday on or before the 1st
// and always holds exactly 42 cells, so callers can lay out a fixed-size
// calendar regardless of month length or leap years.
func MonthGrid(t time.Time) [][]time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
	cur := first.AddDate(0, 0, -int(first.Weekday()))

	weeks := make([][]time.Time, 0, 6)
	for w := 0; w < 6; w++ {
		row := make([]time.Time, 0, 7)
		for d := 0; d < 7; d++ {
			row = append(row, cur)
			cur = cur.AddDate(0, 0, 1)
		}
		weeks = append(weeks, row)
	}
	return weeks
}

// Range returns every day from start through end inclusive, in chronological
// order. The range is empty when end is before start.
func Range(start, end Key) ([]Key, error) {
	from, err := FromKey(start)
	if err != nil {
		return nil, err
	}
	until, err := FromKey(end)
	if err != nil {
		return nil, err
	}

	days := make([]Key, 0)
	for cur := from; !cur.After(until); cur = cur.AddDate(0, 0, 1) {
		days = append(days, ToKey(cur))
	}
	return days, nil
}

var weekdayNames = map[string]int{
	"sun": 0, "sunday": 0,
	"mon": 1, "monday": 1,
	"tue": 2, "tues": 2, "tuesday": 2,
	"wed": 3, "wednesday": 3,
	"thu": 4, "thur": 4, "thurs": 4, "thursday": 4,
	"fri": 5, "friday": 5,
	"sat": 6, "saturday": 6,
}

// ParseWeekday converts a weekday name or abbreviation ("mon", "Monday") into
// its [0,6] index.
func ParseWeekday(name string) (int, error) {
	if wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return wd, nil
	}
	return 0, fmt.Errorf("dates: unknown weekday %q", name)
}
