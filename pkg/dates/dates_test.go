package dates

import (
	"errors"
	"testing"
	"time"
)

func TestKeyRoundTrip(t *testing.T) {
	cases := []struct {
		y, m, d int
		want    Key
	}{
		{2024, 6, 1, "2024-06-01"},
		{2024, 2, 29, "2024-02-29"}, // leap day
		{2024, 12, 31, "2024-12-31"},
		{1999, 1, 9, "1999-01-09"},
	}
	for _, tc := range cases {
		day := time.Date(tc.y, time.Month(tc.m), tc.d, 13, 45, 0, 0, time.Local)
		key := ToKey(day)
		if key != tc.want {
			t.Fatalf("ToKey(%d-%d-%d) = %q, want %q", tc.y, tc.m, tc.d, key, tc.want)
		}
		back, err := FromKey(key)
		if err != nil {
			t.Fatalf("FromKey(%q): %v", key, err)
		}
		if ToKey(back) != key {
			t.Fatalf("round trip of %q produced %q", key, ToKey(back))
		}
		if back.Hour() != 0 || back.Minute() != 0 {
			t.Fatalf("FromKey(%q) kept a time-of-day: %v", key, back)
		}
	}
}

func TestFromKeyRejectsInvalid(t *testing.T) {
	bad := []Key{
		"2024-02-30", // overflows February
		"2023-02-29", // not a leap year
		"2024-13-01",
		"2024-00-10",
		"2024-06-00",
		"2024-6-1", // not zero padded
		"junk",
		"",
		"2024-06-01T00:00:00",
	}
	for _, key := range bad {
		if _, err := FromKey(key); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("FromKey(%q) = %v, want ErrInvalidKey", key, err)
		}
		if Valid(key) {
			t.Fatalf("Valid(%q) = true, want false", key)
		}
	}
}

func TestMonthGridShape(t *testing.T) {
	months := []time.Time{
		time.Date(2024, time.February, 14, 0, 0, 0, 0, time.Local), // leap February
		time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local),
		time.Date(2023, time.December, 31, 0, 0, 0, 0, time.Local),
		time.Date(2025, time.March, 2, 0, 0, 0, 0, time.Local),
	}
	for _, m := range months {
		grid := MonthGrid(m)
		if len(grid) != 6 {
			t.Fatalf("MonthGrid(%v): %d weeks, want 6", m, len(grid))
		}
		var flat []time.Time
		for _, week := range grid {
			if len(week) != 7 {
				t.Fatalf("MonthGrid(%v): week of %d days", m, len(week))
			}
			flat = append(flat, week...)
		}
		if len(flat) != 42 {
			t.Fatalf("MonthGrid(%v): %d cells, want 42", m, len(flat))
		}
		if flat[0].Weekday() != time.Sunday {
			t.Fatalf("MonthGrid(%v) starts on %v", m, flat[0].Weekday())
		}
		if flat[41].Weekday() != time.Saturday {
			t.Fatalf("MonthGrid(%v) ends on %v", m, flat[41].Weekday())
		}
		for i := 1; i < len(flat); i++ {
			if !flat[i].Equal(flat[i-1].AddDate(0, 0, 1)) {
				t.Fatalf("MonthGrid(%v): cell %d is %v, previous %v", m, i, flat[i], flat[i-1])
			}
		}
	}
}

func TestMonthGridCoversLeapDay(t *testing.T) {
	grid := MonthGrid(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local))
	found := false
	for _, week := range grid {
		for _, day := range week {
			if ToKey(day) == "2024-02-29" {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("leap day missing from February 2024 grid")
	}
}

func TestRange(t *testing.T) {
	days, err := Range("2024-06-28", "2024-07-02")
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	want := []Key{"2024-06-28", "2024-06-29", "2024-06-30", "2024-07-01", "2024-07-02"}
	if len(days) != len(want) {
		t.Fatalf("Range returned %d days, want %d", len(days), len(want))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("Range[%d] = %q, want %q", i, days[i], want[i])
		}
	}
}

func TestRangeEmptyWhenReversed(t *testing.T) {
	days, err := Range("2024-07-02", "2024-06-28")
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("reversed Range returned %d days, want 0", len(days))
	}
}

func TestRangeRejectsBadKeys(t *testing.T) {
	if _, err := Range("2024-02-30", "2024-03-01"); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("Range with bad start = %v, want ErrInvalidKey", err)
	}
	if _, err := Range("2024-03-01", "nope"); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("Range with bad end = %v, want ErrInvalidKey", err)
	}
}

func TestParseWeekday(t *testing.T) {
	cases := map[string]int{
		"sun": 0, "Monday": 1, " tue ": 2, "WED": 3, "thurs": 4, "fri": 5, "saturday": 6,
	}
	for in, want := range cases {
		got, err := ParseWeekday(in)
		if err != nil {
			t.Fatalf("ParseWeekday(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseWeekday(%q) = %d, want %d", in, got, want)
		}
	}
	if _, err := ParseWeekday("someday"); err == nil {
		t.Fatal("ParseWeekday accepted an unknown name")
	}
}
