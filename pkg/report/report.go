// Package report derives period statistics from the engine's query surface:
// achievement rates, daily rollups, best day, streaks, and trend deltas.
// Everything here is pure over a date list plus Queries.
package report

import (
	"math"
	"time"

	"tableflip.dev/nikki/pkg/dates"
	"tableflip.dev/nikki/pkg/glyph"
	"tableflip.dev/nikki/pkg/task"
)

// Queries is the read surface the aggregations consume. *app.Service
// satisfies it.
type Queries interface {
	OccurrencesOn(day dates.Key) []task.Task
	IsCompleted(id string, day dates.Key) bool
	AllTasks() []task.Task
}

// CurrentWeek returns the 7 days from the most recent Sunday on or before
// today through the following Saturday.
func CurrentWeek(today time.Time) []dates.Key {
	start := dates.Day(today).AddDate(0, 0, -dates.Weekday(today))
	return weekFrom(start)
}

// PreviousWeek returns the 7 days immediately before the current week.
func PreviousWeek(today time.Time) []dates.Key {
	start := dates.Day(today).AddDate(0, 0, -dates.Weekday(today)-7)
	return weekFrom(start)
}

func weekFrom(start time.Time) []dates.Key {
	days := make([]dates.Key, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, dates.ToKey(start.AddDate(0, 0, i)))
	}
	return days
}

// CurrentMonth returns every day of the calendar month containing today.
func CurrentMonth(today time.Time) []dates.Key {
	return monthDays(today.Year(), today.Month())
}

// PreviousMonth returns every day of the month before the one containing
// today.
func PreviousMonth(today time.Time) []dates.Key {
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.Local)
	prev := first.AddDate(0, 0, -1)
	return monthDays(prev.Year(), prev.Month())
}

func monthDays(year int, month time.Month) []dates.Key {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	// Day zero of the next month is the last day of this one, so month
	// length falls out of the date arithmetic, leap years included.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local)
	days, _ := dates.Range(dates.ToKey(first), dates.ToKey(last))
	return days
}

// Performance summarizes one task over a date window. TotalDays counts only
// the days the task actually occurs.
type Performance struct {
	TotalDays       int
	CompletedDays   int
	AchievementRate int
}

// TaskPerformance computes occurrence and completion counts for one task
// over the given days. The rate is a rounded percentage and 0 when the task
// never occurs in the window.
func TaskPerformance(q Queries, taskID string, days []dates.Key) Performance {
	var p Performance
	for _, day := range days {
		if !occursOn(q, taskID, day) {
			continue
		}
		p.TotalDays++
		if q.IsCompleted(taskID, day) {
			p.CompletedDays++
		}
	}
	p.AchievementRate = rate(p.CompletedDays, p.TotalDays)
	return p
}

// Row pairs a task with its window performance, for report tables.
type Row struct {
	TaskID string
	Title  string
	Performance
}

// AllTasksPerformance computes a Row for every non-archived task.
func AllTasksPerformance(q Queries, days []dates.Key) []Row {
	all := q.AllTasks()
	rows := make([]Row, 0, len(all))
	for _, t := range all {
		rows = append(rows, Row{
			TaskID:      t.ID,
			Title:       t.Title,
			Performance: TaskPerformance(q, t.ID, days),
		})
	}
	return rows
}

// DailyAchievement is the per-day rollup across all occurring tasks.
type DailyAchievement struct {
	Date            dates.Key
	TotalTasks      int
	CompletedTasks  int
	AchievementRate int
}

// DailyAchievements computes the rollup for each day in order.
func DailyAchievements(q Queries, days []dates.Key) []DailyAchievement {
	out := make([]DailyAchievement, 0, len(days))
	for _, day := range days {
		da := DailyAchievement{Date: day}
		for _, t := range q.OccurrencesOn(day) {
			da.TotalTasks++
			if q.IsCompleted(t.ID, day) {
				da.CompletedTasks++
			}
		}
		da.AchievementRate = rate(da.CompletedTasks, da.TotalTasks)
		out = append(out, da)
	}
	return out
}

// BestDay picks the day with the most completed tasks; ties break on higher
// achievement rate, then on earlier position in the input. ok is false for
// an empty window.
func BestDay(q Queries, days []dates.Key) (best DailyAchievement, ok bool) {
	daily := DailyAchievements(q, days)
	if len(daily) == 0 {
		return DailyAchievement{}, false
	}
	best = daily[0]
	for _, cur := range daily[1:] {
		if cur.CompletedTasks > best.CompletedTasks {
			best = cur
		} else if cur.CompletedTasks == best.CompletedTasks && cur.AchievementRate > best.AchievementRate {
			best = cur
		}
	}
	return best, true
}

// Streak walks backward day by day from end, counting consecutive days the
// task occurs and is completed. The first occurring-but-incomplete day stops
// the count; days without an occurrence are skipped without breaking the
// run. The scan is bounded to window days; window <= 0 falls back to
// DefaultStreakWindow.
func Streak(q Queries, taskID string, end dates.Key, window int) (int, error) {
	endDay, err := dates.FromKey(end)
	if err != nil {
		return 0, err
	}
	if window <= 0 {
		window = DefaultStreakWindow
	}

	streak := 0
	for i := 0; i < window; i++ {
		day := dates.ToKey(endDay.AddDate(0, 0, -i))
		if !occursOn(q, taskID, day) {
			continue
		}
		if !q.IsCompleted(taskID, day) {
			break
		}
		streak++
	}
	return streak, nil
}

// DefaultStreakWindow mirrors store.DefaultStreakWindow without importing
// the persistence layer into a pure package.
const DefaultStreakWindow = 30

// Direction is the trend indicator between two periods.
type Direction int

const (
	Flat Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return glyph.TrendUp
	case Down:
		return glyph.TrendDown
	default:
		return glyph.TrendFlat
	}
}

func directionOf(delta int) Direction {
	switch {
	case delta > 0:
		return Up
	case delta < 0:
		return Down
	default:
		return Flat
	}
}

// Trend compares one task's performance across two periods of equal length.
type Trend struct {
	Current  Performance
	Previous Performance

	RateDelta      int
	CompletedDelta int
	DaysDelta      int
}

// RateDirection indicates whether the achievement rate moved up, down, or
// stayed flat.
func (t Trend) RateDirection() Direction { return directionOf(t.RateDelta) }

// CompletedDirection indicates movement of the completed-day count.
func (t Trend) CompletedDirection() Direction { return directionOf(t.CompletedDelta) }

// CompareTrend computes current-versus-previous performance for one task.
func CompareTrend(q Queries, taskID string, current, previous []dates.Key) Trend {
	cur := TaskPerformance(q, taskID, current)
	prev := TaskPerformance(q, taskID, previous)
	return Trend{
		Current:        cur,
		Previous:       prev,
		RateDelta:      cur.AchievementRate - prev.AchievementRate,
		CompletedDelta: cur.CompletedDays - prev.CompletedDays,
		DaysDelta:      cur.TotalDays - prev.TotalDays,
	}
}

func occursOn(q Queries, taskID string, day dates.Key) bool {
	for _, t := range q.OccurrencesOn(day) {
		if t.ID == taskID {
			return true
		}
	}
	return false
}

// rate rounds completed/total to a whole percentage; 0 when total is 0.
func rate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
