package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/nikki/pkg/dates"
	"tableflip.dev/nikki/pkg/diary"
	"tableflip.dev/nikki/pkg/glyph"
	"tableflip.dev/nikki/pkg/report"
	"tableflip.dev/nikki/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca-0000-000000000000  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// DayList renders the occurrences for one day with their completion marks.
func (pp *PrettyPrint) DayList(day dates.Key, tasks []task.Task, done func(id string) bool) {
	pp.Title(string(day))

	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	plain := color.New()
	faint := color.New(color.Faint)
	did := color.New(color.Faint, color.CrossedOut)

	for _, t := range tasks {
		if pp.ShowID {
			_, _ = faint.Printf("%s  ", t.ID)
		}
		if done(t.ID) {
			_, _ = plain.Printf("%s  ", glyph.Done)
			_, _ = did.Println(t.Title)
		} else {
			_, _ = plain.Printf("%s  ", glyph.Open)
			_, _ = plain.Println(t.Title)
		}
	}
	fmt.Println("")
}

// Tasks renders every task with its schedule rule.
func (pp *PrettyPrint) Tasks(tasks []task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold)
	if pp.ShowID {
		tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Task"), bold.Sprint("Schedule"))
	} else {
		tbl.AddRow(bold.Sprint("Task"), bold.Sprint("Schedule"))
	}
	for _, t := range tasks {
		schedule := t.Rule.String()
		if t.Rule == nil {
			schedule = fmt.Sprintf("on %s", t.TargetDate)
		}
		if pp.ShowID {
			tbl.AddRow(t.ID, t.Title, schedule)
		} else {
			tbl.AddRow(t.Title, schedule)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Performance renders the per-task report table for a window.
func (pp *PrettyPrint) Performance(rows []report.Row) {
	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("Task"), bold.Sprint("Days"), bold.Sprint("Done"), bold.Sprint("Rate"))
	for _, row := range rows {
		tbl.AddRow(row.Title, row.TotalDays, row.CompletedDays, fmt.Sprintf("%d%%", row.AchievementRate))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// BestDay renders the best-day line of a report.
func (pp *PrettyPrint) BestDay(best report.DailyAchievement) {
	b := color.New(color.Bold)
	_, _ = b.Printf("Best day: %s", best.Date)
	fmt.Printf("  %d done of %d (%d%%)\n\n", best.CompletedTasks, best.TotalTasks, best.AchievementRate)
}

// Trend renders the current-versus-previous comparison with direction arrows.
func (pp *PrettyPrint) Trend(tr report.Trend) {
	sign := func(delta int) string {
		if delta > 0 {
			return fmt.Sprintf("+%d", delta)
		}
		return fmt.Sprintf("%d", delta)
	}

	fmt.Printf("Rate:      %d%% → %d%%  (%s%% %s)\n",
		tr.Previous.AchievementRate, tr.Current.AchievementRate,
		sign(tr.RateDelta), tr.RateDirection())
	fmt.Printf("Completed: %d → %d  (%s %s)\n",
		tr.Previous.CompletedDays, tr.Current.CompletedDays,
		sign(tr.CompletedDelta), tr.CompletedDirection())
	fmt.Printf("Days:      %d → %d\n\n", tr.Previous.TotalDays, tr.Current.TotalDays)
}

// Streak renders the streak line for one task.
func (pp *PrettyPrint) Streak(title string, days int) {
	b := color.New(color.Bold)
	_, _ = b.Printf("%s", title)
	switch days {
	case 1:
		fmt.Printf("  %d day streak\n\n", days)
	default:
		fmt.Printf("  %d days streak\n\n", days)
	}
}

// Diary renders journal entries grouped under their day and category.
func (pp *PrettyPrint) Diary(entries []diary.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	faint := color.New(color.Faint)
	cat := color.New(color.FgHiYellow, color.Italic)
	for _, e := range entries {
		if pp.ShowID {
			_, _ = faint.Printf("%s  ", e.ID)
		}
		fmt.Printf("%s  ", e.Date)
		_, _ = cat.Printf("[%s]", e.Category)
		fmt.Printf("  %s\n", e.Content)
	}
	fmt.Println("")
}

// Categories renders the ordered category list.
func (pp *PrettyPrint) Categories(categories []string) {
	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Category"))
	for i, c := range categories {
		tbl.AddRow(i+1, c)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}
