package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/nikki/pkg/dates"
)

// DayStats feeds the calendar one day's completion rollup.
type DayStats func(day dates.Key) (completed, total int)

const calendarWidth = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the fixed 6x7 month grid for the month containing on.
// Days where every occurring task is done print bold, days with partial
// completion print normal, days with nothing done print faint, and days
// outside the month print blank.
func (pp *PrettyPrint) Calendar(on time.Time, stats DayStats) {
	tf := color.New(color.FgWhite, color.Italic)

	m := on.Month().String()
	mid := (calendarWidth - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", calendarWidth-mid-len(m)))

	faint := color.New(color.Faint, color.FgWhite)
	plain := color.New(color.FgHiWhite)
	bold := color.New(color.Bold, color.FgHiWhite)
	faintToday := color.New(color.Faint, color.FgWhite, color.Underline)
	plainToday := color.New(color.FgHiWhite, color.Underline)
	boldToday := color.New(color.Bold, color.FgHiWhite, color.Underline)
	today := dates.ToKey(time.Now())

	for _, week := range dates.MonthGrid(on) {
		for _, day := range week {
			if day.Month() != on.Month() {
				fmt.Print("   ")
				continue
			}

			key := dates.ToKey(day)
			completed, total := stats(key)

			printer := faint
			switch {
			case total > 0 && completed == total:
				printer = bold
				if key == today {
					printer = boldToday
				}
			case completed > 0:
				printer = plain
				if key == today {
					printer = plainToday
				}
			default:
				if key == today {
					printer = faintToday
				}
			}
			_, _ = printer.Printf("%2d ", day.Day())
		}
		fmt.Print("\n")
	}
	fmt.Print("\n")
}
