// Package glyph defines the symbols nikki prints for tasks, calendars,
// and trends.
package glyph

import "fmt"

type Glyph struct {
	Symbol   string
	Meaning  string
	Calendar bool
}

const (
	// Open marks a task still to do on a day.
	Open = "●"
	// Done marks a task completed on a day.
	Done = "✘"

	// TrendUp, TrendDown and TrendFlat annotate period comparisons.
	TrendUp   = "↗"
	TrendDown = "↘"
	TrendFlat = "→"
)

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 8)

	g = append(g, Glyph{
		Symbol:  Open,
		Meaning: "task to do",
	}, Glyph{
		Symbol:  Done,
		Meaning: "task completed",
	}, Glyph{
		Symbol:  TrendUp,
		Meaning: "rate improved over the previous period",
	}, Glyph{
		Symbol:  TrendDown,
		Meaning: "rate dropped",
	}, Glyph{
		Symbol:  TrendFlat,
		Meaning: "rate unchanged",
	}, Glyph{
		Symbol:   Bold("27"),
		Meaning:  "every task done that day",
		Calendar: true,
	}, Glyph{
		Symbol:   "27",
		Meaning:  "some tasks done",
		Calendar: true,
	}, Glyph{
		Symbol:   fmt.Sprintf("%s[2m27%s[0m", escape, escape),
		Meaning:  "nothing done, or nothing due",
		Calendar: true,
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}
