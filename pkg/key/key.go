package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/nikki/pkg/glyph"
)

// Key prints the legend for the symbols used in day lists, reports, and the
// completion calendar.
type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	k.Key(ctx, glyph.DefaultGlyphs(), false)
	k.Key(ctx, glyph.DefaultGlyphs(), true)

	return nil
}

func (k *Key) Key(ctx context.Context, glyfs []glyph.Glyph, cal bool) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Symbol"), glyph.Bold("Meaning"))
	for _, v := range glyfs {
		if cal == v.Calendar {
			tbl.AddRow(v.Symbol, v.Meaning)
		}
	}

	if cal {
		_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nCalendar")))
	} else {
		_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nMarks")))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
