package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"listlist/pkg/glyph"
)

type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	k.Key(ctx, glyph.DefaultGlyphs(), false)
	k.Key(ctx, glyph.DefaultGlyphs(), true)

	return nil
}

func (k *Key) Key(ctx context.Context, glyfs []glyph.Glyph, badge bool) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Key"), glyph.Bold("Symbol"), glyph.Bold("Meaning"))
	for _, v := range glyfs {
		if badge == v.Badge {
			tbl.AddRow(v.Key, v.Symbol, v.Meaning)
		}
	}

	if badge {
		_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nDeadline badges")))
	} else {
		_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nCheckboxes")))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
