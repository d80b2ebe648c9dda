package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	Badge   bool
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Unchecked and Checked are the checkbox symbols every surface renders.
const (
	Unchecked = "☐"
	Checked   = "☑"
)

// Box returns the checkbox symbol for a checked flag.
func Box(checked bool) string {
	if checked {
		return Checked
	}
	return Unchecked
}

// DefaultGlyphs lists the display legend: checkbox states first, then the
// remaining-days badge buckets.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{
			Key:     " ",
			Symbol:  Unchecked,
			Meaning: "item pending",
		}, {
			Key:     "x",
			Symbol:  Checked,
			Meaning: "item checked off",
		}, {
			Key:     "g",
			Symbol:  "●",
			Meaning: "5+ days left, or no deadline",
			Badge:   true,
		}, {
			Key:     "o",
			Symbol:  "●",
			Meaning: "3-4 days left",
			Badge:   true,
		}, {
			Key:     "r",
			Symbol:  "●",
			Meaning: "under 3 days, blank when overdue",
			Badge:   true,
		},
	}
}

func (g Glyph) String() string {
	return g.Symbol
}
