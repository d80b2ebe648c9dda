// Package render holds the renderer-contract helpers shared by every
// surface: truncation, markup escaping, and the remaining-days badge
// classification. Surfaces own the drawing; this package owns what a row
// must say.
package render

import (
	"fmt"
	"strings"

	"listlist/pkg/item"
)

// DefaultCutoff is the display length a value is shortened to.
const DefaultCutoff = 27

// Shorten truncates text to size runes, appending an ellipsis marker when
// anything was cut. A size of 0 or less uses the default cutoff.
func Shorten(text string, size int) string {
	if size <= 0 {
		size = DefaultCutoff
	}
	runes := []rune(text)
	if len(runes) <= size {
		return text
	}
	return string(runes[:size]) + "..."
}

// Escape rewrites markup-significant characters so user text is never
// interpreted as markup by a rendering surface.
func Escape(text string) string {
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// BadgeColor names the urgency bucket of a remaining-days badge.
type BadgeColor string

const (
	BadgeGreen  BadgeColor = "green"
	BadgeOrange BadgeColor = "orange"
	BadgeRed    BadgeColor = "red"
)

// Badge is the colored remaining-days marker of one row.
type Badge struct {
	Color BadgeColor
	Text  string
}

// BadgeFor classifies an item's deadline state: green when five or more
// days remain or no deadline is set, orange below five, red below three.
// Overdue badges stay red with blank text.
func BadgeFor(it item.Item) Badge {
	if it.Deadline == "" {
		return Badge{Color: BadgeGreen}
	}

	days := it.DaysLeft
	color := BadgeGreen
	if days < 3 {
		color = BadgeRed
	} else if days < 5 {
		color = BadgeOrange
	}

	text := ""
	if days >= 0 {
		text = fmt.Sprintf("%dd", days)
	}
	return Badge{Color: color, Text: text}
}

// Row is the view model one rendered list row exposes: the model index the
// gestures report back, the checkbox state, the display label, and the
// badge.
type Row struct {
	Index   int
	Checked bool
	Label   string
	Badge   Badge
}

// RowFor builds the row view model for the item at the given model index.
// The label is shortened and escaped here so no surface renders raw user
// text.
func RowFor(index int, it item.Item) Row {
	return Row{
		Index:   index,
		Checked: it.Checked,
		Label:   Escape(Shorten(it.Value, DefaultCutoff)),
		Badge:   BadgeFor(it),
	}
}

// Rows maps a whole item sequence onto row view models.
func Rows(items []item.Item) []Row {
	rows := make([]Row, 0, len(items))
	for i, it := range items {
		rows = append(rows, RowFor(i, it))
	}
	return rows
}
