package printers

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	isatty "github.com/mattn/go-isatty"

	"listlist/pkg/glyph"
	"listlist/pkg/item"
	"listlist/pkg/render"
)

type PrettyPrint struct {
	ShowIndex bool
}

func init() {
	// fatih/color only checks its own writer; piped output should stay
	// plain even when something upstream forced colors on.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// List prints the item rows the way the renderer contract describes them:
// checkbox, shortened escaped label, colored days badge, deadline.
func (pp *PrettyPrint) List(items ...item.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, row := range render.Rows(items) {
		cells := make([]interface{}, 0, 5)
		if pp.ShowIndex {
			cells = append(cells, row.Index)
		}
		cells = append(cells, glyph.Box(row.Checked), row.Label, badgeCell(row.Badge), items[row.Index].Deadline)
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Detail prints one item in full: value, deadline, days left, and the
// details text the caller already wrapped for the terminal.
func (pp *PrettyPrint) Detail(it item.Item, wrappedDetails string) {
	b := color.New(color.Bold)

	_, _ = b.Print("Value:    ")
	fmt.Println(it.Value)

	_, _ = b.Print("Checked:  ")
	fmt.Println(glyph.Box(it.Checked))

	_, _ = b.Print("Deadline: ")
	if it.Deadline == "" {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("none")
	} else {
		fmt.Printf("%s  %s\n", it.Deadline, badgeCell(render.BadgeFor(it)))
	}

	if strings.TrimSpace(wrappedDetails) != "" {
		_, _ = b.Println("Details:")
		fmt.Println(wrappedDetails)
	}
}

func badgeCell(b render.Badge) string {
	var c *color.Color
	switch b.Color {
	case render.BadgeRed:
		c = color.New(color.FgRed)
	case render.BadgeOrange:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgGreen)
	}
	text := b.Text
	if text == "" {
		text = "●"
	}
	return c.Sprint(text)
}
