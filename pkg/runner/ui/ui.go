package ui

import (
	"context"
	"errors"
	"fmt"

	tui "github.com/marcusolsson/tui-go"

	"listlist/pkg/glyph"
	"listlist/pkg/item"
	"listlist/pkg/list"
	"listlist/pkg/render"
	"listlist/pkg/store"
)

// UI is the legacy read-mostly browse surface: a single table of rows with
// checkbox toggling. The Bubble Tea program is the full renderer.
type UI struct {
	Key         string
	Persistence store.Persistence

	lst *list.List

	rows      *tui.Table
	rowsView  *tui.Box
	rowsTitle string
}

func (d *UI) Do(ctx context.Context) error {
	if d.Persistence == nil {
		return errors.New("can not browse, no persistence")
	}

	d.lst = list.New(d.Persistence, item.Settings{StorageKey: d.Key}).Load().Refresh()

	table := tui.NewTable(1, 0)
	table.SetFocused(true)
	table.SetSizePolicy(tui.Expanding, tui.Maximum)

	rows := tui.NewVBox(table, tui.NewSpacer())
	rows.SetBorder(true)
	rows.SetSizePolicy(tui.Expanding, tui.Expanding)

	status := tui.NewStatusBar("")
	status.SetPermanentText(`SPACE to toggle, 'k' for key, ESC or 'q' to QUIT`)

	root := tui.NewVBox(
		rows,
		tui.NewSpacer(),
		status,
	)

	key := keyUI()
	key.SetBorder(true)
	key.SetTitle("key")

	popup := tui.NewVBox(
		tui.NewHBox(key, tui.NewSpacer()),
		tui.NewSpacer(),
		status,
	)

	ui, err := tui.New(root)
	if err != nil {
		return err
	}

	d.rows = table
	d.rowsView = rows
	d.rowsTitle = d.lst.Settings().StorageKey
	rows.SetTitle(d.rowsTitle)

	d.populateRows()

	toggle := func() {
		idx := d.rows.Selected()
		if idx < 0 {
			return
		}
		d.lst.Toggle(idx).Save()
		d.populateRows()
		d.rows.Select(idx)
	}

	table.OnItemActivated(func(t *tui.Table) {
		toggle()
	})

	isKey := false
	ui.SetKeybinding("k", func() {
		if isKey {
			ui.SetWidget(root)
			isKey = false
		} else {
			ui.SetWidget(popup)
			isKey = true
		}
	})

	ui.SetKeybinding("Space", func() { toggle() })

	ui.SetKeybinding("Esc", func() { ui.Quit() })
	ui.SetKeybinding("q", func() { ui.Quit() })

	if err := ui.Run(); err != nil {
		return err
	}
	return nil
}

func (d *UI) populateRows() {
	d.rows.RemoveRows()
	d.rows.Select(0)

	for _, row := range render.Rows(d.lst.Items()) {
		badge := row.Badge.Text
		if badge == "" {
			badge = " "
		}
		d.rows.AppendRow(tui.NewLabel(fmt.Sprintf("%s %s  %s", glyph.Box(row.Checked), row.Label, badge)))
	}
}

func keyUI() *tui.Box {
	boxes := make([]tui.Widget, 0)
	badges := make([]tui.Widget, 0)

	boxes = append(boxes, tui.NewLabel("Checkboxes"))
	badges = append(badges, tui.NewLabel("Deadline badges"))

	for _, v := range glyph.DefaultGlyphs() {
		label := tui.NewLabel(fmt.Sprintf("%s  %s", v.Symbol, v.Meaning))
		if v.Badge {
			badges = append(badges, label)
		} else {
			boxes = append(boxes, label)
		}
	}
	boxes = append(boxes, tui.NewLabel(""))

	all := append(boxes, badges...)
	return tui.NewVBox(all...)
}
