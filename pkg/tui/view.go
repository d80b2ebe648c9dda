package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"listlist/pkg/glyph"
	"listlist/pkg/render"
)

func (m Model) View() string {
	if m.mode == modeDetail {
		return m.viewDetail()
	}

	var b strings.Builder

	title := m.lst.Settings().StorageKey
	b.WriteString(m.th.Title.Render(title))
	b.WriteString(m.th.Muted.Render(fmt.Sprintf("  %d item(s)", m.lst.Len())))
	b.WriteString("\n")

	rows := render.Rows(m.lst.Items())
	height := m.listHeight()
	end := m.scroll + height
	if end > len(rows) {
		end = len(rows)
	}

	if len(rows) == 0 {
		b.WriteString(m.th.Muted.Render("  nothing here, type something below"))
		b.WriteString("\n")
	}

	for i := m.scroll; i < end; i++ {
		b.WriteString(m.viewRow(i, rows[i]))
		b.WriteString("\n")
	}

	b.WriteString(m.viewHelp())
	b.WriteString("\n")
	b.WriteString(m.cmd.View())

	return b.String()
}

func (m Model) viewRow(i int, row render.Row) string {
	if m.mode == modeEdit && i == m.editIndex {
		return "  " + m.edit.View()
	}

	marker := "  "
	if i == m.cursor {
		marker = m.th.Selected.Render("» ")
	}

	label := row.Label
	if row.Checked {
		label = m.th.Done.Render(label)
	} else if i == m.cursor {
		label = m.th.Selected.Render(label)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		marker,
		glyph.Box(row.Checked), " ",
		label, "  ",
		m.viewBadge(row),
	)
}

func (m Model) viewBadge(row render.Row) string {
	style := m.th.BadgeGreen
	switch row.Badge.Color {
	case render.BadgeOrange:
		style = m.th.BadgeOrange
	case render.BadgeRed:
		style = m.th.BadgeRed
	}
	if row.Badge.Text == "" {
		if row.Badge.Color == render.BadgeGreen {
			return ""
		}
		// Overdue rows show a bare colored dot instead of a count.
		return style.Render("●")
	}
	return style.Render(row.Badge.Text)
}

func (m Model) viewHelp() string {
	switch m.mode {
	case modeInsert:
		return m.th.Help.Render("enter submit · esc back")
	case modeEdit:
		return m.th.Help.Render("enter save · blank deletes · esc cancel")
	default:
		return m.th.Help.Render("space toggle · e edit · enter detail · shift+↑/↓ move · i command · q quit")
	}
}

func (m Model) viewDetail() string {
	var b strings.Builder

	b.WriteString(m.dValue.View())
	b.WriteString("\n")
	b.WriteString(m.dDeadline.View())
	b.WriteString("\n")
	b.WriteString(m.dDetails.View())

	if it := m.lst.ItemAt(m.editor.Index()); it != nil && it.Details != "" {
		b.WriteString("\n\n")
		b.WriteString(m.th.Muted.Render(wordwrap.String(it.Details, 60)))
	}

	panel := m.th.Panel.Render(b.String())
	help := m.th.Help.Render("tab next field · enter save · ctrl+d delete item")

	return lipgloss.JoinVertical(lipgloss.Left,
		m.th.Title.Render("detail"),
		panel,
		help,
	)
}
