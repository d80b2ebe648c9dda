// Package tui hosts the Bubble Tea program that renders the checklist and
// feeds user gestures back into the list model.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"listlist/pkg/detail"
	"listlist/pkg/dispatch"
	"listlist/pkg/item"
	"listlist/pkg/list"
	"listlist/pkg/store"
	"listlist/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeEdit
	modeDetail
)

type detailField int

const (
	fieldValue detailField = iota
	fieldDeadline
	fieldDetails
)

// storeEventMsg reports an external change to the persisted blob.
type storeEventMsg store.Event

type watchClosedMsg struct{}

// Model is the Bubble Tea model for the checklist surface.
type Model struct {
	lst    *list.List
	disp   *dispatch.Dispatcher
	editor *detail.Editor
	th     theme.Theme

	mode   mode
	cursor int
	scroll int
	width  int
	height int

	// cmd is the always-available command line at the bottom; insert mode
	// focuses it and Enter submits through the dispatcher.
	cmd textinput.Model

	// edit is the inline row editor; Enter commits, blank commits as
	// delete, Esc reverts.
	edit      textinput.Model
	editIndex int

	// detail pane fields.
	dValue    textinput.Model
	dDeadline textinput.Model
	dDetails  textinput.Model
	dFocus    detailField

	watch  <-chan store.Event
	status string
}

// NewModel wires the model around an already-loaded list.
func NewModel(l *list.List, watch <-chan store.Event) Model {
	cmd := textinput.New()
	cmd.Prompt = "> "
	cmd.Placeholder = "add an item, or: clean, sort-alpha, sort-remaining, sort-checked"
	cmd.CharLimit = 200

	edit := textinput.New()
	edit.Prompt = "> "

	dValue := textinput.New()
	dValue.Prompt = "Value:    "
	dDeadline := textinput.New()
	dDeadline.Prompt = "Deadline: "
	dDeadline.Placeholder = "2006-01-02"
	dDetails := textinput.New()
	dDetails.Prompt = "Details:  "

	return Model{
		lst:       l,
		disp:      dispatch.New(l),
		editor:    detail.NewEditor(l),
		th:        theme.Default(),
		cmd:       cmd,
		edit:      edit,
		editIndex: -1,
		dValue:    dValue,
		dDeadline: dDeadline,
		dDetails:  dDetails,
		watch:     watch,
		width:     80,
		height:    24,
	}
}

// Run loads the list, starts the watcher, and runs the program until the
// user quits.
func Run(ctx context.Context, p store.Persistence, key string) error {
	l := list.New(p, item.Settings{StorageKey: key}).Load().Refresh()

	watch, err := p.Watch(ctx)
	if err != nil {
		// The surface still works without external-change redraws.
		watch = nil
	}

	m := NewModel(l, watch)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = prog.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.waitForStoreEvent()
}

func (m Model) waitForStoreEvent() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	ch := m.watch
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return storeEventMsg(ev)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case storeEventMsg:
		if msg.Key == m.lst.Settings().StorageKey && m.mode == modeNormal {
			m.lst.Load().Refresh()
			m.clampCursor()
		}
		return m, m.waitForStoreEvent()

	case watchClosedMsg:
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeInsert:
			return m.updateInsert(msg)
		case modeEdit:
			return m.updateEdit(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}
	case "down", "j":
		if m.cursor < m.lst.Len()-1 {
			m.cursor++
			m.ensureVisible()
		}

	case " ":
		m.lst.Toggle(m.cursor).Save()
		m.status = ""

	case "shift+up", "K":
		m = m.moveRow(-1)
	case "shift+down", "J":
		m = m.moveRow(1)

	case "e":
		if it := m.lst.ItemAt(m.cursor); it != nil {
			m.mode = modeEdit
			m.editIndex = m.cursor
			m.edit.SetValue(it.Value)
			m.edit.CursorEnd()
			return m, m.edit.Focus()
		}

	case "enter", "o":
		if m.editor.Show(m.cursor, m.scroll) {
			m.mode = modeDetail
			m.dValue.SetValue(m.editor.Value)
			m.dDeadline.SetValue(m.editor.Deadline)
			m.dDetails.SetValue(m.editor.Details)
			m.dFocus = fieldValue
			m.dDeadline.Blur()
			m.dDetails.Blur()
			return m, m.dValue.Focus()
		}

	case "i", ":":
		m.mode = modeInsert
		return m, m.cmd.Focus()
	}

	return m, nil
}

func (m Model) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.cmd.Blur()
		return m, nil

	case "enter":
		input := m.cmd.Value()
		res := m.disp.Submit(input)
		// The input field clears after every recognized command or add;
		// focus stays here, matching the original surface.
		m.cmd.SetValue("")
		switch res {
		case dispatch.Added:
			m.status = "added"
		case dispatch.Command:
			m.status = strings.TrimSpace(input)
		default:
			m.status = ""
		}
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.cmd, cmd = m.cmd.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Revert without committing.
		m.mode = modeNormal
		m.edit.Blur()
		m.editIndex = -1
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.edit.Value())
		if value == "" {
			// Blank commits as delete.
			m.lst.DeleteValue(m.editIndex)
		} else {
			m.lst.EditValue(m.editIndex, value)
		}
		m.lst.Save().Refresh()
		m.mode = modeNormal
		m.edit.Blur()
		m.editIndex = -1
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.editor.Value = m.dValue.Value()
		m.editor.Deadline = strings.TrimSpace(m.dDeadline.Value())
		m.editor.Details = m.dDetails.Value()
		m.scroll = m.editor.Hide()
		m.mode = modeNormal
		m.blurDetail()
		m.clampCursor()
		return m, nil

	case "ctrl+d":
		m.scroll = m.editor.Delete()
		m.mode = modeNormal
		m.blurDetail()
		m.clampCursor()
		return m, nil

	case "tab", "down":
		return m.focusDetail((m.dFocus + 1) % 3)
	case "shift+tab", "up":
		return m.focusDetail((m.dFocus + 2) % 3)
	}

	var cmd tea.Cmd
	switch m.dFocus {
	case fieldDeadline:
		m.dDeadline, cmd = m.dDeadline.Update(msg)
	case fieldDetails:
		m.dDetails, cmd = m.dDetails.Update(msg)
	default:
		m.dValue, cmd = m.dValue.Update(msg)
	}
	return m, cmd
}

func (m Model) focusDetail(f detailField) (tea.Model, tea.Cmd) {
	m.dFocus = f
	m.blurDetail()
	switch f {
	case fieldDeadline:
		return m, m.dDeadline.Focus()
	case fieldDetails:
		return m, m.dDetails.Focus()
	default:
		return m, m.dValue.Focus()
	}
}

func (m *Model) blurDetail() {
	m.dValue.Blur()
	m.dDeadline.Blur()
	m.dDetails.Blur()
}

// moveRow moves the selected row one position and reports the observed
// visual order back to the model, which reconciles it with a single swap
// and flips the sort mode to custom.
func (m Model) moveRow(delta int) Model {
	target := m.cursor + delta
	if m.cursor < 0 || m.cursor >= m.lst.Len() || target < 0 || target >= m.lst.Len() {
		return m
	}

	visual := make([]int, m.lst.Len())
	for i := range visual {
		visual[i] = i
	}
	visual[m.cursor], visual[target] = visual[target], visual[m.cursor]

	m.lst.Reorder(visual).Save()
	m.cursor = target
	m.ensureVisible()
	m.status = "custom order"
	return m
}

func (m *Model) clampCursor() {
	if m.cursor >= m.lst.Len() {
		m.cursor = m.lst.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

// ensureVisible keeps the cursor row inside the list viewport.
func (m *Model) ensureVisible() {
	height := m.listHeight()
	if height <= 0 {
		return
	}
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+height {
		m.scroll = m.cursor - height + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// listHeight is the number of rows the viewport can show: total height
// minus title, status, help, and command lines.
func (m Model) listHeight() int {
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}
