// Package detail implements the transient editor for one item's value,
// deadline, and details. It addresses the item by index in the list model
// and writes edits straight back on close.
package detail

import (
	"listlist/pkg/item"
	"listlist/pkg/list"
)

// Editor edits exactly one item at a time. The editable fields are plain
// strings a surface binds its inputs to; Hide reads them back.
type Editor struct {
	Value    string
	Deadline string
	Details  string

	list  *list.List
	index int
	open  bool

	// savedScroll remembers the main list scroll position while the
	// editor is open so Hide can restore it.
	savedScroll int
}

// NewEditor returns a closed editor bound to the list.
func NewEditor(l *list.List) *Editor {
	return &Editor{list: l, index: -1}
}

// Show opens the editor for the item at index, populating the editable
// fields from the item and remembering the caller's scroll position. A
// stale index leaves the editor closed.
func (e *Editor) Show(index, scroll int) bool {
	it := e.list.ItemAt(index)
	if it == nil {
		return false
	}
	e.index = index
	e.Value = it.Value
	e.Deadline = it.Deadline
	e.Details = it.Details
	e.savedScroll = scroll
	e.open = true
	return true
}

// Hide reads the edited fields back onto the referenced item, saves and
// refreshes the list, and returns the scroll position to restore. A blank
// value means "no change" and keeps the existing value; a blank deadline
// resets the cached days to the no-deadline sentinel. Deadline strings are
// not validated here; CalcDays treats unparsable dates defensively.
func (e *Editor) Hide() int {
	if !e.open {
		return e.savedScroll
	}
	if it := e.list.ItemAt(e.index); it != nil {
		if e.Value != "" {
			it.Value = e.Value
		}
		it.Deadline = e.Deadline
		if e.Deadline == "" {
			it.DaysLeft = item.NoDeadline
		}
		it.Details = e.Details
		e.list.Save().Refresh()
	}
	e.close()
	return e.savedScroll
}

// Delete removes the referenced item, saves and refreshes, and returns the
// scroll position to restore.
func (e *Editor) Delete() int {
	if !e.open {
		return e.savedScroll
	}
	e.list.DeleteValue(e.index).Save().Refresh()
	e.close()
	return e.savedScroll
}

// Open reports whether the editor is showing.
func (e *Editor) Open() bool { return e.open }

// Index returns the model index being edited, or -1 when closed.
func (e *Editor) Index() int {
	if !e.open {
		return -1
	}
	return e.index
}

func (e *Editor) close() {
	e.open = false
	e.index = -1
	e.Value = ""
	e.Deadline = ""
	e.Details = ""
}
