package detail

import (
	"context"
	"errors"
	"testing"

	"listlist/pkg/item"
	"listlist/pkg/list"
	"listlist/pkg/store"
)

type memoryPersistence struct {
	blobs map[string][]byte
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{blobs: make(map[string][]byte)}
}

func (m *memoryPersistence) Read(key string) ([]byte, error) {
	b, ok := m.blobs[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return b, nil
}

func (m *memoryPersistence) Write(key string, blob []byte) error {
	m.blobs[key] = blob
	return nil
}

func (m *memoryPersistence) Erase(key string) error {
	delete(m.blobs, key)
	return nil
}

func (m *memoryPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func newTestList() *list.List {
	l := list.New(newMemoryPersistence(), item.Settings{StorageKey: "t", Sort: item.SortCustom})
	l.Add("walk the dog")
	l.ItemAt(0).Deadline = "2026-09-05"
	l.ItemAt(0).DaysLeft = 4
	l.ItemAt(0).Details = "around the block"
	return l
}

func TestShowPopulatesFields(t *testing.T) {
	l := newTestList()
	e := NewEditor(l)

	if !e.Show(0, 7) {
		t.Fatal("Show should succeed for a valid index")
	}
	if !e.Open() || e.Index() != 0 {
		t.Errorf("editor should be open on item 0")
	}
	if e.Value != "walk the dog" || e.Deadline != "2026-09-05" || e.Details != "around the block" {
		t.Errorf("fields not populated: %+v", e)
	}
}

func TestShowStaleIndexStaysClosed(t *testing.T) {
	l := newTestList()
	e := NewEditor(l)

	if e.Show(5, 0) {
		t.Fatal("Show should fail for a stale index")
	}
	if e.Open() || e.Index() != -1 {
		t.Errorf("editor must stay closed")
	}
}

func TestHideWritesFieldsBack(t *testing.T) {
	l := newTestList()
	e := NewEditor(l)
	e.Show(0, 7)

	e.Value = "walk both dogs"
	e.Deadline = "2026-09-10"
	e.Details = "twice"
	scroll := e.Hide()

	if scroll != 7 {
		t.Errorf("Hide should return the saved scroll position, got %d", scroll)
	}
	it := l.ItemAt(0)
	if it.Value != "walk both dogs" || it.Deadline != "2026-09-10" || it.Details != "twice" {
		t.Errorf("edits not written back: %+v", *it)
	}
	if e.Open() {
		t.Errorf("editor should close on Hide")
	}
}

func TestHideBlankValueKeepsExisting(t *testing.T) {
	l := newTestList()
	e := NewEditor(l)
	e.Show(0, 0)

	e.Value = ""
	e.Hide()

	if l.ItemAt(0).Value != "walk the dog" {
		t.Errorf("a blank value means no change, got %q", l.ItemAt(0).Value)
	}
}

func TestHideBlankDeadlineResetsDays(t *testing.T) {
	l := newTestList()
	e := NewEditor(l)
	e.Show(0, 0)

	e.Deadline = ""
	e.Hide()

	it := l.ItemAt(0)
	if it.Deadline != "" {
		t.Errorf("deadline should be cleared, got %q", it.Deadline)
	}
	if it.DaysLeft != item.NoDeadline {
		t.Errorf("clearing the deadline must reset daysLeft, got %d", it.DaysLeft)
	}
}

func TestDeleteRemovesItem(t *testing.T) {
	l := newTestList()
	l.Add("second")
	e := NewEditor(l)
	e.Show(0, 3)

	scroll := e.Delete()

	if scroll != 3 {
		t.Errorf("Delete should return the saved scroll position, got %d", scroll)
	}
	if l.Len() != 1 || l.ItemAt(0).Value != "second" {
		t.Errorf("expected only the second item to survive, got %+v", l.Items())
	}
	if e.Open() {
		t.Errorf("editor should close on Delete")
	}
}

func TestHideWhenClosedIsNoOp(t *testing.T) {
	l := newTestList()
	e := NewEditor(l)

	e.Value = "ghost edit"
	e.Hide()

	if l.ItemAt(0).Value != "walk the dog" {
		t.Errorf("a closed editor must not write, got %q", l.ItemAt(0).Value)
	}
}
