// Package check provides the runner logic for toggling an item's checkbox.
package check

import (
	"context"
	"errors"
	"fmt"

	"listlist/pkg/item"
	"listlist/pkg/list"
	"listlist/pkg/printers"
	"listlist/pkg/store"
)

// Check toggles the checked flag of the item at Index.
type Check struct {
	Index int
	Key   string

	Persistence store.Persistence
}

// Do executes the toggle for the configured index.
func (n *Check) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not check, no persistence")
	}

	l := list.New(n.Persistence, item.Settings{StorageKey: n.Key}).Load()
	if n.Index < 0 || n.Index >= l.Len() {
		return fmt.Errorf("no item at index %d", n.Index)
	}
	l.Toggle(n.Index).Save().Refresh()

	pp := printers.PrettyPrint{ShowIndex: true}
	pp.TitleWithCount(l.Settings().StorageKey, l.Len())
	pp.List(l.Items()...)

	return nil
}
