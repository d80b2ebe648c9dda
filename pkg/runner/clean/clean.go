// Package clean provides the runner logic for dropping checked items.
package clean

import (
	"context"
	"errors"

	"listlist/pkg/item"
	"listlist/pkg/list"
	"listlist/pkg/printers"
	"listlist/pkg/store"
)

// Clean removes every checked item, keeping the survivors in order.
type Clean struct {
	Key string

	Persistence store.Persistence
}

func (n *Clean) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not clean, no persistence")
	}

	l := list.New(n.Persistence, item.Settings{StorageKey: n.Key}).Load()
	l.Clean().Save().Refresh()

	pp := printers.PrettyPrint{}
	pp.TitleWithCount(l.Settings().StorageKey, l.Len())
	pp.List(l.Items()...)

	return nil
}
