package edit

import (
	"context"
	"errors"
	"fmt"

	"listlist/pkg/item"
	"listlist/pkg/list"
	"listlist/pkg/printers"
	"listlist/pkg/store"
)

type Edit struct {
	Index int
	Value string
	Key   string

	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}

	l := list.New(n.Persistence, item.Settings{StorageKey: n.Key}).Load()
	if n.Index < 0 || n.Index >= l.Len() {
		return fmt.Errorf("no item at index %d", n.Index)
	}
	l.EditValue(n.Index, n.Value).Save().Refresh()

	pp := printers.PrettyPrint{ShowIndex: true}
	pp.TitleWithCount(l.Settings().StorageKey, l.Len())
	pp.List(l.Items()...)

	return nil
}
