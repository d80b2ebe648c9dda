package add

import (
	"context"
	"errors"

	"listlist/pkg/item"
	"listlist/pkg/list"
	"listlist/pkg/printers"
	"listlist/pkg/store"
)

type Add struct {
	Value string
	At    *int
	Key   string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	l := list.New(n.Persistence, item.Settings{StorageKey: n.Key}).Load()
	if n.At != nil {
		l.Add(n.Value, *n.At)
	} else {
		l.Add(n.Value)
	}
	l.Save().Refresh()

	pp := printers.PrettyPrint{}
	pp.TitleWithCount(l.Settings().StorageKey, l.Len())
	pp.List(l.Items()...)

	return nil
}
