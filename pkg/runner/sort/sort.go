package sort

import (
	"context"
	"errors"

	"listlist/pkg/item"
	"listlist/pkg/list"
	"listlist/pkg/printers"
	"listlist/pkg/store"
)

// Sort reorders the list by Mode and records the mode in the settings.
type Sort struct {
	Mode item.SortMode
	Key  string

	Persistence store.Persistence
}

func (n *Sort) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not sort, no persistence")
	}

	l := list.New(n.Persistence, item.Settings{StorageKey: n.Key}).Load()
	// Days first so the remaining mode sees fresh values.
	l.CalcDays().Sort(n.Mode).Save()

	pp := printers.PrettyPrint{}
	pp.TitleWithCount(l.Settings().StorageKey, l.Len())
	pp.List(l.Items()...)

	return nil
}
