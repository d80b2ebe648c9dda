package detail

import (
	"context"
	"errors"
	"fmt"

	"github.com/muesli/reflow/wordwrap"

	"listlist/pkg/item"
	"listlist/pkg/list"
	"listlist/pkg/printers"
	"listlist/pkg/store"
)

const wrapWidth = 72

// Detail prints one item in full, with the details text word-wrapped for
// the terminal.
type Detail struct {
	Index int
	Key   string

	Persistence store.Persistence
}

func (n *Detail) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show detail, no persistence")
	}

	l := list.New(n.Persistence, item.Settings{StorageKey: n.Key}).Load().Refresh()
	it := l.ItemAt(n.Index)
	if it == nil {
		return fmt.Errorf("no item at index %d", n.Index)
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Detail(*it, wordwrap.String(it.Details, wrapWidth))

	return nil
}
