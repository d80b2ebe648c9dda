package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"listlist/pkg/item"
	"listlist/pkg/list"
	"listlist/pkg/printers"
	"listlist/pkg/store"
)

type Get struct {
	ShowIndex bool
	JSON      bool
	Key       string

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	l := list.New(n.Persistence, item.Settings{StorageKey: n.Key}).Load().Refresh()

	if n.JSON {
		b, err := json.Marshal(l.Items())
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	fmt.Println("")
	pp := printers.PrettyPrint{ShowIndex: n.ShowIndex}
	pp.TitleWithCount(l.Settings().StorageKey, l.Len())
	pp.List(l.Items()...)

	return nil
}
