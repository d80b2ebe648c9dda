package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"listlist/pkg/commands/options"
	"listlist/pkg/item"
	sortrun "listlist/pkg/runner/sort"
	"listlist/pkg/store"
)

func addSort(topLevel *cobra.Command) {
	ko := &options.KeyOptions{}

	cmd := &cobra.Command{
		Use:   "sort <alpha|checked|remaining>",
		Short: "Sort the list and remember the mode",
		Example: `
listlist sort alpha
listlist sort remaining
`,
		ValidArgs: []string{
			string(item.SortAlpha),
			string(item.SortChecked),
			string(item.SortRemaining),
		},
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := item.ParseSortMode(args[0])
			if err != nil {
				return err
			}
			if mode == item.SortCustom {
				return fmt.Errorf("custom order comes from moving items, not from sort")
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := sortrun.Sort{
				Mode:        mode,
				Key:         ko.Key,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddKeyArg(cmd, ko)

	topLevel.AddCommand(cmd)
}
