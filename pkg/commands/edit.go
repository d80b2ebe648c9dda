package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"listlist/pkg/commands/options"
	"listlist/pkg/runner/edit"
	"listlist/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	ko := &options.KeyOptions{}

	cmd := &cobra.Command{
		Use:   "edit <index> <value>",
		Short: "Replace an item's text",
		Example: `
listlist edit 1 buy oat milk
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := options.ParseIndex(args[0])
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Edit{
				Index:       idx,
				Value:       strings.Join(args[1:], " "),
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
