package commands

import (
	"context"

	"github.com/spf13/cobra"

	"listlist/pkg/commands/options"
	"listlist/pkg/runner/del"
	"listlist/pkg/store"
)

func addDel(topLevel *cobra.Command) {
	ko := &options.KeyOptions{}

	cmd := &cobra.Command{
		Use:     "del <index>",
		Aliases: []string{"delete", "rm"},
		Short:   "Delete an item",
		Example: `
listlist del 3
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := options.ParseIndex(args[0])
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := del.Del{
				Index:       idx,
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
