package commands

import (
	"context"

	"github.com/spf13/cobra"

	"listlist/pkg/commands/options"
	"listlist/pkg/runner/check"
	"listlist/pkg/store"
)

func addCheck(topLevel *cobra.Command) {
	ko := &options.KeyOptions{}

	cmd := &cobra.Command{
		Use:   "check <index>",
		Short: "Toggle an item's checkbox",
		Example: `
listlist check 2
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
			s := check.Check{
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
