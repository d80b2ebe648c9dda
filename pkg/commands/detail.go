package commands

import (
	"context"

	"github.com/spf13/cobra"

	"listlist/pkg/commands/options"
	"listlist/pkg/runner/detail"
	"listlist/pkg/store"
)

func addDetail(topLevel *cobra.Command) {
	ko := &options.KeyOptions{}

	cmd := &cobra.Command{
		Use:   "detail <index>",
		Short: "Show one item in full",
		Example: `
listlist detail 0
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
			s := detail.Detail{
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
