package commands

import (
	"context"

	"github.com/spf13/cobra"

	"listlist/pkg/commands/options"
	"listlist/pkg/runner/clean"
	"listlist/pkg/store"
)

func addClean(topLevel *cobra.Command) {
	ko := &options.KeyOptions{}

	cmd := &cobra.Command{
		Use:     "clean",
		Aliases: []string{"cln"},
		Short:   "Remove every checked item",
		Example: `
listlist clean
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := clean.Clean{
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
