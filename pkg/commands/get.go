package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"listlist/pkg/commands/options"
	"listlist/pkg/runner/get"
	"listlist/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	ko := &options.KeyOptions{}
	showIndex := false

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the list with checkboxes and deadline badges",
		Example: `
listlist get
listlist get --index
listlist get --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowIndex:   showIndex,
				JSON:        oo.JSON,
				Key:         ko.Key,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&showIndex, "index", false, "Show item indexes.")
	base.AddOutputArg(cmd, oo)
	options.AddKeyArg(cmd, ko)

	topLevel.AddCommand(cmd)
}
