package commands

import (
	"context"

	"github.com/spf13/cobra"

	"listlist/pkg/commands/options"
	"listlist/pkg/store"
	"listlist/pkg/tui"
)

func addTUI(topLevel *cobra.Command) {
	ko := &options.KeyOptions{}

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive checklist",
		Example: `
listlist tui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			return tui.Run(context.Background(), p, ko.Key)
		},
	}

	options.AddKeyArg(cmd, ko)

	topLevel.AddCommand(cmd)
}
