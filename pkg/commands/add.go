package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"listlist/pkg/commands/options"
	"listlist/pkg/runner/add"
	"listlist/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	ko := &options.KeyOptions{}
	at := -1

	cmd := &cobra.Command{
		Use:   "add <value>",
		Short: "Add an item to the list",
		Example: `
listlist add buy milk
listlist add --at 0 pay rent 2026-09-05
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an item value")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Value:       strings.Join(args, " "),
				Key:         ko.Key,
				Persistence: p,
			}
			if cmd.Flags().Changed("at") {
				s.At = &at
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&at, "at", -1, "Insert at this index instead of appending.")
	options.AddKeyArg(cmd, ko)

	topLevel.AddCommand(cmd)
}
