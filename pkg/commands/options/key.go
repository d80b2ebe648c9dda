package options

import (
	"github.com/spf13/cobra"

	"listlist/pkg/item"
)

// KeyOptions
type KeyOptions struct {
	Key string
}

func AddKeyArg(cmd *cobra.Command, ko *KeyOptions) {
	cmd.Flags().StringVarP(&ko.Key, "key", "k", item.DefaultStorageKey,
		"Storage key the list is saved under.")
}
