package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "listlist",
		Short: base.Wrap80("A deadline-aware checklist on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addCheck(topLevel)
	addEdit(topLevel)
	addDel(topLevel)
	addClean(topLevel)
	addSort(topLevel)
	addDetail(topLevel)
	addKey(topLevel)
	addTUI(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}
