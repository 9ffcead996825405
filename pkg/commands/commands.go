package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tempo",
		Short: options.Wrap80("A task scheduling board on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addBlock(topLevel)
	addExport(topLevel)
	addServe(topLevel)
	addSeed(topLevel)
	addVersion(topLevel)
}
