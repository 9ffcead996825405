package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/export"
	"tableflip.dev/tempo/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the schedule as an iCalendar feed",
		Example: `
tempo export -o tempo.ics
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := export.Export{
				Output:      eo.Output,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddExportArgs(cmd, eo)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
