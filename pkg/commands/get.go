package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/get"
	"tableflip.dev/tempo/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var tasksOnly, eventsOnly bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the board: tasks with allocation bars, then the schedule",
		Example: `
tempo get
tempo get --tasks --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				TasksOnly:   tasksOnly,
				EventsOnly:  eventsOnly,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&tasksOnly, "tasks", false, "Only show tasks.")
	cmd.Flags().BoolVar(&eventsOnly, "events", false, "Only show the schedule.")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
