package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/block"
	"tableflip.dev/tempo/pkg/store"
)

func addBlock(topLevel *cobra.Command) {
	wo := &options.WhenOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "block [task-id]",
		Short: "Schedule time on the calendar",
		Long: options.Wrap80("With a task id, drops a block for that task at --at " +
			"(snapped to the quarter hour, one hour unless --hours is given). " +
			"Without one, --from and --to carve out a new task sized to the selection."),
		Example: `
tempo block task_1234 --at 15:00 --hours 1.5
tempo block --from "2026-09-01 09:00" --to "2026-09-01 10:30"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 1 {
				return errors.New("at most one task id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := block.Block{
				Hours:       wo.Hours,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			if len(args) == 1 {
				s.TaskID = args[0]
			}
			if wo.At != "" {
				if s.At, err = options.ParseWhen(wo.At); err != nil {
					return err
				}
			}
			if wo.From != "" {
				if s.From, err = options.ParseWhen(wo.From); err != nil {
					return err
				}
			}
			if wo.To != "" {
				if s.To, err = options.ParseWhen(wo.To); err != nil {
					return err
				}
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWhenArgs(cmd, wo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
