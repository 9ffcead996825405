package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/edit"
	"tableflip.dev/tempo/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	do := &options.DraftOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <task-id>",
		Short: "Edit a task; linked event titles follow a rename",
		Example: `
tempo edit task_1234 --title "Final Report" --estimate 3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := edit.Edit{
				ID:          args[0],
				ShowID:      io.ShowID,
				Persistence: p,
			}
			if do.Changed("title") {
				s.Title = &do.Title
			}
			if do.Changed("describe") {
				s.Description = &do.Description
			}
			if do.Changed("estimate") {
				s.EstimateHours = &do.EstimateHours
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDraftArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
