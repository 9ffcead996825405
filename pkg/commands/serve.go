package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/serve"
	"tableflip.dev/tempo/pkg/store"
)

func addServe(topLevel *cobra.Command) {
	so := &options.ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board over HTTP for calendar widgets and other tools",
		Example: `
tempo serve --addr :8484
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s := serve.Serve{
				Addr:        so.Addr,
				BasePath:    so.BasePath,
				Persistence: p,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddServeArgs(cmd, so)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
