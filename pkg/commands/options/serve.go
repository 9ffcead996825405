package options

import (
	"github.com/spf13/cobra"
)

// ServeOptions
type ServeOptions struct {
	Addr     string
	BasePath string
}

func AddServeArgs(cmd *cobra.Command, o *ServeOptions) {
	cmd.Flags().StringVar(&o.Addr, "addr", ":8484",
		"Address to listen on.")
	cmd.Flags().StringVar(&o.BasePath, "base-path", "/v0",
		"Base path for the API.")
}

// ExportOptions
type ExportOptions struct {
	Output string
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "-",
		"File to write the calendar to, or '-' for stdout.")
}
