package options

import (
	"github.com/spf13/cobra"
)

// DraftOptions carries the editable task fields. Changed reports whether
// a flag was set on the command line so edits only touch what the user
// asked for.
type DraftOptions struct {
	Title         string
	Description   string
	EstimateHours float64

	cmd *cobra.Command
}

func AddDraftArgs(cmd *cobra.Command, o *DraftOptions) {
	o.cmd = cmd
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Task title.")
	cmd.Flags().StringVarP(&o.Description, "describe", "d", "",
		"Task description.")
	cmd.Flags().Float64VarP(&o.EstimateHours, "estimate", "e", 0,
		"Estimate in hours, rounded to the nearest quarter hour.")
}

func (o *DraftOptions) Changed(name string) bool {
	if o.cmd == nil {
		return false
	}
	return o.cmd.Flags().Changed(name)
}
