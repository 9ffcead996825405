package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// WhenOptions holds the calendar placement flags for scheduling blocks.
type WhenOptions struct {
	At    string
	From  string
	To    string
	Hours float64
}

func AddWhenArgs(cmd *cobra.Command, o *WhenOptions) {
	cmd.Flags().StringVar(&o.At, "at", "",
		"When the block starts, e.g. '15:04' or '2006-01-02 15:04'.")
	cmd.Flags().StringVar(&o.From, "from", "",
		"Selection start, same formats as --at.")
	cmd.Flags().StringVar(&o.To, "to", "",
		"Selection end, same formats as --at.")
	cmd.Flags().Float64Var(&o.Hours, "hours", 0,
		"Block length in hours. Defaults to one hour.")
}

var whenLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// ParseWhen accepts an RFC3339 stamp, a date-plus-clock, or a bare clock
// which is taken to mean today.
func ParseWhen(v string) (time.Time, error) {
	for _, layout := range whenLayouts {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, nil
		}
	}
	if clock, err := time.ParseInLocation("15:04", v, time.Local); err == nil {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(),
			clock.Hour(), clock.Minute(), 0, 0, time.Local), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", v)
}
