package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/tempo/pkg/board"
	"tableflip.dev/tempo/pkg/ics"
	"tableflip.dev/tempo/pkg/store"
)

// Export writes the event collection as an iCalendar feed.
type Export struct {
	Output string

	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}
	b := board.New(n.Persistence)

	payload := ics.Export(b.Events(), b.TaskTitle)
	if n.Output == "" || n.Output == "-" {
		fmt.Print(payload)
		return nil
	}
	if err := os.WriteFile(n.Output, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", n.Output, err)
	}
	fmt.Printf("wrote %d events to %s\n", len(b.Events()), n.Output)
	return nil
}
