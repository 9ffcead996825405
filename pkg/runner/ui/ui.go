package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/tempo/pkg/board"
	teaui "tableflip.dev/tempo/pkg/runner/tea"
	"tableflip.dev/tempo/pkg/store"
)

type UI struct {
	Persistence store.Persistence
}

func (n *UI) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not open the ui, no persistence")
	}
	b := board.New(n.Persistence)

	watch, err := n.Persistence.Watch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store watch unavailable: %v\n", err)
		watch = nil
	}
	return teaui.Run(b, watch)
}
