package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tempo/pkg/board"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/store"
)

type Get struct {
	ShowID     bool
	TasksOnly  bool
	EventsOnly bool

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	b := board.New(n.Persistence)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if !n.EventsOnly {
		pp.Title("Tasks")
		pp.Tasks(b.Tasks(), b.Allocations())
	}
	if !n.TasksOnly {
		pp.Title("Scheduled")
		pp.Agenda(b.Events(), b.TaskTitle)
	}
	return nil
}
