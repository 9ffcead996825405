package del

import (
	"context"
	"errors"

	"tableflip.dev/tempo/pkg/board"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/store"
)

// Delete removes a task (with its scheduled events) or a single event.
type Delete struct {
	TaskID  string
	EventID string
	ShowID  bool

	Persistence store.Persistence
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not delete, no persistence")
	}
	b := board.New(n.Persistence)

	switch {
	case n.TaskID != "":
		if err := b.DeleteTask(n.TaskID); err != nil {
			return err
		}
	case n.EventID != "":
		if err := b.DeleteEvent(n.EventID); err != nil {
			return err
		}
	default:
		return errors.New("nothing to delete")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Tasks")
	pp.Tasks(b.Tasks(), b.Allocations())
	pp.Title("Scheduled")
	pp.Agenda(b.Events(), b.TaskTitle)
	return nil
}
