package block

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/tempo/pkg/board"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/store"
)

// Block schedules time on the calendar. With a TaskID it drops a block
// for that task at At; without one it carves a From..To selection into a
// fresh task plus event.
type Block struct {
	TaskID string
	At     time.Time
	From   time.Time
	To     time.Time
	Hours  float64
	ShowID bool

	Persistence store.Persistence
}

func (n *Block) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not block, no persistence")
	}
	b := board.New(n.Persistence)

	if n.TaskID == "" {
		if n.From.IsZero() || n.To.IsZero() {
			return errors.New("need --from and --to without a task")
		}
		b.CreateFromSelection(n.From, n.To)
	} else {
		if n.At.IsZero() {
			return errors.New("need --at to place the block")
		}
		if _, ok := b.FindTask(n.TaskID); !ok {
			return board.ErrTaskNotFound
		}
		d := time.Duration(n.Hours * float64(time.Hour))
		b.CreateFromExternalDrop(n.TaskID, n.At, d)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Tasks")
	pp.Tasks(b.Tasks(), b.Allocations())
	pp.Title("Scheduled")
	pp.Agenda(b.Events(), b.TaskTitle)
	return nil
}
