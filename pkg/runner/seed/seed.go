package seed

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tempo/pkg/board"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/store"
)

// Seed fills an empty board with sample tasks.
type Seed struct {
	Persistence store.Persistence
}

func (n *Seed) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not seed, no persistence")
	}
	b := board.New(n.Persistence)

	created := b.Seed()
	if created == nil {
		fmt.Println("board is not empty, nothing seeded")
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.Title("Tasks")
	pp.Tasks(b.Tasks(), b.Allocations())
	return nil
}
