package add

import (
	"context"
	"errors"

	"tableflip.dev/tempo/pkg/board"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/store"
)

type Add struct {
	Title         string
	Description   string
	EstimateHours float64
	ShowID        bool

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	b := board.New(n.Persistence)

	t := b.CreateTask(n.Title)
	if n.Description != "" || n.EstimateHours != 0 {
		if err := b.UpdateTask(t.ID, board.Draft{
			Title:         n.Title,
			Description:   n.Description,
			EstimateHours: n.EstimateHours,
		}); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Tasks")
	pp.Tasks(b.Tasks(), b.Allocations())
	return nil
}
