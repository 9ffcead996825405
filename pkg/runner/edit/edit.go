package edit

import (
	"context"
	"errors"

	"tableflip.dev/tempo/pkg/board"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/store"
)

// Edit updates a task through an edit session. Nil fields keep the
// task's current value.
type Edit struct {
	ID            string
	Title         *string
	Description   *string
	EstimateHours *float64
	ShowID        bool

	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}
	b := board.New(n.Persistence)

	s, err := b.OpenEdit(n.ID)
	if err != nil {
		return err
	}

	d := s.Draft()
	if n.Title != nil {
		d.Title = *n.Title
	}
	if n.Description != nil {
		d.Description = *n.Description
	}
	if n.EstimateHours != nil {
		d.EstimateHours = *n.EstimateHours
	}
	if err := s.Save(d); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Tasks")
	pp.Tasks(b.Tasks(), b.Allocations())
	return nil
}
