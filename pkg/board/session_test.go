package board

import (
	"testing"
	"time"
)

func TestOpenNewCancelDiscardsPlaceholder(t *testing.T) {
	b := New(nil)
	b.CreateTask("existing")
	before := len(b.Tasks())

	s, err := b.OpenNew()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !s.Pending() {
		t.Fatalf("expected a pending session")
	}
	if got := len(b.Tasks()); got != before+1 {
		t.Fatalf("placeholder should exist while editing, got %d tasks", got)
	}

	s.Cancel()
	if got := len(b.Tasks()); got != before {
		t.Fatalf("cancel must leave the collection unchanged, got %d tasks", got)
	}
}

func TestOpenNewSaveEmptyTitleDiscards(t *testing.T) {
	b := New(nil)
	s, err := b.OpenNew()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Save(Draft{Title: "   "}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := len(b.Tasks()); got != 0 {
		t.Fatalf("empty-title save must discard the placeholder, got %d tasks", got)
	}
}

func TestOpenNewSaveCommits(t *testing.T) {
	b := New(nil)
	s, err := b.OpenNew()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Save(Draft{Title: "write tests", Description: "table style", EstimateHours: 2.5}); err != nil {
		t.Fatalf("save: %v", err)
	}

	tasks := b.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected the saved task, got %d", len(tasks))
	}
	if tasks[0].Title != "write tests" || tasks[0].EstimateHours != 2.5 {
		t.Fatalf("draft not committed: %+v", tasks[0])
	}

	// A committed placeholder is no longer pending; a later empty-title
	// save must not delete it.
	if err := b.UpdateTask(tasks[0].ID, Draft{Title: ""}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := len(b.Tasks()); got != 1 {
		t.Fatalf("established task must survive empty-title save, got %d", got)
	}
}

func TestOnlyOneSessionAtATime(t *testing.T) {
	b := New(nil)
	tk := b.CreateTask("x")

	s, err := b.OpenEdit(tk.ID)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := b.OpenEdit(tk.ID); err != ErrSessionOpen {
		t.Fatalf("expected ErrSessionOpen, got %v", err)
	}
	if _, err := b.OpenNew(); err != ErrSessionOpen {
		t.Fatalf("expected ErrSessionOpen for OpenNew, got %v", err)
	}

	s.Cancel()
	if _, err := b.OpenEdit(tk.ID); err != nil {
		t.Fatalf("expected a fresh session after close, got %v", err)
	}
}

func TestOpenEditUnknownTask(t *testing.T) {
	b := New(nil)
	if _, err := b.OpenEdit("task_missing"); err != ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestSessionDraftReflectsTask(t *testing.T) {
	b := New(nil)
	tk := b.CreateTask("read spec")
	if err := b.UpdateTask(tk.ID, Draft{Title: "read spec", Description: "twice", EstimateHours: 1}); err != nil {
		t.Fatalf("update: %v", err)
	}

	s, err := b.OpenEdit(tk.ID)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Cancel()

	d := s.Draft()
	if d.Title != "read spec" || d.Description != "twice" || d.EstimateHours != 1 {
		t.Fatalf("draft mismatch: %+v", d)
	}
}

func TestSessionDeleteCascades(t *testing.T) {
	b := New(nil)
	tk := b.CreateTask("doomed")
	b.CreateFromExternalDrop(tk.ID, at(9, 0), time.Hour)

	s, err := b.OpenEdit(tk.ID)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Delete(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := len(b.Tasks()); got != 0 {
		t.Fatalf("task must be gone, got %d", got)
	}
	if got := len(b.Events()); got != 0 {
		t.Fatalf("events must cascade, got %d", got)
	}

	// The session is closed; further operations fail cleanly.
	if err := s.Save(Draft{Title: "late"}); err != ErrSessionClosed {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
	if _, err := b.OpenNew(); err != nil {
		t.Fatalf("board must accept a new session, got %v", err)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	b := New(nil)
	s, err := b.OpenNew()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s.Cancel()
	s.Cancel()
	if got := len(b.Tasks()); got != 0 {
		t.Fatalf("double cancel must not resurrect anything, got %d", got)
	}
}
