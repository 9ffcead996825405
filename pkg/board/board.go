// Package board owns the task and event collections and mediates every
// mutation to them. It is the shared core behind the CLI, the TUI, and the
// HTTP surface: apply the change, recompute allocations, then persist,
// always in that order, so no caller ever observes a stale allocation map.
package board

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"tableflip.dev/tempo/pkg/allocation"
	"tableflip.dev/tempo/pkg/event"
	"tableflip.dev/tempo/pkg/store"
	"tableflip.dev/tempo/pkg/task"
)

var (
	ErrTaskNotFound  = errors.New("board: task not found")
	ErrEventNotFound = errors.New("board: event not found")
	ErrSessionOpen   = errors.New("board: an edit session is already open")
	ErrSessionClosed = errors.New("board: edit session already closed")
)

// Board holds both collections. All mutations run under one mutex; the
// original surface for this model is a single-threaded UI loop, and the
// lock keeps the same "one fully-applied mutation at a time" ordering now
// that HTTP handlers can call in concurrently.
type Board struct {
	mu          sync.Mutex
	persistence store.Persistence // nil keeps the board memory-only (tests)

	tasks  []*task.Task
	events []*event.Event
	alloc  allocation.Map

	pendingID string
	session   *Session
}

// New builds a board from whatever the store holds. A nil persistence is
// valid and leaves the board memory-only.
func New(p store.Persistence) *Board {
	b := &Board{persistence: p}
	b.Reload()
	return b
}

// Reload replaces the in-memory collections with the persisted ones and
// recomputes allocations. Used at startup and when a store watch reports an
// out-of-band change.
func (b *Board) Reload() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.persistence != nil {
		b.tasks = b.persistence.LoadTasks()
		b.events = b.persistence.LoadEvents()
	}
	if b.tasks == nil {
		b.tasks = make([]*task.Task, 0)
	}
	if b.events == nil {
		b.events = make([]*event.Event, 0)
	}
	b.recompute()
}

// recompute rebuilds the allocation map from the full event collection.
// Callers must hold b.mu. Never patch the map in place: bulk replacement
// and cascade deletes make incremental counters drift.
func (b *Board) recompute() {
	b.alloc = allocation.Compute(b.events)
}

// persist writes both blobs best-effort. The in-memory state remains the
// source of truth for the session when a write fails. Callers hold b.mu.
func (b *Board) persist() {
	if b.persistence == nil {
		return
	}
	if err := b.persistence.SaveTasks(b.tasks); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
	}
	if err := b.persistence.SaveEvents(b.events); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
	}
}

// commit finishes a mutation: allocations first, then persistence.
func (b *Board) commit() {
	b.recompute()
	b.persist()
}

// Tasks returns the task collection, most recently created first. The
// returned structs are detached copies: a mutation committed after the
// snapshot is taken never changes what the caller already holds.
func (b *Board) Tasks() []*task.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*task.Task, len(b.tasks))
	for i, t := range b.tasks {
		c := *t
		out[i] = &c
	}
	return out
}

// Events returns the event collection as detached copies, like Tasks.
func (b *Board) Events() []*event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*event.Event, len(b.events))
	for i, e := range b.events {
		c := *e
		out[i] = &c
	}
	return out
}

// Allocations returns the allocation map computed from the event collection
// as of the last completed mutation.
func (b *Board) Allocations() allocation.Map {
	b.mu.Lock()
	defer b.mu.Unlock()
	m := make(allocation.Map, len(b.alloc))
	for id, minutes := range b.alloc {
		m[id] = minutes
	}
	return m
}

// FindTask resolves a task id to a detached copy. A false return covers
// both deleted tasks and dangling references left by non-atomic persistence.
func (b *Board) FindTask(id string) (*task.Task, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if t := b.findTaskLocked(id); t != nil {
		c := *t
		return &c, true
	}
	return nil, false
}

func (b *Board) findTaskLocked(id string) *task.Task {
	for _, t := range b.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// TaskTitle resolves a task id to its title for display. Dangling ids read
// as empty, never as an error.
func (b *Board) TaskTitle(id string) string {
	if t, ok := b.FindTask(id); ok {
		return t.Title
	}
	return ""
}
