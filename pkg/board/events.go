package board

import (
	"math"
	"time"

	"tableflip.dev/tempo/pkg/event"
	"tableflip.dev/tempo/pkg/task"
	"tableflip.dev/tempo/pkg/timeutil"
)

// DefaultBlock is the span of an event created from an external drop when
// the gesture carries no duration of its own.
const DefaultBlock = time.Hour

// MinEstimateHours is the floor for a duration-derived default estimate.
const MinEstimateHours = 0.25

// CreateFromSelection turns a drawn time range into a new task plus an
// event spanning exactly that range, linked together. The task's default
// estimate is the selection's duration, floored at a quarter hour.
func (b *Board) CreateFromSelection(start, end time.Time) (*task.Task, *event.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t := task.New("New Task")
	t.SetEstimate(math.Max(MinEstimateHours, timeutil.DurationHours(start, end)))
	e := event.New(t.Title, start, end, t.ID)

	b.tasks = append([]*task.Task{t}, b.tasks...)
	b.events = append(b.events, e)
	b.commit()
	tc, ec := *t, *e
	return &tc, &ec
}

// CreateFromExternalDrop schedules a block for an existing task at the
// quarter-hour-snapped drop point. A non-positive duration falls back to
// the one-hour default. A drop for a task id that no longer resolves still
// creates the linked event; the allocation engine treats the dangling
// reference as unlinked.
func (b *Board) CreateFromExternalDrop(taskID string, at time.Time, d time.Duration) *event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	if d <= 0 {
		d = DefaultBlock
	}
	start := timeutil.SnapToQuarterHour(at)

	title := ""
	if t := b.findTaskLocked(taskID); t != nil {
		title = t.Title
	}
	e := event.New(title, start, start.Add(d), taskID)
	b.events = append(b.events, e)
	b.commit()
	c := *e
	return &c
}

// ApplyExternalChange accepts the calendar surface's full resulting event
// collection after an interactive gesture. The widget is the authority on
// exact geometry, so this replaces the collection wholesale rather than
// diffing against it.
func (b *Board) ApplyExternalChange(next []*event.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if next == nil {
		next = make([]*event.Event, 0)
	}
	b.events = append([]*event.Event(nil), next...)
	b.commit()
}

// DeleteEvent removes one event from the collection.
func (b *Board) DeleteEvent(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	events := b.events[:0]
	found := false
	for _, e := range b.events {
		if e.ID == id {
			found = true
			continue
		}
		events = append(events, e)
	}
	b.events = events
	if !found {
		return ErrEventNotFound
	}
	b.commit()
	return nil
}

// FindEvent resolves an event id to a detached copy.
func (b *Board) FindEvent(id string) (*event.Event, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.events {
		if e.ID == id {
			c := *e
			return &c, true
		}
	}
	return nil, false
}
