package board

import (
	"strings"

	"tableflip.dev/tempo/pkg/task"
)

// Draft carries the editable task fields through an edit flow. It is what a
// modal hands back on save.
type Draft struct {
	Title         string
	Description   string
	EstimateHours float64
}

// CreateTask inserts a new task at the front of the collection. An empty
// title creates a pending placeholder: it is tracked so an abandoned edit
// can discard it silently.
func (b *Board) CreateTask(title string) *task.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := *b.createTaskLocked(title)
	return &c
}

func (b *Board) createTaskLocked(title string) *task.Task {
	t := task.New(strings.TrimSpace(title))
	if t.Title == "" {
		b.pendingID = t.ID
	}
	b.tasks = append([]*task.Task{t}, b.tasks...)
	b.commit()
	return t
}

// UpdateTask applies a draft to the task. The title is trimmed; saving an
// empty title is a no-op for an established task and a discard for the
// pending placeholder. The estimate is clamped and quantized, and the new
// title is mirrored onto every linked event.
func (b *Board) UpdateTask(id string, d Draft) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	t := b.findTaskLocked(id)
	if t == nil {
		return ErrTaskNotFound
	}

	title := strings.TrimSpace(d.Title)
	if title == "" {
		if b.pendingID == id {
			b.removeTaskLocked(id)
			b.commit()
		}
		return nil
	}

	t.Title = title
	t.Description = d.Description
	t.SetEstimate(d.EstimateHours)
	if b.pendingID == id {
		b.pendingID = ""
	}

	// Event titles are a denormalized display cache; re-sync on every save.
	for _, e := range b.events {
		if e.TaskID == id {
			e.Title = title
		}
	}

	b.commit()
	return nil
}

// DeleteTask removes the task and cascades to every event referencing it.
// Both collections are updated and persisted before this returns.
func (b *Board) DeleteTask(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.findTaskLocked(id) == nil {
		return ErrTaskNotFound
	}
	b.removeTaskLocked(id)
	b.commit()
	return nil
}

// removeTaskLocked drops the task and its events without committing.
func (b *Board) removeTaskLocked(id string) {
	tasks := b.tasks[:0]
	for _, t := range b.tasks {
		if t.ID != id {
			tasks = append(tasks, t)
		}
	}
	b.tasks = tasks

	events := b.events[:0]
	for _, e := range b.events {
		if e.TaskID != id {
			events = append(events, e)
		}
	}
	b.events = events

	if b.pendingID == id {
		b.pendingID = ""
	}
}

// Seed populates an empty board with a few sample tasks and reports what it
// created. A non-empty board is left alone.
func (b *Board) Seed() []*task.Task {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.tasks) > 0 {
		return nil
	}
	titles := []string{"Sample task", "Task 2", "Task 3"}
	created := make([]*task.Task, 0, len(titles))
	for i := len(titles) - 1; i >= 0; i-- {
		t := task.New(titles[i])
		t.SetEstimate(1)
		b.tasks = append([]*task.Task{t}, b.tasks...)
		c := *t
		created = append([]*task.Task{&c}, created...)
	}
	b.commit()
	return created
}
