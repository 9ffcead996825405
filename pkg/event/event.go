// Package event defines the scheduled time blocks placed on the calendar.
// An event may link to a task (its title mirrors the task's) or stand alone
// as an unlinked block that occupies calendar space without allocating time.
package event

import (
	"time"

	"github.com/google/uuid"

	"tableflip.dev/tempo/pkg/timeutil"
)

// Event is one block on the calendar. TaskID is empty for unlinked blocks;
// a TaskID that no longer resolves to a task is treated as unlinked too.
type Event struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Start  Timestamp `json:"start"`
	End    Timestamp `json:"end"`
	TaskID string    `json:"taskId,omitempty"`
}

// New creates an event with a fresh id spanning [start, end].
func New(title string, start, end time.Time, taskID string) *Event {
	return &Event{
		ID:     "ev_" + uuid.NewString(),
		Title:  title,
		Start:  Timestamp{Time: start},
		End:    Timestamp{Time: end},
		TaskID: taskID,
	}
}

// Minutes is the event's scheduled span in whole minutes, never negative.
func (e *Event) Minutes() int {
	return timeutil.DurationMinutes(e.Start.Time, e.End.Time)
}

// Duration is the event's span as a time.Duration, clamped at zero.
func (e *Event) Duration() time.Duration {
	d := e.End.Sub(e.Start.Time)
	if d < 0 {
		return 0
	}
	return d
}

// Linked reports whether the event references any task at all. It says
// nothing about whether that reference still resolves.
func (e *Event) Linked() bool {
	return e.TaskID != ""
}
