package server

import (
	"time"

	"tableflip.dev/tempo/pkg/allocation"
	"tableflip.dev/tempo/pkg/board"
	"tableflip.dev/tempo/pkg/event"
	"tableflip.dev/tempo/pkg/task"
)

// Request payloads

type TaskDraftRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	EstimateHours float64 `json:"estimateHours,omitempty" minimum:"0"`
}

type SelectionRequest struct {
	Start time.Time `json:"start" format:"date-time"`
	End   time.Time `json:"end" format:"date-time"`
}

type DropRequest struct {
	TaskID          string    `json:"taskId"`
	At              time.Time `json:"at" format:"date-time"`
	DurationMinutes int       `json:"durationMinutes,omitempty" minimum:"0"`
}

type EventRequest struct {
	ID     string    `json:"id,omitempty"`
	Title  string    `json:"title,omitempty"`
	Start  time.Time `json:"start" format:"date-time"`
	End    time.Time `json:"end" format:"date-time"`
	TaskID string    `json:"taskId,omitempty"`
}

// Response payloads

type TaskResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	EstimateHours float64 `json:"estimateHours"`
	Color         string  `json:"color,omitempty"`
}

type EventResponse struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Start  time.Time `json:"start" format:"date-time"`
	End    time.Time `json:"end" format:"date-time"`
	TaskID string    `json:"taskId,omitempty"`
}

// AllocationResponse reports one task's scheduled total. Minutes is the
// exact sum; Hours is rounded to the nearest quarter hour the way every
// display surface shows it.
type AllocationResponse struct {
	Minutes int     `json:"minutes"`
	Hours   float64 `json:"hours"`
}

type BoardResponse struct {
	Tasks       []TaskResponse                `json:"tasks"`
	Events      []EventResponse               `json:"events"`
	Allocations map[string]AllocationResponse `json:"allocations"`
}

type SelectionResponse struct {
	Task  TaskResponse  `json:"task"`
	Event EventResponse `json:"event"`
}

// Conversion helpers

func taskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		EstimateHours: t.EstimateHours,
		Color:         t.Color,
	}
}

// mapTasks resolves the display color per list position so a consuming
// widget always gets a tint, stored or derived.
func mapTasks(tasks []*task.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i, t := range tasks {
		r := taskResponse(t)
		r.Color = t.Tint(i)
		out = append(out, r)
	}
	return out
}

func eventResponse(e *event.Event) EventResponse {
	return EventResponse{
		ID:     e.ID,
		Title:  e.Title,
		Start:  e.Start.Time,
		End:    e.End.Time,
		TaskID: e.TaskID,
	}
}

func mapEvents(events []*event.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, eventResponse(e))
	}
	return out
}

func mapAllocations(alloc allocation.Map) map[string]AllocationResponse {
	out := make(map[string]AllocationResponse, len(alloc))
	for id, minutes := range alloc {
		out[id] = AllocationResponse{
			Minutes: minutes,
			Hours:   alloc.DisplayHours(id),
		}
	}
	return out
}

func boardResponse(b *board.Board) BoardResponse {
	return BoardResponse{
		Tasks:       mapTasks(b.Tasks()),
		Events:      mapEvents(b.Events()),
		Allocations: mapAllocations(b.Allocations()),
	}
}

func eventFromRequest(r EventRequest) *event.Event {
	if r.ID == "" {
		return event.New(r.Title, r.Start, r.End, r.TaskID)
	}
	return &event.Event{
		ID:     r.ID,
		Title:  r.Title,
		Start:  event.Timestamp{Time: r.Start},
		End:    event.Timestamp{Time: r.End},
		TaskID: r.TaskID,
	}
}
