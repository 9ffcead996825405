// Package server exposes the board over HTTP so other tools, and the
// calendar widget embedding, can read and mutate the same collections the
// CLI and TUI operate on.
package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"tableflip.dev/tempo/pkg/board"
	"tableflip.dev/tempo/pkg/event"
	"tableflip.dev/tempo/pkg/ics"
)

// Config for the HTTP API handler.
type Config struct {
	Board    *board.Board
	BasePath string
}

// New returns an HTTP handler exposing the board API.
func New(cfg Config) (http.Handler, error) {
	if cfg.Board == nil {
		return nil, errors.New("server: board is required")
	}
	basePath := cfg.BasePath
	if basePath == "" {
		basePath = "/v0"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}

	router := chi.NewRouter()
	hcfg := huma.DefaultConfig("Tempo API", "0.1.0")
	api := humachi.New(router, hcfg)
	group := huma.NewGroup(api, basePath)

	registerHealth(group)
	registerBoard(group, cfg.Board)
	registerTasks(group, cfg.Board)
	registerEvents(group, cfg.Board)
	registerExport(router, basePath, cfg.Board)

	return router, nil
}

func handleError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, board.ErrTaskNotFound), errors.Is(err, board.ErrEventNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, board.ErrSessionOpen):
		return huma.Error409Conflict(err.Error())
	default:
		return huma.Error500InternalServerError("internal error", err)
	}
}

func registerHealth(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body map[string]string `json:"body"`
	}, error) {
		return &struct {
			Body map[string]string `json:"body"`
		}{Body: map[string]string{"status": "ok"}}, nil
	})
}

func registerBoard(api huma.API, b *board.Board) {
	huma.Register(api, huma.Operation{
		OperationID: "get-board",
		Method:      http.MethodGet,
		Path:        "/board",
		Summary:     "Board snapshot",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body BoardResponse `json:"body"`
	}, error) {
		return &struct {
			Body BoardResponse `json:"body"`
		}{Body: boardResponse(b)}, nil
	})
}

func registerTasks(api huma.API, b *board.Board) {
	huma.Register(api, huma.Operation{
		OperationID: "list-tasks",
		Method:      http.MethodGet,
		Path:        "/tasks",
		Summary:     "List tasks",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body []TaskResponse `json:"body"`
	}, error) {
		return &struct {
			Body []TaskResponse `json:"body"`
		}{Body: mapTasks(b.Tasks())}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-task",
		Method:        http.MethodPost,
		Path:          "/tasks",
		Summary:       "Create task",
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest},
	}, func(ctx context.Context, input *struct {
		Body TaskDraftRequest `json:"body"`
	}) (*struct {
		Body TaskResponse `json:"body"`
	}, error) {
		title := strings.TrimSpace(input.Body.Title)
		if title == "" {
			return nil, huma.Error400BadRequest("title is required")
		}
		t := b.CreateTask(title)
		if input.Body.Description != "" || input.Body.EstimateHours != 0 {
			if err := b.UpdateTask(t.ID, board.Draft{
				Title:         title,
				Description:   input.Body.Description,
				EstimateHours: input.Body.EstimateHours,
			}); err != nil {
				return nil, handleError(err)
			}
		}
		t, _ = b.FindTask(t.ID)
		return &struct {
			Body TaskResponse `json:"body"`
		}{Body: taskResponse(t)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-task",
		Method:      http.MethodPatch,
		Path:        "/tasks/{id}",
		Summary:     "Update task",
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID   string           `path:"id"`
		Body TaskDraftRequest `json:"body"`
	}) (*struct {
		Body TaskResponse `json:"body"`
	}, error) {
		if _, ok := b.FindTask(input.ID); !ok {
			return nil, handleError(board.ErrTaskNotFound)
		}
		if err := b.UpdateTask(input.ID, board.Draft{
			Title:         input.Body.Title,
			Description:   input.Body.Description,
			EstimateHours: input.Body.EstimateHours,
		}); err != nil {
			return nil, handleError(err)
		}
		t, _ := b.FindTask(input.ID)
		return &struct {
			Body TaskResponse `json:"body"`
		}{Body: taskResponse(t)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-task",
		Method:        http.MethodDelete,
		Path:          "/tasks/{id}",
		Summary:       "Delete task and its scheduled events",
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID string `path:"id"`
	}) (*struct{}, error) {
		if err := b.DeleteTask(input.ID); err != nil {
			return nil, handleError(err)
		}
		return &struct{}{}, nil
	})
}

func registerEvents(api huma.API, b *board.Board) {
	huma.Register(api, huma.Operation{
		OperationID: "list-events",
		Method:      http.MethodGet,
		Path:        "/events",
		Summary:     "List events",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body []EventResponse `json:"body"`
	}, error) {
		return &struct {
			Body []EventResponse `json:"body"`
		}{Body: mapEvents(b.Events())}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-from-selection",
		Method:        http.MethodPost,
		Path:          "/events/selection",
		Summary:       "Create a task and event from a calendar selection",
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest},
	}, func(ctx context.Context, input *struct {
		Body SelectionRequest `json:"body"`
	}) (*struct {
		Body SelectionResponse `json:"body"`
	}, error) {
		if input.Body.Start.IsZero() || input.Body.End.IsZero() {
			return nil, huma.Error400BadRequest("start and end are required")
		}
		t, e := b.CreateFromSelection(input.Body.Start, input.Body.End)
		return &struct {
			Body SelectionResponse `json:"body"`
		}{Body: SelectionResponse{Task: taskResponse(t), Event: eventResponse(e)}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-from-drop",
		Method:        http.MethodPost,
		Path:          "/events/drop",
		Summary:       "Schedule a block for an existing task",
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest},
	}, func(ctx context.Context, input *struct {
		Body DropRequest `json:"body"`
	}) (*struct {
		Body EventResponse `json:"body"`
	}, error) {
		if input.Body.At.IsZero() {
			return nil, huma.Error400BadRequest("at is required")
		}
		d := time.Duration(input.Body.DurationMinutes) * time.Minute
		e := b.CreateFromExternalDrop(input.Body.TaskID, input.Body.At, d)
		return &struct {
			Body EventResponse `json:"body"`
		}{Body: eventResponse(e)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "replace-events",
		Method:      http.MethodPut,
		Path:        "/events",
		Summary:     "Replace the event collection",
	}, func(ctx context.Context, input *struct {
		Body []EventRequest `json:"body"`
	}) (*struct {
		Body []EventResponse `json:"body"`
	}, error) {
		next := make([]*event.Event, 0, len(input.Body))
		for _, r := range input.Body {
			next = append(next, eventFromRequest(r))
		}
		b.ApplyExternalChange(next)
		return &struct {
			Body []EventResponse `json:"body"`
		}{Body: mapEvents(b.Events())}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-event",
		Method:        http.MethodDelete,
		Path:          "/events/{id}",
		Summary:       "Delete event",
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID string `path:"id"`
	}) (*struct{}, error) {
		if err := b.DeleteEvent(input.ID); err != nil {
			return nil, handleError(err)
		}
		return &struct{}{}, nil
	})
}

// registerExport serves the iCalendar feed as a raw chi route so the
// text/calendar payload bypasses huma's JSON content negotiation.
func registerExport(r chi.Router, basePath string, b *board.Board) {
	r.Get(basePath+"/export.ics", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="tempo.ics"`)
		_, _ = w.Write([]byte(ics.Export(b.Events(), b.TaskTitle)))
	})
}
