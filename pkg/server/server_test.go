package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tableflip.dev/tempo/pkg/board"
	"tableflip.dev/tempo/pkg/task"
)

func newTestServer(t *testing.T) (*httptest.Server, *board.Board) {
	t.Helper()
	b := board.New(nil)
	handler, err := New(Config{Board: b, BasePath: "/v0"})
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, b
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res, data
}

func TestCreateAndListTasks(t *testing.T) {
	srv, _ := newTestServer(t)

	res, data := doJSON(t, http.MethodPost, srv.URL+"/v0/tasks", map[string]any{
		"title":         "Write report",
		"estimateHours": 2,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create status %d: %s", res.StatusCode, string(data))
	}
	var created TaskResponse
	if err := json.Unmarshal(data, &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.Title != "Write report" || created.EstimateHours != 2 {
		t.Fatalf("unexpected task: %+v", created)
	}
	if !strings.HasPrefix(created.ID, "task_") {
		t.Fatalf("unexpected id %q", created.ID)
	}

	res, data = doJSON(t, http.MethodGet, srv.URL+"/v0/tasks", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("list status %d: %s", res.StatusCode, string(data))
	}
	var tasks []TaskResponse
	if err := json.Unmarshal(data, &tasks); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != created.ID {
		t.Fatalf("unexpected list: %+v", tasks)
	}
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	srv, _ := newTestServer(t)
	res, data := doJSON(t, http.MethodPost, srv.URL+"/v0/tasks", map[string]any{"title": "   "})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", res.StatusCode, string(data))
	}
}

func TestSelectionCreatesTaskAndEvent(t *testing.T) {
	srv, b := newTestServer(t)

	start := time.Date(2025, time.March, 3, 14, 0, 0, 0, time.UTC)
	res, data := doJSON(t, http.MethodPost, srv.URL+"/v0/events/selection", map[string]any{
		"start": start.Format(time.RFC3339),
		"end":   start.Add(90 * time.Minute).Format(time.RFC3339),
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("selection status %d: %s", res.StatusCode, string(data))
	}
	var out SelectionResponse
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Task.EstimateHours != 1.5 {
		t.Fatalf("expected derived estimate 1.5, got %v", out.Task.EstimateHours)
	}
	if out.Event.TaskID != out.Task.ID {
		t.Fatalf("event not linked: %+v", out)
	}
	if got := b.Allocations().Hours(out.Task.ID); got != 1.5 {
		t.Fatalf("expected 1.5 allocated hours, got %v", got)
	}
}

func TestDropAndBoardSnapshot(t *testing.T) {
	srv, b := newTestServer(t)
	tk := b.CreateTask("deep work")

	at := time.Date(2025, time.March, 3, 9, 7, 0, 0, time.UTC)
	res, data := doJSON(t, http.MethodPost, srv.URL+"/v0/events/drop", map[string]any{
		"taskId": tk.ID,
		"at":     at.Format(time.RFC3339),
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("drop status %d: %s", res.StatusCode, string(data))
	}
	var ev EventResponse
	if err := json.Unmarshal(data, &ev); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// No duration means a one-hour block, snapped to the quarter hour.
	if ev.End.Sub(ev.Start) != time.Hour {
		t.Fatalf("expected one-hour block, got %v", ev.End.Sub(ev.Start))
	}
	if ev.Start.Minute() != 0 {
		t.Fatalf("expected snapped start, got %v", ev.Start)
	}

	res, data = doJSON(t, http.MethodGet, srv.URL+"/v0/board", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("board status %d: %s", res.StatusCode, string(data))
	}
	var snap BoardResponse
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(snap.Tasks) != 1 || len(snap.Events) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.Allocations[tk.ID].Minutes != 60 || snap.Allocations[tk.ID].Hours != 1 {
		t.Fatalf("unexpected allocation: %+v", snap.Allocations[tk.ID])
	}
}

func TestListedTasksCarryDerivedTints(t *testing.T) {
	srv, b := newTestServer(t)
	b.CreateTask("second")
	b.CreateTask("first")

	res, data := doJSON(t, http.MethodGet, srv.URL+"/v0/tasks", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("list status %d: %s", res.StatusCode, string(data))
	}
	var tasks []TaskResponse
	if err := json.Unmarshal(data, &tasks); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	for i, got := range tasks {
		if got.Color != task.DeriveTint(i) {
			t.Fatalf("task %d missing derived tint: got %q, want %q", i, got.Color, task.DeriveTint(i))
		}
	}

	res, data = doJSON(t, http.MethodGet, srv.URL+"/v0/board", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("board status %d: %s", res.StatusCode, string(data))
	}
	var snap BoardResponse
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if snap.Tasks[0].Color == "" || snap.Tasks[1].Color == "" {
		t.Fatalf("board snapshot missing tints: %+v", snap.Tasks)
	}
}

func TestUpdateTaskSyncsLinkedEvents(t *testing.T) {
	srv, b := newTestServer(t)
	tk := b.CreateTask("Draft")
	b.CreateFromExternalDrop(tk.ID, time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC), time.Hour)

	res, data := doJSON(t, http.MethodPatch, srv.URL+"/v0/tasks/"+tk.ID, map[string]any{
		"title":         "Final Report",
		"estimateHours": 3,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("update status %d: %s", res.StatusCode, string(data))
	}
	events := b.Events()
	if len(events) != 1 || events[0].Title != "Final Report" {
		t.Fatalf("linked event title not synced: %+v", events)
	}
}

func TestDeleteTaskCascadesOverHTTP(t *testing.T) {
	srv, b := newTestServer(t)
	tk := b.CreateTask("doomed")
	b.CreateFromExternalDrop(tk.ID, time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC), time.Hour)

	res, data := doJSON(t, http.MethodDelete, srv.URL+"/v0/tasks/"+tk.ID, nil)
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status %d: %s", res.StatusCode, string(data))
	}
	if len(b.Tasks()) != 0 || len(b.Events()) != 0 {
		t.Fatalf("cascade failed: %d tasks, %d events", len(b.Tasks()), len(b.Events()))
	}

	res, _ = doJSON(t, http.MethodDelete, srv.URL+"/v0/tasks/"+tk.ID, nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for missing task, got %d", res.StatusCode)
	}
}

func TestReplaceEvents(t *testing.T) {
	srv, b := newTestServer(t)
	tk := b.CreateTask("t1")
	b.CreateFromExternalDrop(tk.ID, time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC), time.Hour)

	start := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	res, data := doJSON(t, http.MethodPut, srv.URL+"/v0/events", []map[string]any{
		{
			"title":  "t1",
			"start":  start.Format(time.RFC3339),
			"end":    start.Add(2 * time.Hour).Format(time.RFC3339),
			"taskId": tk.ID,
		},
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("replace status %d: %s", res.StatusCode, string(data))
	}
	if got := b.Allocations().Hours(tk.ID); got != 2 {
		t.Fatalf("expected recomputed 2 hours, got %v", got)
	}
}

func TestDeleteEvent(t *testing.T) {
	srv, b := newTestServer(t)
	tk := b.CreateTask("t1")
	ev := b.CreateFromExternalDrop(tk.ID, time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC), time.Hour)

	res, _ := doJSON(t, http.MethodDelete, srv.URL+"/v0/events/"+ev.ID, nil)
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("delete event status %d", res.StatusCode)
	}
	res, _ = doJSON(t, http.MethodDelete, srv.URL+"/v0/events/"+ev.ID, nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for missing event, got %d", res.StatusCode)
	}
}

func TestExportICS(t *testing.T) {
	srv, b := newTestServer(t)
	tk := b.CreateTask("Ship it")
	b.CreateFromExternalDrop(tk.ID, time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC), time.Hour)

	res, data := doJSON(t, http.MethodGet, srv.URL+"/v0/export.ics", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("export status %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(string(data), "SUMMARY:Ship it") {
		t.Fatalf("feed missing event summary:\n%s", data)
	}
}
