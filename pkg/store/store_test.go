package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/tempo/pkg/event"
	"tableflip.dev/tempo/pkg/task"
)

func TestRoundTrip(t *testing.T) {
	p := Open(t.TempDir())

	t1 := task.New("write report")
	t1.SetEstimate(1.5)
	if err := p.SaveTasks([]*task.Task{t1}); err != nil {
		t.Fatalf("save tasks: %v", err)
	}

	start := time.Date(2025, time.March, 3, 14, 0, 0, 0, time.UTC)
	e1 := event.New(t1.Title, start, start.Add(90*time.Minute), t1.ID)
	if err := p.SaveEvents([]*event.Event{e1}); err != nil {
		t.Fatalf("save events: %v", err)
	}

	tasks := p.LoadTasks()
	if len(tasks) != 1 || tasks[0].ID != t1.ID || tasks[0].EstimateHours != 1.5 {
		t.Fatalf("unexpected tasks after round trip: %+v", tasks)
	}

	events := p.LoadEvents()
	if len(events) != 1 || events[0].TaskID != t1.ID {
		t.Fatalf("unexpected events after round trip: %+v", events)
	}
	if !events[0].Start.Equal(start) {
		t.Fatalf("start drifted: %v", events[0].Start)
	}
}

func TestLoadMissingIsEmpty(t *testing.T) {
	p := Open(t.TempDir())
	if got := p.LoadTasks(); len(got) != 0 {
		t.Fatalf("expected empty tasks, got %+v", got)
	}
	if got := p.LoadEvents(); len(got) != 0 {
		t.Fatalf("expected empty events, got %+v", got)
	}
}

func TestLoadCorruptIsEmpty(t *testing.T) {
	dir := t.TempDir()
	for _, key := range []string{TasksKey, EventsKey} {
		if err := os.WriteFile(filepath.Join(dir, key), []byte("{not json"), 0o644); err != nil {
			t.Fatalf("seed corrupt blob: %v", err)
		}
	}

	p := Open(dir)
	if got := p.LoadTasks(); len(got) != 0 {
		t.Fatalf("corrupt tasks blob must read as empty, got %+v", got)
	}
	if got := p.LoadEvents(); len(got) != 0 {
		t.Fatalf("corrupt events blob must read as empty, got %+v", got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	p := Open(t.TempDir())

	a := task.New("a")
	b := task.New("b")
	if err := p.SaveTasks([]*task.Task{a, b}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := p.SaveTasks([]*task.Task{b}); err != nil {
		t.Fatalf("save: %v", err)
	}

	tasks := p.LoadTasks()
	if len(tasks) != 1 || tasks[0].ID != b.ID {
		t.Fatalf("expected only %s after overwrite, got %+v", b.ID, tasks)
	}
}
