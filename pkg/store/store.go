// Package store persists the two board collections as independent JSON
// blobs in a diskv-backed directory. Loads never fail: missing or corrupt
// blobs read as empty collections, and the in-memory board stays the source
// of truth for the session when a save goes wrong.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/tempo/pkg/event"
	"tableflip.dev/tempo/pkg/task"
)

const (
	// TasksKey and EventsKey are the two fixed blob names. They are written
	// independently; there is no transaction across them, so readers must
	// tolerate an event whose task id no longer resolves.
	TasksKey  = "tasks"
	EventsKey = "events"
)

// Persistence is the storage contract for the board collections.
type Persistence interface {
	LoadTasks() []*task.Task
	LoadEvents() []*event.Event
	SaveTasks(tasks []*task.Task) error
	SaveEvents(events []*event.Event) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath, err := cfg.BasePath()
	if err != nil {
		return nil, err
	}
	return Open(basePath), nil
}

// Open creates a Persistence rooted at an explicit directory. Tests use this
// directly with t.TempDir().
func Open(basePath string) Persistence {
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) LoadTasks() []*task.Task {
	tasks := make([]*task.Task, 0)
	p.load(TasksKey, &tasks)
	return tasks
}

func (p *persistence) LoadEvents() []*event.Event {
	events := make([]*event.Event, 0)
	p.load(EventsKey, &events)
	return events
}

// load reads a blob into target. Absence is normal (fresh board); a decode
// failure is reported on stderr and otherwise treated the same way.
func (p *persistence) load(key string, target any) {
	val, err := p.d.Read(key)
	if err != nil {
		return
	}
	if err := json.Unmarshal(val, target); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
	}
}

func (p *persistence) SaveTasks(tasks []*task.Task) error {
	return p.save(TasksKey, tasks)
}

func (p *persistence) SaveEvents(events []*event.Event) error {
	return p.save(EventsKey, events)
}

func (p *persistence) save(key string, v any) error {
	if p.basePath == "" {
		return errors.New("store: base path unknown")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}
