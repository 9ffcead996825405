// Package task defines the sidebar's unit of work: a titled item with an
// hour estimate. Scheduled time is never stored here; it is always derived
// from the event collection by the allocation engine.
package task

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/tempo/pkg/timeutil"
)

// MaxTitleRunes caps how much of a title the list surfaces render.
const MaxTitleRunes = 70

// Task is one unit of work. EstimateHours is stored quantized to quarter
// hours; Color is optional and derived from list position when empty.
type Task struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	EstimateHours float64 `json:"estimateHours"`
	Color         string  `json:"color,omitempty"`
}

// New creates a task with a fresh id. An empty title is allowed here; the
// board tracks such placeholders as pending until their first save.
func New(title string) *Task {
	return &Task{
		ID:    "task_" + uuid.NewString(),
		Title: title,
	}
}

// SetEstimate clamps and quantizes the estimate. NaN and negative values
// become zero.
func (t *Task) SetEstimate(hours float64) {
	t.EstimateHours = timeutil.RoundToQuarterHour(math.Max(0, hours))
}

// DisplayTitle truncates long titles for list rendering.
func (t *Task) DisplayTitle() string {
	r := []rune(strings.TrimSpace(t.Title))
	if len(r) <= MaxTitleRunes {
		return string(r)
	}
	return string(r[:MaxTitleRunes-3]) + "..."
}

// Tint returns the task's display color, deriving one from the list
// position when none is stored. Derived tints walk the hue wheel by the
// golden angle so neighboring tasks stay visually distinct.
func (t *Task) Tint(position int) string {
	if t.Color != "" {
		return t.Color
	}
	return DeriveTint(position)
}

// DeriveTint produces the deterministic tint for a list position.
func DeriveTint(position int) string {
	hue := math.Mod(float64(position)*137.508, 360)
	return colorful.Hsv(hue, 0.55, 0.92).Hex()
}
