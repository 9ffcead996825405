// Package allocation derives the task → scheduled-time mapping from the
// event collection. The map is recomputed from scratch after every event
// mutation; it is never patched incrementally, so it can never drift from
// the collection under cascade deletes or bulk replacements.
package allocation

import (
	"tableflip.dev/tempo/pkg/event"
	"tableflip.dev/tempo/pkg/timeutil"
)

// Map holds total allocated minutes per task id. Minutes stay unrounded so
// rounding error cannot compound across many events; only the display
// accessors quantize.
type Map map[string]int

// Compute folds the event collection into a fresh Map. Unlinked events
// contribute nothing. Dangling task ids are kept — the callers that resolve
// titles decide whether a key still maps to a live task.
func Compute(events []*event.Event) Map {
	m := make(Map, len(events))
	for _, e := range events {
		if e == nil || !e.Linked() {
			continue
		}
		m[e.TaskID] += e.Minutes()
	}
	return m
}

// Minutes returns the raw allocated minutes for a task, zero when absent.
func (m Map) Minutes(taskID string) int {
	return m[taskID]
}

// Hours returns the unrounded allocated hours for a task.
func (m Map) Hours(taskID string) float64 {
	return float64(m[taskID]) / 60
}

// DisplayHours returns the allocated hours rounded to the nearest quarter
// hour, the form every surface renders.
func (m Map) DisplayHours(taskID string) float64 {
	return timeutil.RoundToQuarterHour(m.Hours(taskID))
}

// Ratio compares allocation against an estimate. A zero estimate yields
// zero; the progress bar renderers special-case it anyway.
func (m Map) Ratio(taskID string, estimateHours float64) float64 {
	if estimateHours <= 0 {
		return 0
	}
	return m.Hours(taskID) / estimateHours
}
