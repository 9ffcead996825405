// Package ics renders the scheduled event collection as an iCalendar
// feed so blocks planned here show up in external calendar apps.
package ics

import (
	ical "github.com/arran4/golang-ical"

	"tableflip.dev/tempo/pkg/event"
)

const productID = "-//tableflip.dev//tempo//EN"

// Export serializes the events into a VCALENDAR payload. resolve maps a
// task id to its current title; linked events take the task title so the
// feed stays in sync with renames, unlinked events keep their own title.
func Export(events []*event.Event, resolve func(taskID string) string) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range events {
		if e == nil {
			continue
		}
		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(e.Start.Time)
		ve.SetStartAt(e.Start.Time)
		ve.SetEndAt(e.End.Time)

		title := e.Title
		if e.Linked() && resolve != nil {
			if resolved := resolve(e.TaskID); resolved != "" {
				title = resolved
			}
		}
		ve.SetSummary(title)
		if e.Linked() {
			ve.SetDescription("task: " + e.TaskID)
		}
	}

	return cal.Serialize()
}
