package printers

import (
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/tempo/pkg/event"
)

const (
	layoutDay  = "Monday, January 2"
	layoutTime = "15:04"
)

// Agenda prints the event collection grouped by day, earliest first.
// resolve maps a task id to its current title; dangling or absent links
// render as unlinked blocks.
func (pp *PrettyPrint) Agenda(events []*event.Event, resolve func(taskID string) string) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" nothing scheduled\n\n")
		return
	}

	sorted := append([]*event.Event(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start.Time)
	})

	day := color.New(color.Bold, color.Underline)
	row := color.New()
	dim := color.New(color.Faint, color.Italic)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	var lastStart time.Time
	for i, e := range sorted {
		if i == 0 || !e.Start.SameDay(lastStart) {
			if i > 0 {
				fmt.Println("")
			}
			_, _ = day.Println(e.Start.Local().Format(layoutDay))
		}
		lastStart = e.Start.Local()

		title := e.Title
		linked := false
		if e.Linked() && resolve != nil {
			if resolved := resolve(e.TaskID); resolved != "" {
				title = resolved
				linked = true
			}
		}

		if pp.ShowID {
			_, _ = y.Printf("%s  ", e.ID)
		}
		_, _ = row.Printf("%s–%s  %s",
			e.Start.Local().Format(layoutTime),
			e.End.Local().Format(layoutTime),
			title)
		if !linked {
			_, _ = dim.Print("  (unlinked)")
		}
		_, _ = row.Printf("  %s\n", dim.Sprint(formatSpan(e.Minutes())))
	}
	fmt.Println("")
}

func formatSpan(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%02dm", h, m)
	}
}
