// Package printers renders the board for the terminal: the task list with
// allocation progress bars, and a day-grouped agenda of scheduled events.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tempo/pkg/allocation"
	"tableflip.dev/tempo/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

const barWidth = 16

var spacing = strings.Repeat(" ", len("task_8fe6a1c2-3d4b-4a5e-9f00-1b2c3d4e5f60  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Tasks prints the task list, newest first, with one progress bar per task
// comparing allocated hours against the estimate.
func (pp *PrettyPrint) Tasks(tasks []*task.Task, alloc allocation.Map) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, t := range tasks {
		planned := alloc.DisplayHours(t.ID)
		ratio := alloc.Ratio(t.ID, t.EstimateHours)
		label := fmt.Sprintf("%v / %v hr", planned, t.EstimateHours)

		row := []interface{}{Bar(ratio, t.EstimateHours > 0), label, t.DisplayTitle()}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(t.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Bar renders the allocation ratio as a fixed-width bar. The fill color
// tracks how far past the estimate the schedule has drifted; a task with no
// estimate renders a neutral bar.
func Bar(ratio float64, hasEstimate bool) string {
	fill := int(ratio*barWidth + 0.5)
	if fill > barWidth {
		fill = barWidth
	}
	if fill < 0 {
		fill = 0
	}

	c := color.New(color.FgGreen)
	switch {
	case !hasEstimate:
		c = color.New(color.Faint)
	case ratio <= 1.0:
		c = color.New(color.FgGreen)
	case ratio <= 1.5:
		c = color.New(color.FgYellow)
	case ratio <= 2.0:
		c = color.New(color.FgHiYellow)
	case ratio <= 3.0:
		c = color.New(color.FgRed)
	default:
		c = color.New(color.FgHiRed, color.Bold)
	}

	return c.Sprint(strings.Repeat("█", fill)) + color.New(color.Faint).Sprint(strings.Repeat("░", barWidth-fill))
}
