package teaui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/tempo/pkg/board"
	"tableflip.dev/tempo/pkg/event"
	"tableflip.dev/tempo/pkg/store"
	"tableflip.dev/tempo/pkg/task"
	"tableflip.dev/tempo/pkg/timeutil"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeCommand
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionAdd
	actionEdit
	actionSchedule
)

// Insert mode walks the draft one field at a time.
type step int

const (
	stepTitle step = iota
	stepDescription
	stepEstimate
)

// task item for the left list
type taskItem struct {
	t       *task.Task
	minutes int
}

func (it taskItem) Title() string {
	planned := timeutil.RoundToQuarterHour(float64(it.minutes) / 60)
	return fmt.Sprintf("%v / %v hr  %s", planned, it.t.EstimateHours, it.t.DisplayTitle())
}
func (it taskItem) Description() string { return "" }
func (it taskItem) FilterValue() string { return it.t.Title }

// event item for the right list
type eventItem struct {
	e     *event.Event
	title string
}

func (it eventItem) Title() string {
	title := it.title
	if title == "" {
		title = it.e.Title
		if title == "" {
			title = "(unlinked)"
		}
	}
	return fmt.Sprintf("%s %s–%s  %s",
		it.e.Start.Local().Format("Mon Jan 2"),
		it.e.Start.Local().Format("15:04"),
		it.e.End.Local().Format("15:04"),
		title)
}
func (it eventItem) Description() string { return "" }
func (it eventItem) FilterValue() string { return it.title }

// Model contains UI state
type Model struct {
	board *board.Board
	watch <-chan store.Event
	ctx   context.Context

	mode   mode
	action action
	step   step
	draft  board.Draft

	session *board.Session

	focus int // 0: tasks, 1: schedule

	taskList  list.Model
	eventList list.Model

	input textinput.Model

	status string

	awaitingDD bool
	lastDTime  time.Time

	termWidth  int
	termHeight int

	focusDel list.DefaultDelegate
	blurDel  list.DefaultDelegate
}

// New creates a new UI model over the board.
func New(b *board.Board) Model {
	dFocus := list.NewDefaultDelegate()
	dBlur := list.NewDefaultDelegate()
	// Unfocused list should not visually highlight the selected item
	dBlur.Styles.SelectedTitle = dBlur.Styles.NormalTitle
	dBlur.Styles.SelectedDesc = dBlur.Styles.NormalDesc
	dFocus.ShowDescription = false
	dBlur.ShowDescription = false
	dFocus.SetSpacing(0)
	dBlur.SetSpacing(0)

	l1 := list.New([]list.Item{}, dFocus, 48, 20)
	l1.Title = "Tasks"
	l1.SetShowHelp(false)
	l1.SetShowStatusBar(false)

	l2 := list.New([]list.Item{}, dBlur, 48, 20)
	l2.Title = "Schedule"
	l2.SetShowHelp(false)
	l2.SetShowStatusBar(false)

	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Focus()
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	m := Model{
		board:     b,
		ctx:       context.Background(),
		mode:      modeNormal,
		action:    actionNone,
		focus:     0,
		taskList:  l1,
		eventList: l2,
		input:     ti,
		status:    "NORMAL: h/l panes, j/k move, o add, i edit, s schedule, dd delete task, x delete event, : commands, ? help",
		focusDel:  dFocus,
		blurDel:   dBlur,
	}
	m.updateFocusHeaders()
	return m
}

// Init loads initial data
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadBoard(), m.waitForChange())
}

func (m *Model) loadBoard() tea.Cmd {
	return func() tea.Msg {
		if m.board == nil {
			return boardLoadedMsg{}
		}
		alloc := m.board.Allocations()
		tasks := m.board.Tasks()
		taskItems := make([]list.Item, 0, len(tasks))
		for _, t := range tasks {
			taskItems = append(taskItems, taskItem{t: t, minutes: alloc.Minutes(t.ID)})
		}
		events := m.board.Events()
		eventItems := make([]list.Item, 0, len(events))
		for _, e := range events {
			eventItems = append(eventItems, eventItem{e: e, title: m.board.TaskTitle(e.TaskID)})
		}
		return boardLoadedMsg{tasks: taskItems, events: eventItems}
	}
}

// waitForChange blocks on the store watch and reports out-of-band writes.
func (m *Model) waitForChange() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	ch := m.watch
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return boardChangedMsg{}
	}
}

// messages
type errMsg struct{ err error }
type boardLoadedMsg struct {
	tasks  []list.Item
	events []list.Item
}
type boardChangedMsg struct{}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	skipListRouting := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case boardLoadedMsg:
		m.taskList.SetItems(msg.tasks)
		m.eventList.SetItems(msg.events)
	case boardChangedMsg:
		if m.board != nil {
			m.board.Reload()
		}
		m.status = "Refreshed from store"
		cmds = append(cmds, m.loadBoard(), m.waitForChange())
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
				skipListRouting = true
			}
		case modeInsert:
			switch msg.String() {
			case "enter":
				m.advanceInsert(&cmds)
				skipListRouting = true
			case "esc":
				m.cancelInsert()
				skipListRouting = true
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeCommand:
			switch msg.String() {
			case "enter":
				input := strings.TrimSpace(m.input.Value())
				switch input {
				case "q", "quit", "exit":
					cmds = append(cmds, tea.Quit)
				case "seed":
					if m.board != nil {
						if created := m.board.Seed(); created != nil {
							m.status = fmt.Sprintf("Seeded %d tasks", len(created))
						} else {
							m.status = "Board is not empty, nothing seeded"
						}
						cmds = append(cmds, m.loadBoard())
					}
				case "":
					// nothing
				default:
					m.status = fmt.Sprintf("Unknown command: %s", input)
				}
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
				skipListRouting = true
			case "esc":
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
				m.status = "Command cancelled"
				skipListRouting = true
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			// Vim-style navigation and commands
			switch msg.String() {
			case ":":
				m.enterCommandMode(&cmds)
				skipListRouting = true

			// pane focus
			case "h", "left":
				m.focus = 0
				m.updateFocusHeaders()
				skipListRouting = true
			case "l", "right":
				m.focus = 1
				m.updateFocusHeaders()
				skipListRouting = true

			// movement
			case "j":
				if m.focus == 0 {
					m.taskList.CursorDown()
				} else {
					m.eventList.CursorDown()
				}
			case "k":
				if m.focus == 0 {
					m.taskList.CursorUp()
				} else {
					m.eventList.CursorUp()
				}
			case "g":
				if m.focus == 0 {
					m.taskList.Select(0)
				} else {
					m.eventList.Select(0)
				}
			case "G":
				if m.focus == 0 {
					m.taskList.Select(len(m.taskList.Items()) - 1)
				} else {
					m.eventList.Select(len(m.eventList.Items()) - 1)
				}

			// add
			case "o", "O":
				m.beginAdd(&cmds)
				skipListRouting = true

			// edit
			case "i":
				m.beginEdit(&cmds)
				skipListRouting = true

			// schedule a block for the selected task
			case "s":
				if it := m.currentTask(); it != nil && m.focus == 0 {
					m.action = actionSchedule
					m.startInsert(stepTitle, "", &cmds)
					m.input.Placeholder = "15:04 [hours]"
					skipListRouting = true
				}

			// delete event
			case "x":
				if m.focus == 1 {
					if it := m.currentEvent(); it != nil {
						if err := m.board.DeleteEvent(it.e.ID); err != nil {
							cmds = append(cmds, func() tea.Msg { return errMsg{err} })
						} else {
							m.status = "Event deleted"
							cmds = append(cmds, m.loadBoard())
						}
					}
				}

			// delete task: dd, cascades to its blocks
			case "d":
				if it := m.currentTask(); it != nil && m.focus == 0 {
					if m.awaitingDD && time.Since(m.lastDTime) < 600*time.Millisecond {
						if err := m.board.DeleteTask(it.t.ID); err != nil {
							cmds = append(cmds, func() tea.Msg { return errMsg{err} })
						} else {
							m.status = "Task and its blocks deleted"
							cmds = append(cmds, m.loadBoard())
						}
						m.awaitingDD = false
					} else {
						m.awaitingDD = true
						m.lastDTime = time.Now()
					}
				}

			case "?":
				m.mode = modeHelp

			// quit/refresh
			case "r":
				cmds = append(cmds, m.loadBoard())
			case "q":
				m.status = "Use :q or :exit to quit"
				skipListRouting = true
			}
		}
	}

	// route lists updates depending on focus
	if m.mode == modeNormal && !skipListRouting {
		if m.focus == 0 {
			var cmd tea.Cmd
			m.taskList, cmd = m.taskList.Update(msg)
			cmds = append(cmds, cmd)
		} else {
			var cmd tea.Cmd
			m.eventList, cmd = m.eventList.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) currentTask() *taskItem {
	if len(m.taskList.Items()) == 0 {
		return nil
	}
	sel := m.taskList.SelectedItem()
	if sel == nil {
		return nil
	}
	it, _ := sel.(taskItem)
	return &it
}

func (m *Model) currentEvent() *eventItem {
	if len(m.eventList.Items()) == 0 {
		return nil
	}
	sel := m.eventList.SelectedItem()
	if sel == nil {
		return nil
	}
	it, _ := sel.(eventItem)
	return &it
}

func (m *Model) beginAdd(cmds *[]tea.Cmd) {
	s, err := m.board.OpenNew()
	if err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		return
	}
	m.session = s
	m.action = actionAdd
	m.draft = board.Draft{}
	m.startInsert(stepTitle, "", cmds)
	*cmds = append(*cmds, m.loadBoard())
}

func (m *Model) beginEdit(cmds *[]tea.Cmd) {
	it := m.currentTask()
	if it == nil || m.focus != 0 {
		return
	}
	s, err := m.board.OpenEdit(it.t.ID)
	if err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		return
	}
	m.session = s
	m.action = actionEdit
	m.draft = s.Draft()
	m.startInsert(stepTitle, m.draft.Title, cmds)
}

func (m *Model) startInsert(at step, value string, cmds *[]tea.Cmd) {
	m.mode = modeInsert
	m.step = at
	m.input.Placeholder = m.insertPrompt()
	m.input.SetValue(value)
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) insertPrompt() string {
	if m.action == actionSchedule {
		return "Schedule"
	}
	switch m.step {
	case stepTitle:
		return "Title"
	case stepDescription:
		return "Description"
	default:
		return "Estimate (hours)"
	}
}

// advanceInsert commits the current field and moves to the next, saving
// the session after the last one.
func (m *Model) advanceInsert(cmds *[]tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())

	if m.action == actionSchedule {
		m.finishSchedule(input, cmds)
		return
	}

	switch m.step {
	case stepTitle:
		m.draft.Title = input
		next := ""
		if m.action == actionEdit {
			next = m.draft.Description
		}
		m.startInsert(stepDescription, next, cmds)
	case stepDescription:
		m.draft.Description = input
		next := ""
		if m.action == actionEdit && m.draft.EstimateHours > 0 {
			next = strconv.FormatFloat(m.draft.EstimateHours, 'f', -1, 64)
		}
		m.startInsert(stepEstimate, next, cmds)
	case stepEstimate:
		if input != "" {
			if hours, err := strconv.ParseFloat(input, 64); err == nil {
				m.draft.EstimateHours = hours
			}
		}
		if m.session != nil {
			if err := m.session.Save(m.draft); err != nil {
				*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
			} else if m.draft.Title == "" {
				m.status = "Discarded, no title"
			} else {
				m.status = "Saved"
			}
			m.session = nil
		}
		m.leaveInsert()
		*cmds = append(*cmds, m.loadBoard())
	}
}

func (m *Model) finishSchedule(input string, cmds *[]tea.Cmd) {
	it := m.currentTask()
	if it == nil || input == "" {
		m.leaveInsert()
		m.status = "Schedule cancelled"
		return
	}
	fields := strings.Fields(input)
	clock, err := time.ParseInLocation("15:04", fields[0], time.Local)
	if err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{fmt.Errorf("unrecognized time %q", fields[0])} })
		m.leaveInsert()
		return
	}
	now := time.Now()
	at := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)
	var d time.Duration
	if len(fields) > 1 {
		if hours, perr := strconv.ParseFloat(fields[1], 64); perr == nil {
			d = time.Duration(hours * float64(time.Hour))
		}
	}
	m.board.CreateFromExternalDrop(it.t.ID, at, d)
	m.status = "Block scheduled"
	m.leaveInsert()
	*cmds = append(*cmds, m.loadBoard())
}

func (m *Model) cancelInsert() {
	if m.session != nil {
		m.session.Cancel()
		m.session = nil
	}
	prev := m.action
	m.leaveInsert()
	switch prev {
	case actionAdd:
		m.status = "Add cancelled"
	case actionEdit:
		m.status = "Edit cancelled"
	case actionSchedule:
		m.status = "Schedule cancelled"
	default:
		m.status = "Cancelled"
	}
}

func (m *Model) leaveInsert() {
	m.mode = modeNormal
	m.action = actionNone
	m.step = stepTitle
	m.input.Reset()
	m.input.Blur()
}

// View renders two lists and optional input/help overlays
func (m Model) View() string {
	left := m.taskList.View()
	right := m.eventList.View()
	gap := lipgloss.NewStyle().Padding(0, 1).Render
	modeStr := map[mode]string{modeNormal: "NORMAL", modeInsert: "INSERT", modeCommand: "CMD", modeHelp: "HELP"}[m.mode]
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(fmt.Sprintf("[%s] %s", modeStr, m.status))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, gap(" "), right)

	if m.mode == modeInsert {
		body += "\n\n" + m.insertPrompt() + ": " + m.input.View()
	}
	if m.mode == modeCommand {
		body += "\n\n:" + m.input.View()
	}
	if m.mode == modeHelp {
		help := "Keys: h/l switch panes, j/k move, g/G top/bottom, o add task, i edit, s schedule block, dd delete task with its blocks, x delete event, r refresh, :seed sample tasks, :q quit"
		body += "\n\n" + lipgloss.NewStyle().Italic(true).Render(help)
	}

	return body + "\n\n" + status
}

// Program entry
func Run(b *board.Board, watch <-chan store.Event) error {
	m := New(b)
	m.watch = watch
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// applySizes recalculates list sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	left := m.termWidth / 2
	if left < 30 {
		left = 30
	}
	right := m.termWidth - left - 4
	if right < 24 {
		right = 24
	}
	height := m.termHeight - 4
	if height < 5 {
		height = 5
	}
	m.taskList.SetSize(left, height)
	m.eventList.SetSize(right, height)
}

// updateFocusHeaders updates pane titles to reflect which pane is focused.
func (m *Model) updateFocusHeaders() {
	// Fixed-width 2-char prefix to avoid layout shift when focus changes.
	const on = "» "
	const off = "  "
	if m.focus == 0 {
		m.taskList.Title = on + "Tasks"
		m.eventList.Title = off + "Schedule"
		m.taskList.SetDelegate(m.focusDel)
		m.eventList.SetDelegate(m.blurDel)
	} else {
		m.taskList.Title = off + "Tasks"
		m.eventList.Title = on + "Schedule"
		m.taskList.SetDelegate(m.blurDel)
		m.eventList.SetDelegate(m.focusDel)
	}
}

func (m *Model) enterCommandMode(cmds *[]tea.Cmd) {
	m.mode = modeCommand
	m.input.Reset()
	m.input.Placeholder = "command"
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
	m.status = "COMMAND: type :q or :exit to quit"
}
