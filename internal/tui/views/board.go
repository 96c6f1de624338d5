package views

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/taskboard/internal/board"
	"github.com/pablasso/taskboard/internal/task"
	"github.com/pablasso/taskboard/internal/tui/components"
	"github.com/pablasso/taskboard/internal/tui/msgs"
	"github.com/pablasso/taskboard/internal/tui/styles"
)

// errorTimeout is how long a failed save stays on screen.
const errorTimeout = 5 * time.Second

// Rows taken by everything except the task list:
// title + margin + filter bar + progress + spacing, then input + error + status bar.
const (
	headerHeight = 5
	footerHeight = 3
)

// Dispatcher is the part of the store the board view drives.
type Dispatcher interface {
	Dispatch(ctx context.Context, a board.Action) error
	Tasks() []task.Task
}

// BoardModel is the task list screen.
type BoardModel struct {
	ctx    context.Context
	board  Dispatcher
	screen *Screen

	list   components.ListViewport
	cursor int

	input  textinput.Model
	adding bool

	// notice blocks every other key until dismissed
	notice string

	errMsg string
	errSeq int

	width  int
	height int
}

// NewBoardModel creates the board view. screen must be the View attached to b.
func NewBoardModel(ctx context.Context, b Dispatcher, screen *Screen) BoardModel {
	ti := textinput.New()
	ti.Prompt = "+ "
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 256

	m := BoardModel{
		ctx:    ctx,
		board:  b,
		screen: screen,
		list:   components.NewListViewport(0, 0),
		input:  ti,
	}
	m.syncList()
	return m
}

// Init implements tea.Model.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BoardModel) Update(msg tea.Msg) (BoardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case msgs.ClearErrorMsg:
		if msg.Seq == m.errSeq {
			m.errMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, quit
		}
		if m.notice != "" {
			switch msg.String() {
			case "enter", "esc":
				m.notice = ""
			}
			return m, nil
		}
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateList(msg)
	}

	if m.adding {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m BoardModel) updateAdding(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stopAdding()
		return m, nil

	case "enter":
		cmd, err := m.dispatch(board.AddTask{Title: m.input.Value()})
		if err != nil {
			return m, cmd
		}
		m.stopAdding()
		if m.screen.Filter().Matches(task.StatusNotStarted) {
			m.cursor = len(m.screen.Tasks()) - 1
			m.syncList()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m BoardModel) updateList(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q":
		return m, quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.syncList()

	case "down", "j":
		if m.cursor < len(m.screen.Tasks())-1 {
			m.cursor++
		}
		m.syncList()

	case "home", "g":
		m.cursor = 0
		m.syncList()

	case "end", "G":
		m.cursor = len(m.screen.Tasks()) - 1
		m.syncList()

	case "a":
		m.adding = true
		return m, m.input.Focus()

	case " ", "enter":
		if t, ok := m.Selected(); ok {
			cmd, _ := m.dispatch(board.AdvanceTask{ID: t.ID})
			return m, cmd
		}

	case "d", "x", "delete":
		if t, ok := m.Selected(); ok {
			cmd, _ := m.dispatch(board.DeleteTask{ID: t.ID})
			return m, cmd
		}

	case "C":
		cmd, _ := m.dispatch(board.CompleteAll{})
		return m, cmd

	case "X":
		cmd, _ := m.dispatch(board.ClearCompleted{})
		return m, cmd

	case "tab":
		m.cursor = 0
		cmd, _ := m.dispatch(board.SelectFilter{Filter: m.screen.Filter().Next()})
		return m, cmd

	case "1", "2", "3", "4":
		m.cursor = 0
		cmd, _ := m.dispatch(board.SelectFilter{Filter: task.Filters[key[0]-'1']})
		return m, cmd
	}

	return m, nil
}

// dispatch sends a to the store. Validation failures open the notice; other
// failures show on the error line until errorTimeout passes.
func (m *BoardModel) dispatch(a board.Action) (tea.Cmd, error) {
	err := m.board.Dispatch(m.ctx, a)
	m.syncList()
	if err == nil {
		m.errMsg = ""
		return nil, nil
	}

	var vErr *task.ValidationError
	if errors.As(err, &vErr) {
		m.notice = vErr.Message()
		return nil, err
	}

	m.errSeq++
	m.errMsg = err.Error()
	seq := m.errSeq
	return tea.Tick(errorTimeout, func(time.Time) tea.Msg {
		return msgs.ClearErrorMsg{Seq: seq}
	}), err
}

func (m *BoardModel) stopAdding() {
	m.adding = false
	m.input.Reset()
	m.input.Blur()
}

// syncList clamps the cursor to the rendered list and redraws the rows.
func (m *BoardModel) syncList() {
	tasks := m.screen.Tasks()
	m.cursor = min(m.cursor, len(tasks)-1)
	m.cursor = max(m.cursor, 0)

	if len(tasks) == 0 {
		m.list.SetLines([]string{styles.SubtleStyle.Render(m.emptyMessage())})
		return
	}

	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = m.formatRow(i, t)
	}
	m.list.SetLines(lines)
	m.list.EnsureVisible(m.cursor)
}

func (m BoardModel) emptyMessage() string {
	if m.screen.Filter() == task.FilterAll {
		return "No tasks yet. Press 'a' to add one."
	}
	return fmt.Sprintf("No %s tasks.", strings.ToLower(m.screen.Filter().Label()))
}

// formatRow renders: › In-progress  Make a video
func (m BoardModel) formatRow(i int, t task.Task) string {
	pointer := "  "
	if i == m.cursor {
		pointer = "› "
	}

	status := styles.StatusStyle(t.Status).Render(fmt.Sprintf("%-11s", t.Status))

	title := t.Title
	switch {
	case i == m.cursor:
		title = styles.SelectedStyle.Render(title)
	case t.Status == task.StatusCompleted:
		title = styles.DoneTitleStyle.Render(title)
	}

	return pointer + status + "  " + title
}

// View implements tea.Model.
func (m BoardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.TitleStyle.Render("Tasks")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, components.NewFilterBar().Render(m.screen.Filter())))
	b.WriteString("\n")
	progress := components.NewProgress(m.board.Tasks(), 20).View()
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.SubtleStyle.Render(progress)))
	b.WriteString("\n\n")

	if m.notice != "" {
		box := styles.NoticeStyle.Render(m.notice + "\n\n" + styles.SubtleStyle.Render("Enter OK"))
		b.WriteString(lipgloss.Place(m.width, m.list.Height(), lipgloss.Center, lipgloss.Center, box))
	} else {
		b.WriteString(m.list.View())
	}
	b.WriteString("\n")

	if m.adding {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(styles.ErrorStyle.Render("Error: " + m.errMsg))
	}
	b.WriteString("\n")

	b.WriteString(components.NewStatusBar().Render(m.width, m.statusItems(), countLabel(m.screen.Count())))

	return b.String()
}

func (m BoardModel) statusItems() []string {
	switch {
	case m.notice != "":
		return []string{"Enter Dismiss"}
	case m.adding:
		return []string{"Enter Save", "Esc Cancel"}
	default:
		return []string{"a Add", "Space Advance", "d Delete", "C Complete all", "X Clear completed", "1-4 Filter", "q Quit"}
	}
}

func countLabel(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}

func quit() tea.Msg {
	return msgs.QuitMsg{}
}

// SetSize updates the model dimensions.
func (m *BoardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, max(height-headerHeight-footerHeight, 1))
	m.input.Width = max(width-4, 1)
	m.syncList()
}

// Selected returns the task under the cursor.
func (m BoardModel) Selected() (task.Task, bool) {
	tasks := m.screen.Tasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return task.Task{}, false
	}
	return tasks[m.cursor], true
}

// Cursor returns the current cursor position within the visible list.
func (m BoardModel) Cursor() int {
	return m.cursor
}

// Adding reports whether the add-task input is open.
func (m BoardModel) Adding() bool {
	return m.adding
}

// Notice returns the blocking notice, if any.
func (m BoardModel) Notice() string {
	return m.notice
}

// Err returns the current error line, if any.
func (m BoardModel) Err() string {
	return m.errMsg
}
