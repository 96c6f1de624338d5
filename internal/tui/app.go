package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/taskboard/internal/board"
	"github.com/pablasso/taskboard/internal/tui/msgs"
	"github.com/pablasso/taskboard/internal/tui/styles"
	"github.com/pablasso/taskboard/internal/tui/views"
)

// Minimum terminal dimensions.
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 15
)

// Model is the main Bubble Tea model. It guards the board view against
// terminals that are too small and handles quitting.
type Model struct {
	board  views.BoardModel
	width  int
	height int
}

// Run attaches the TUI to store and blocks until the user quits.
// The store must not be used from another goroutine while Run is active.
func Run(ctx context.Context, store *board.Store, opts Options) error {
	screen := views.NewScreen()
	store.Attach(screen)
	defer store.Attach(nil)

	p := tea.NewProgram(newModel(ctx, store, screen), opts.programOptions(ctx)...)
	_, err := p.Run()
	return err
}

func newModel(ctx context.Context, d views.Dispatcher, screen *views.Screen) Model {
	return Model{board: views.NewBoardModel(ctx, d, screen)}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.board.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case msgs.QuitMsg:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width > 0 && m.height > 0 && (m.width < MinTerminalWidth || m.height < MinTerminalHeight) {
		return m.renderTerminalTooSmall()
	}
	return m.board.View()
}

func (m Model) renderTerminalTooSmall() string {
	lines := []string{
		styles.ErrorStyle.Render("Terminal too small"),
		"",
		fmt.Sprintf("Minimum: %dx%d", MinTerminalWidth, MinTerminalHeight),
		fmt.Sprintf("Current: %dx%d", m.width, m.height),
		"",
		styles.SubtleStyle.Render("Resize the window or press q to quit"),
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}
