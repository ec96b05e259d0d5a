// Package tui provides the Bubble Tea front end for t2048.
// The model owns a game session and dispatches each key press to it
// synchronously; the view is rebuilt from the session after every message.
package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Model is the Bubble Tea model for a 2048 session.
type Model struct {
	session  *t2048.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	styles   Styles
	logger   *log.Logger
	width    int
	height   int
	quitting bool
}

// NewModel creates a model driving session with the given configuration.
// A nil logger discards log output.
func NewModel(session *t2048.Session, cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		session: session,
		keys:    NewKeyMap(cfg.Keys),
		help:    help.New(),
		styles:  NewStyles(cfg.Theme),
		logger:  logger,
		width:   rt.ScreenW,
		height:  rt.ScreenH,
	}
	m.screen = core.NewScreen(m.width, m.boardHeight())
	return m
}

// Init implements tea.Model. The game is event driven, so there is no tick.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(m.width, m.boardHeight())
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.session.Score(), "moves", m.session.Moves())
		return m, tea.Quit

	case core.ActionNewGame:
		m.logger.Info("new game", "previous_score", m.session.Score())
		m.session.Reset()

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.boardHeight())

	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
		dir, _ := t2048.DirectionFor(action)
		m.move(dir)
	}

	return m, nil
}

func (m Model) move(dir t2048.Direction) {
	if m.session.GameOver() {
		return
	}

	res := m.session.Move(dir)
	if !res.Changed {
		m.logger.Debug("no-op move", "dir", dir)
		return
	}

	m.logger.Debug("move",
		"dir", dir,
		"gained", res.Gained,
		"score", m.session.Score(),
		"spawn_row", res.Spawned.Row,
		"spawn_col", res.Spawned.Col,
		"spawn_value", res.SpawnedValue,
	)
	if res.GameOver {
		snap := m.session.Snapshot()
		m.logger.Info(snap.GameOverMessage(), "max_tile", snap.MaxTile, "moves", snap.Moves)
	}
}

// boardHeight is the screen height left after the help footer.
func (m Model) boardHeight() int {
	footer := 1
	if m.help.ShowAll {
		footer = len(m.keys.FullHelp()[0])
	}
	return max(m.height-footer, 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// Session returns the session the model drives.
func (m Model) Session() *t2048.Session {
	return m.session
}

// Run starts the Bubble Tea program for session and blocks until the player quits.
func Run(session *t2048.Session, cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(session, cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
