package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sakataka/tetris-game2-sub000/internal/config"
	"github.com/sakataka/tetris-game2-sub000/internal/storage"
	"github.com/sakataka/tetris-game2-sub000/internal/tetris"
)

// RuntimeConfig carries the per-session settings resolved by the caller.
type RuntimeConfig struct {
	Config config.Config
	// Seed seeds the piece sequence; 0 means seed from the current time.
	Seed int64
}

// Model is the Bubble Tea model for a single game session.
type Model struct {
	game        tetris.Game
	store       *storage.Store
	cfg         config.Config
	backend     tetris.Backend
	keys        KeyMap
	help        help.Model
	width       int
	height      int
	quitting    bool
	resultSaved bool // whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model with a freshly started game.
func NewModel(store *storage.Store, rc RuntimeConfig) (Model, error) {
	backend, err := rc.Config.Board.Engine()
	if err != nil {
		return Model{}, err
	}

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := Model{
		store:   store,
		cfg:     rc.Config,
		backend: backend,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.game = m.newGame(seed)
	return m, nil
}

// newGame starts a fresh game with the configured board.
func (m Model) newGame(seed int64) tetris.Game {
	return tetris.New(tetris.Options{
		Backend: m.backend,
		Width:   m.cfg.Board.Width,
		Height:  m.cfg.Board.Height,
		Seed:    seed,
	})
}

// Init starts the gravity loop.
func (m Model) Init() tea.Cmd {
	return gravityCmd(m.cfg.Gravity.Interval(m.game.Level))
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
		return m, nil

	case GravityMsg:
		return m.handleGravity()
	}

	return m, nil
}

// handleKey processes keyboard input. Rule errors from blocked moves and
// rotations are normal play and are discarded.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		if m.game.Over {
			m.game = m.newGame(time.Now().UnixNano())
			m.resultSaved = false
			return m, gravityCmd(m.cfg.Gravity.Interval(m.game.Level))
		}
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		if m.game.Paused {
			m.game, _ = m.game.Resume()
		} else {
			m.game, _ = m.game.Pause()
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.game, _ = m.game.Move(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.game, _ = m.game.Move(1, 0)
	case key.Matches(msg, m.keys.SoftDrop):
		m.game, _ = m.game.SoftDrop()
	case key.Matches(msg, m.keys.HardDrop):
		m.game, _ = m.game.HardDrop()
	case key.Matches(msg, m.keys.RotateCW):
		m.game, _ = m.game.Rotate(1)
	case key.Matches(msg, m.keys.Rotate180):
		m.game, _ = m.game.Rotate(2)
	case key.Matches(msg, m.keys.Hold):
		m.game, _ = m.game.Hold()
	}

	m.saveResultOnce()
	return m, nil
}

// handleGravity applies one automatic fall and schedules the next one at
// the interval for the current level.
func (m Model) handleGravity() (tea.Model, tea.Cmd) {
	if m.game.Over {
		m.saveResultOnce()
		return m, nil
	}
	if !m.game.Paused {
		m.game, _ = m.game.SoftDrop()
		m.saveResultOnce()
	}
	return m, gravityCmd(m.cfg.Gravity.Interval(m.game.Level))
}

// saveResultOnce records a finished game the first time it is observed.
func (m *Model) saveResultOnce() {
	if !m.game.Over || m.resultSaved {
		return
	}
	if m.store != nil && m.game.Score > 0 {
		//nolint:errcheck // Best-effort save, the session continues regardless
		m.store.SaveResult(m.game.Score, m.game.Lines, m.game.Level)
	}
	m.resultSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(store *storage.Store, rc RuntimeConfig) error {
	model, err := NewModel(store, rc)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
