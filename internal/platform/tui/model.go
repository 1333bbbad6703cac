package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/sneaky/internal/config"
	"github.com/vovakirdan/sneaky/internal/core"
	"github.com/vovakirdan/sneaky/internal/snake"
	"github.com/vovakirdan/sneaky/internal/storage"
)

// Model is the Bubble Tea model for one Sneaky session.
//
// The model owns the session's snake.State. Key events and timer ticks both
// arrive through Update, one at a time, so the state needs no locking.
type Model struct {
	cfg       config.Config
	runtime   core.RuntimeConfig
	sessionID string

	state  *snake.State
	router *snake.Router
	clock  Clock

	keyMapper   *KeyMapper
	keys        KeyMap
	landingKeys LandingKeyMap
	help        help.Model
	landing     landing
	scoreboard  *ScoreboardModel

	store  *storage.Store
	logger *log.Logger

	best     int // Player's best score, refreshed when a round ends
	quitting bool
}

// NewModel creates a session model in the landing state.
// store may be nil, in which case results are not recorded.
func NewModel(cfg config.Config, rt core.RuntimeConfig, store *storage.Store, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rt.TickInterval <= 0 {
		rt.TickInterval = cfg.Timing.Interval()
	}

	state := snake.New(cfg, rt.Seed)
	if rt.BoardSize > 0 {
		state.SetBoardSize(rt.BoardSize)
	}
	boardSize := state.Snapshot().BoardSize

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		cfg:         cfg,
		runtime:     rt,
		sessionID:   uuid.NewString(),
		state:       state,
		router:      snake.NewRouter(state),
		clock:       NewClock(rt.TickInterval),
		keyMapper:   NewKeyMapper(),
		keys:        DefaultKeyMap(),
		landingKeys: DefaultLandingKeyMap(),
		help:        h,
		landing:     newLanding(rt.PlayerName, cfg.BoardSizes(), boardSize),
		store:       store,
		logger:      logger,
	}
}

// SessionID returns the unique ID of this session.
func (m Model) SessionID() string {
	return m.sessionID
}

// Snapshot returns a copy of the session's game state.
func (m Model) Snapshot() snake.Snapshot {
	return m.state.Snapshot()
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		if m.state.Phase() == snake.PhaseIdle {
			return m.handleLandingKey(msg)
		}
		return m.handleGameKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	// Cursor blink and other widget messages
	if m.state.Phase() == snake.PhaseIdle && m.scoreboard == nil {
		var cmd tea.Cmd
		m.landing, cmd = m.landing.update(msg)
		return m, cmd
	}
	return m, nil
}

// handleLandingKey processes keys on the landing screen.
func (m Model) handleLandingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapLandingKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionConfirm:
		if !m.landing.CanStart() {
			return m, nil
		}
		return m.startRound()

	case core.ActionUp:
		m.landing.grow()
		m.state.SetBoardSize(m.landing.BoardSize())
		return m, nil

	case core.ActionDown:
		m.landing.shrink()
		m.state.SetBoardSize(m.landing.BoardSize())
		return m, nil

	case core.ActionScoreboard:
		sb := NewScoreboardModel(m.store, m.cfg.BoardSizes(), m.runtime.ScreenW, m.runtime.ScreenH)
		m.scoreboard = &sb
		return m, nil
	}

	var cmd tea.Cmd
	m.landing, cmd = m.landing.update(msg)
	return m, cmd
}

// startRound leaves the landing screen and starts the clock.
func (m Model) startRound() (tea.Model, tea.Cmd) {
	m.state.SetPlayerName(m.landing.PlayerName())
	m.state.SetBoardSize(m.landing.BoardSize())
	m.state.Start()

	snap := m.state.Snapshot()
	m.logger.Info("round started",
		"player", snap.PlayerName,
		"board", snap.BoardSize,
	)
	return m, m.clock.Start()
}

// handleGameKey processes keys while a round is shown.
func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.clock.Stop()
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		m.state.Reset()
		snap := m.state.Snapshot()
		m.logger.Debug("round reset", "player", snap.PlayerName, "games", snap.GamesPlayed)
		return m, m.clock.Start()

	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save board", "error", err)
		} else {
			m.logger.Info("board saved", "path", path)
		}
		return m, nil

	case core.ActionBack:
		m.clock.Stop()
		m.state.Quit()
		m.best = 0
		snap := m.state.Snapshot()
		m.landing = newLanding("", m.cfg.BoardSizes(), snap.BoardSize)
		return m, nil
	}

	if action.IsDirectional() {
		m.router.Route(action)
	}
	return m, nil
}

// updateScoreboard forwards a message to the embedded scoreboard.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scoreboard.update(msg)

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}

	m.scoreboard = &sb
	return m, cmd
}

// handleTick advances the simulation by one step.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.clock.Accept(msg) {
		return m, nil
	}

	outcome := m.state.Tick()
	if m.state.Phase().Over() {
		m.clock.Stop()
		m.recordResult(outcome)
		return m, nil
	}

	return m, m.clock.Next()
}

// recordResult logs a finished round and appends it to the results ledger.
func (m *Model) recordResult(outcome snake.Outcome) {
	snap := m.state.Snapshot()
	m.logger.Info("round finished",
		"player", snap.PlayerName,
		"outcome", outcome,
		"score", snap.Score,
		"board", snap.BoardSize,
		"ticks", snap.Tick,
	)

	if snap.Score > m.best {
		m.best = snap.Score
	}

	if m.store == nil {
		return
	}

	id, err := m.store.SaveResult(storage.Result{
		SessionID:   m.sessionID,
		PlayerName:  snap.PlayerName,
		BoardSize:   snap.BoardSize,
		Score:       snap.Score,
		Outcome:     string(snap.Phase),
		GamesPlayed: snap.GamesPlayed,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save result", "error", err)
		return
	}
	m.logger.Debug("result saved", "id", id)

	if best, err := m.store.BestScore(snap.PlayerName); err == nil && best > m.best {
		m.best = best
	}
}

// saveScreenshot writes the board as plain text to ~/.sneaky/screenshots.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".sneaky", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	snap := m.state.Snapshot()
	screen := core.NewScreen(boardDims(snap.BoardSize))
	DrawBoard(screen, snap)

	name := fmt.Sprintf("sneaky_%s_%d.txt", time.Now().Format("20060102_150405"), snap.Tick)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("cannot write %s: %w", path, err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}
	if m.state.Phase() == snake.PhaseIdle {
		return m.landing.view(m.runtime.ScreenW, dimStyle.Render(m.help.View(m.landingKeys)))
	}
	return m.gameView()
}

// Run starts the Bubble Tea program for a local session.
func Run(cfg config.Config, rt core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(cfg, rt, store, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
