package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sneaky/internal/config"
	"github.com/vovakirdan/sneaky/internal/core"
	"github.com/vovakirdan/sneaky/internal/snake"
	"github.com/vovakirdan/sneaky/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	rt := core.RuntimeConfig{ScreenW: 100, ScreenH: 40, Seed: 7}
	return NewModel(config.Default(), rt, store, nil)
}

// send delivers msg and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

// tick delivers a tick of the clock's current run.
func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return send(t, m, TickMsg{gen: m.clock.gen})
}

// started returns a model with a running round for player "ada".
func started(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m := newTestModel(t, store)
	m, _ = send(t, m, runes("ada"))
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Starting a round should schedule a tick")
	}
	return m
}

// playUntilOver ticks a running model until the round ends.
func playUntilOver(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 1000 && !m.Snapshot().Phase.Over(); i++ {
		m, _ = tick(t, m)
	}
	if !m.Snapshot().Phase.Over() {
		t.Fatal("Round did not end")
	}
	return m
}

func TestModelStartsOnLanding(t *testing.T) {
	m := newTestModel(t, nil)

	snap := m.Snapshot()
	if snap.Phase != snake.PhaseIdle {
		t.Errorf("Phase = %s, expected idle", snap.Phase)
	}
	if snap.BoardSize != 20 {
		t.Errorf("BoardSize = %d, expected 20", snap.BoardSize)
	}
	if m.SessionID() == "" {
		t.Error("SessionID should be set")
	}
	if !strings.Contains(m.View(), "S N E A K Y") {
		t.Error("Landing view should show the title")
	}
}

func TestModelRequiresName(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.Snapshot().Phase != snake.PhaseIdle {
		t.Error("Enter without a name should not start a round")
	}

	m, _ = send(t, m, runes("   "))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Snapshot().Phase != snake.PhaseIdle {
		t.Error("Enter with a blank name should not start a round")
	}
}

func TestModelLandingTypesLetters(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, runes("q"))
	if m.quitting {
		t.Fatal("q on the landing screen should be typed, not quit")
	}
	if got := m.landing.PlayerName(); got != "q" {
		t.Errorf("Name = %q, expected %q", got, "q")
	}
}

func TestModelLandingBoardSize(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.Snapshot().BoardSize; got != 25 {
		t.Errorf("BoardSize after up = %d, expected 25", got)
	}

	for range 5 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if got := m.Snapshot().BoardSize; got != 30 {
		t.Errorf("BoardSize should stop at 30, got %d", got)
	}

	for range 10 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if got := m.Snapshot().BoardSize; got != 10 {
		t.Errorf("BoardSize should stop at 10, got %d", got)
	}
}

func TestModelStartRound(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(t, m, runes(" ada "))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	snap := m.Snapshot()
	if snap.Phase != snake.PhaseRunning {
		t.Fatalf("Phase = %s, expected running", snap.Phase)
	}
	if snap.PlayerName != "ada" {
		t.Errorf("PlayerName = %q, expected trimmed %q", snap.PlayerName, "ada")
	}
	if snap.BoardSize != 25 {
		t.Errorf("BoardSize = %d, expected 25", snap.BoardSize)
	}
	if !m.clock.Running() {
		t.Error("Clock should run during a round")
	}

	view := m.View()
	for _, want := range []string{"Player", "ada", "Score"} {
		if !strings.Contains(view, want) {
			t.Errorf("Game view missing %q", want)
		}
	}
}

func TestModelTickAdvances(t *testing.T) {
	m := started(t, nil)

	m, cmd := tick(t, m)
	if cmd == nil {
		t.Error("Tick during a round should schedule the next one")
	}
	if head := m.Snapshot().Head(); head != 3 {
		t.Errorf("Head = %d, expected 3", head)
	}
}

func TestModelIgnoresStaleTick(t *testing.T) {
	m := started(t, nil)
	stale := TickMsg{gen: m.clock.gen - 1}

	m, cmd := send(t, m, stale)
	if cmd != nil {
		t.Error("Stale tick should not reschedule")
	}
	if head := m.Snapshot().Head(); head != 2 {
		t.Errorf("Stale tick moved the snake to %d", head)
	}
}

func TestModelDirectionKeys(t *testing.T) {
	m := started(t, nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.Snapshot().NextDirection; got != snake.DirDown {
		t.Errorf("NextDirection = %v, expected down", got)
	}

	// Left reverses the active direction (right) and is dropped
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Snapshot().NextDirection; got != snake.DirDown {
		t.Errorf("NextDirection = %v, expected down to be kept", got)
	}

	m, _ = tick(t, m)
	snap := m.Snapshot()
	if snap.Direction != snake.DirDown || snap.Head() != 22 {
		t.Errorf("Direction = %v head = %d, expected down to 22", snap.Direction, snap.Head())
	}
}

func TestModelLossStopsClockAndRecordsResult(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := started(t, store)
	m = playUntilOver(t, m)

	snap := m.Snapshot()
	if snap.Phase != snake.PhaseLost {
		t.Fatalf("Phase = %s, expected lost against the right wall", snap.Phase)
	}
	if m.clock.Running() {
		t.Error("Clock should stop when the round ends")
	}
	view := m.View()
	for _, want := range []string{"Game Over", "Personal best"} {
		if !strings.Contains(view, want) {
			t.Errorf("Game-over view missing %q", want)
		}
	}

	// A tick already in flight is dropped
	if _, cmd := send(t, m, TickMsg{gen: m.clock.gen}); cmd != nil {
		t.Error("Tick after the round ended should not reschedule")
	}

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 recorded result, got %d", len(results))
	}
	r := results[0]
	if r.PlayerName != "ada" || r.Outcome != "lost" || r.BoardSize != 20 || r.SessionID != m.SessionID() {
		t.Errorf("Recorded result = %+v", r)
	}
}

func TestModelRestart(t *testing.T) {
	m := playUntilOver(t, started(t, nil))

	m, cmd := send(t, m, runes("r"))
	if cmd == nil {
		t.Error("Restart should start the clock")
	}

	snap := m.Snapshot()
	if snap.Phase != snake.PhaseRunning {
		t.Errorf("Phase = %s, expected running", snap.Phase)
	}
	if snap.GamesPlayed != 1 {
		t.Errorf("GamesPlayed = %d, expected 1", snap.GamesPlayed)
	}
	if snap.PlayerName != "ada" {
		t.Errorf("PlayerName = %q, expected it kept", snap.PlayerName)
	}
}

func TestModelRestartWhileRunning(t *testing.T) {
	m := started(t, nil)
	m, _ = tick(t, m)
	gen := m.clock.gen

	m, cmd := send(t, m, runes("r"))
	if cmd != nil {
		t.Error("Restart while running should keep the current tick chain")
	}
	if m.clock.gen != gen {
		t.Error("Restart while running should not restart the clock")
	}
	if head := m.Snapshot().Head(); head != 2 {
		t.Errorf("Head = %d, expected the starting head", head)
	}
}

func TestModelBackToLanding(t *testing.T) {
	m := started(t, nil)
	m, _ = tick(t, m)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	snap := m.Snapshot()
	if snap.Phase != snake.PhaseIdle {
		t.Errorf("Phase = %s, expected idle", snap.Phase)
	}
	if snap.PlayerName != "" || snap.Score != 0 || snap.BoardSize != 20 {
		t.Errorf("Snapshot after quit = %+v", snap)
	}
	if m.clock.Running() {
		t.Error("Clock should stop on quit")
	}
	if m.landing.PlayerName() != "" {
		t.Error("Name input should be cleared")
	}
}

func TestModelScoreboard(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("Tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "BEST RESULTS") {
		t.Error("Scoreboard view should show its title")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Error("Esc should close the scoreboard")
	}
	if m.quitting {
		t.Error("Closing the scoreboard should not quit")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.quitting {
		t.Error("Ctrl+C should quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelPrefilledName(t *testing.T) {
	rt := core.RuntimeConfig{Seed: 1, PlayerName: "sshuser"}
	m := NewModel(config.Default(), rt, nil, nil)

	if got := m.landing.PlayerName(); got != "sshuser" {
		t.Errorf("Name = %q, expected prefilled", got)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Snapshot().PlayerName; got != "sshuser" {
		t.Errorf("PlayerName = %q, expected sshuser", got)
	}
}

func TestModelKeepsOffStepBoardSize(t *testing.T) {
	offStep := config.Default()
	offStep.Board.DefaultSize = 22

	tests := []struct {
		name      string
		cfg       config.Config
		boardSize int
		expected  int
	}{
		{"requested size", config.Default(), 23, 23},
		{"requested size clamped", config.Default(), 99, 30},
		{"configured default", offStep, 0, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := core.RuntimeConfig{Seed: 1, PlayerName: "ada", BoardSize: tt.boardSize}
			m := NewModel(tt.cfg, rt, nil, nil)

			if got := m.landing.BoardSize(); got != tt.expected {
				t.Errorf("Selected size = %d, expected %d", got, tt.expected)
			}

			m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			snap := m.Snapshot()
			if snap.Phase != snake.PhaseRunning {
				t.Fatalf("Phase = %s, expected running", snap.Phase)
			}
			if snap.BoardSize != tt.expected {
				t.Errorf("BoardSize = %d, expected %d", snap.BoardSize, tt.expected)
			}
		})
	}
}

func TestModelOffStepSizeStaysSelectable(t *testing.T) {
	rt := core.RuntimeConfig{Seed: 1, BoardSize: 23}
	m := NewModel(config.Default(), rt, nil, nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.Snapshot().BoardSize; got != 25 {
		t.Errorf("BoardSize after up = %d, expected 25", got)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.Snapshot().BoardSize; got != 23 {
		t.Errorf("BoardSize after down = %d, expected 23 again", got)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.Snapshot().BoardSize; got != 20 {
		t.Errorf("BoardSize after second down = %d, expected 20", got)
	}
}

// winInOneBite returns a config where the opening food sits right in front
// of the snake and a single bite wins. On a 7x7 board cell 50 folds to 1,
// which the snake covers, so the food moves forward to cell 3.
func winInOneBite() config.Config {
	cfg := config.Default()
	cfg.Board.MinSize = 5
	cfg.Board.DefaultSize = 7
	cfg.Rules.WinThreshold = cfg.Rules.FoodReward
	return cfg
}

func TestModelWinStopsClockAndRecordsResult(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := NewModel(winInOneBite(), core.RuntimeConfig{ScreenW: 100, ScreenH: 40, Seed: 3}, store, nil)
	m, _ = send(t, m, runes("ada"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if food := m.Snapshot().Food; food != 3 {
		t.Fatalf("Food = %d, expected 3 in front of the head", food)
	}

	m, cmd := tick(t, m)
	if cmd != nil {
		t.Error("Winning tick should not schedule another one")
	}

	snap := m.Snapshot()
	if snap.Phase != snake.PhaseWon {
		t.Fatalf("Phase = %s, expected won", snap.Phase)
	}
	if snap.Score != 3 || snap.Food != snake.NoFood || len(snap.Snake) != 4 {
		t.Errorf("Snapshot after win = %+v", snap)
	}
	if m.clock.Running() {
		t.Error("Clock should stop when the round is won")
	}
	if !strings.Contains(m.View(), "You Win!") {
		t.Error("Game view should show the win panel")
	}

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 recorded result, got %d", len(results))
	}
	if r := results[0]; r.Outcome != "won" || r.Score != 3 || r.BoardSize != 7 {
		t.Errorf("Recorded result = %+v", r)
	}
}

func TestModelSavesBoardAsText(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := started(t, nil)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("Saving the board should not schedule anything")
	}
	if m.Snapshot().Phase != snake.PhaseRunning {
		t.Error("Saving the board should not change the round")
	}

	files, err := filepath.Glob(filepath.Join(home, ".sneaky", "screenshots", "*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("Expected 1 saved board, got %v (err %v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 22 {
		t.Errorf("Saved board has %d lines, expected 22", len(lines))
	}
	if !strings.Contains(lines[1], string(glyphHead)) {
		t.Errorf("First board row %q should contain the head", lines[1])
	}
}
