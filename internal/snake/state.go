// Package snake implements the game-state engine: the authoritative state
// of one session, the per-tick simulation step and the direction buffer
// fed by input.
//
// State is not safe for concurrent use. The platform delivers timer ticks
// and key events through a single run-to-completion loop, so every command
// finishes before the next one starts.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/sneaky/internal/config"
)

// openingFood is the food cell of a fresh session, folded into the board.
const openingFood = 50

// State is the single source of truth for a session.
// Fields are only changed through the command methods.
type State struct {
	cfg  config.Config
	rng  *rand.Rand
	tick uint64

	playerName  string
	boardSize   int
	snake       []int // Head at index 0
	food        int
	direction   Direction
	nextDir     Direction // Buffered direction for next tick
	score       int
	gamesPlayed int
	phase       Phase
}

// New creates an idle session with the starting layout.
// cfg must be valid (see config.Config.Validate).
func New(cfg config.Config, seed int64) *State {
	s := &State{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		boardSize: cfg.Board.DefaultSize,
		phase:     PhaseIdle,
	}
	s.layout()
	return s
}

// layout places the starting snake and the fixed opening food.
func (s *State) layout() {
	s.placeSnake()
	s.food = s.openingFoodCell()
}

// placeSnake puts a three-segment snake in the top-left corner heading right.
func (s *State) placeSnake() {
	s.snake = []int{2, 1, 0}
	s.direction = DirRight
	s.nextDir = DirRight
}

// openingFoodCell returns the opening food cell for the current board size,
// skipping forward past the snake if needed.
func (s *State) openingFoodCell() int {
	cells := s.cells()
	food := openingFood % cells
	for s.occupies(food) {
		food = (food + 1) % cells
	}
	return food
}

// cells returns the number of cells on the board.
func (s *State) cells() int {
	return s.boardSize * s.boardSize
}

// occupies checks if the snake covers the given cell.
func (s *State) occupies(cell int) bool {
	for _, seg := range s.snake {
		if seg == cell {
			return true
		}
	}
	return false
}

// SetPlayerName sets the display name. No-op unless idle.
func (s *State) SetPlayerName(name string) {
	if s.phase != PhaseIdle {
		return
	}
	s.playerName = name
}

// SetBoardSize changes the board size, clamped to the configured range.
// No-op unless idle.
func (s *State) SetBoardSize(n int) {
	if s.phase != PhaseIdle {
		return
	}
	s.boardSize = s.cfg.ClampBoardSize(n)
	s.food = s.openingFoodCell()
}

// Start begins the first round of a session. No-op unless idle.
func (s *State) Start() {
	if s.phase != PhaseIdle {
		return
	}
	s.phase = PhaseRunning
}

// Reset starts a new round on the same board for the same player and
// counts the previous one in gamesPlayed.
func (s *State) Reset() {
	s.placeSnake()
	s.score = 0
	s.spawnFood()
	s.phase = PhaseRunning
	s.gamesPlayed++
}

// Quit ends the session and returns to the landing state.
// gamesPlayed is kept.
func (s *State) Quit() {
	s.phase = PhaseIdle
	s.playerName = ""
	s.score = 0
	s.boardSize = s.cfg.Board.DefaultSize
	s.layout()
}

// Phase returns the current lifecycle phase.
func (s *State) Phase() Phase {
	return s.phase
}

// Score returns the current score.
func (s *State) Score() int {
	return s.score
}
