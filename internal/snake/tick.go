package snake

// Outcome describes what a single Tick did.
type Outcome string

const (
	OutcomeNone  Outcome = "none"  // Not running, nothing changed
	OutcomeMoved Outcome = "moved" // Snake advanced one cell
	OutcomeAte   Outcome = "ate"   // Snake ate food and grew
	OutcomeWon   Outcome = "won"   // Score threshold reached
	OutcomeLost  Outcome = "lost"  // Wall or self collision
)

// Tick advances the simulation by one step. No-op unless running.
func (s *State) Tick() Outcome {
	if s.phase != PhaseRunning {
		return OutcomeNone
	}
	s.tick++

	// Apply buffered direction
	if s.nextDir != s.direction {
		s.direction = s.nextDir
	}

	head := s.snake[0]
	newHead := step(head, s.direction, s.boardSize)

	// The tail has not moved yet, so it counts as body
	if hitsWall(head, newHead, s.direction, s.boardSize) || s.occupies(newHead) {
		s.phase = PhaseLost
		return OutcomeLost
	}

	s.snake = append([]int{newHead}, s.snake...)

	if newHead != s.food {
		s.snake = s.snake[:len(s.snake)-1]
		return OutcomeMoved
	}

	s.score += s.cfg.Rules.FoodReward
	if s.score >= s.cfg.Rules.WinThreshold {
		s.food = NoFood
		s.phase = PhaseWon
		return OutcomeWon
	}

	if !s.spawnFood() {
		// Snake fills the board: nothing left to eat
		s.phase = PhaseWon
		return OutcomeWon
	}
	return OutcomeAte
}

// spawnFood places food at a uniformly random cell not covered by the snake.
// Returns false if the snake covers every cell.
func (s *State) spawnFood() bool {
	cells := s.cells()
	if len(s.snake) >= cells {
		s.food = NoFood
		return false
	}

	for {
		cell := s.rng.Intn(cells)
		if !s.occupies(cell) {
			s.food = cell
			return true
		}
	}
}
