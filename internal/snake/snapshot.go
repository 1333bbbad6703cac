package snake

// Snapshot is a read-only copy of a session for renderers and tests.
type Snapshot struct {
	Tick          uint64
	PlayerName    string
	BoardSize     int
	Snake         []int // Head first
	Food          int   // NoFood after a win
	Direction     Direction
	NextDirection Direction
	Score         int
	GamesPlayed   int
	Phase         Phase
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	body := make([]int, len(s.snake))
	copy(body, s.snake)

	return Snapshot{
		Tick:          s.tick,
		PlayerName:    s.playerName,
		BoardSize:     s.boardSize,
		Snake:         body,
		Food:          s.food,
		Direction:     s.direction,
		NextDirection: s.nextDir,
		Score:         s.score,
		GamesPlayed:   s.gamesPlayed,
		Phase:         s.phase,
	}
}

// Head returns the head cell.
func (s Snapshot) Head() int {
	if len(s.Snake) == 0 {
		return -1
	}
	return s.Snake[0]
}

// SegmentAt returns the index of the snake segment covering cell, or -1.
func (s Snapshot) SegmentAt(cell int) int {
	for i, seg := range s.Snake {
		if seg == cell {
			return i
		}
	}
	return -1
}
