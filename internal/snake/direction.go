package snake

// Direction represents the snake's movement direction.
type Direction int

// Opposite directions are two steps apart, see Opposite.
const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirUp
}

// Opposite returns the 180° reversal of d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// IsOpposite checks if two directions are opposite.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Valid() && other.Valid() && d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Phase is the lifecycle state of a session.
type Phase string

const (
	PhaseIdle    Phase = "idle"    // No round in progress, landing screen
	PhaseRunning Phase = "running" // Ticks are being applied
	PhaseWon     Phase = "won"     // Score threshold reached
	PhaseLost    Phase = "lost"    // Wall or self collision
)

// Over reports whether the phase is a finished round (won or lost).
func (p Phase) Over() bool {
	return p == PhaseWon || p == PhaseLost
}
