package snake

import "github.com/vovakirdan/sneaky/internal/core"

// SetNextDirection buffers d for the next tick. A reversal of the active
// direction is rejected, checked against the active direction rather than
// the buffer so no sequence of intents between two ticks can queue a 180°
// turn. Returns whether the buffer was written.
func (s *State) SetNextDirection(d Direction) bool {
	if !d.Valid() || d.IsOpposite(s.direction) {
		return false
	}
	s.nextDir = d
	return true
}

// DirectionFor maps a directional action to a Direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// Router turns intents from any input source into buffered directions.
type Router struct {
	state *State
}

// NewRouter creates a router that writes to the given state.
func NewRouter(s *State) *Router {
	return &Router{state: s}
}

// Route applies an intent. Non-directional actions and reversals are ignored.
// Returns whether the intent was accepted.
func (r *Router) Route(a core.Action) bool {
	dir, ok := DirectionFor(a)
	if !ok {
		return false
	}
	return r.state.SetNextDirection(dir)
}
