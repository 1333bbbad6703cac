package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each color to a terminal style.
type Color uint8

// Palette used by the board renderer.
const (
	ColorDefault Color = iota
	ColorGrid          // Empty board cell
	ColorFrame         // Board border
	ColorHead          // Snake head
	ColorBody          // Snake body segments
	ColorFood          // Food cell
	ColorDead          // Snake after a collision
)
