package tui

import (
	"github.com/vovakirdan/sneaky/internal/core"
	"github.com/vovakirdan/sneaky/internal/snake"
)

// cellWidth is the number of terminal columns per board cell.
// Terminal glyphs are about twice as tall as wide.
const cellWidth = 2

// Board glyphs.
const (
	glyphEmpty = '·'
	glyphHead  = '@'
	glyphBody  = 'o'
	glyphFood  = '*'
)

// boardDims returns the screen size needed for a board, frame included.
func boardDims(size int) (w, h int) {
	return size*cellWidth + 2, size + 2
}

// DrawBoard draws the framed board of snap onto s.
// s must be at least boardDims(snap.BoardSize) in size.
func DrawBoard(s *core.Screen, snap snake.Snapshot) {
	s.Clear()
	w, h := boardDims(snap.BoardSize)
	s.DrawBox(core.NewRect(0, 0, w, h), core.ColorFrame)
	if title := " " + snap.PlayerName + " "; snap.PlayerName != "" && len([]rune(title)) <= w-4 {
		s.DrawText(2, 0, title)
	}

	size := snap.BoardSize
	for cell := 0; cell < size*size; cell++ {
		drawCell(s, size, cell, glyphEmpty, core.ColorGrid)
	}

	if snap.Food != snake.NoFood {
		drawCell(s, size, snap.Food, glyphFood, core.ColorFood)
	}

	lost := snap.Phase == snake.PhaseLost
	// Tail first so the head wins if anything overlaps.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		glyph, color := glyphBody, core.ColorBody
		if i == 0 {
			glyph, color = glyphHead, core.ColorHead
		}
		if lost {
			color = core.ColorDead
		}
		drawCell(s, size, snap.Snake[i], glyph, color)
	}
}

// drawCell paints one board cell, padding it to cellWidth columns.
// Cells outside the board interior are skipped.
func drawCell(s *core.Screen, size, cell int, r rune, c core.Color) {
	x := 1 + snake.Col(cell, size)*cellWidth
	y := 1 + snake.Row(cell, size)
	if !core.NewRect(1, 1, size*cellWidth, size).Contains(x, y) {
		return
	}
	s.SetColored(x, y, r, c)
	for i := 1; i < cellWidth; i++ {
		s.SetColored(x+i, y, ' ', c)
	}
}
