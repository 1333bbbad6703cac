package snake

// Cells are addressed by a flat row-major index: row*size + col.

// NoFood marks the absence of a food cell (after a win).
const NoFood = -1

// Row returns the row of a cell on a board of the given size.
func Row(cell, size int) int {
	return cell / size
}

// Col returns the column of a cell on a board of the given size.
func Col(cell, size int) int {
	return cell % size
}

// Index returns the flat index of (row, col) on a board of the given size.
func Index(row, col, size int) int {
	return row*size + col
}

// step returns the cell reached by moving one cell from head in dir.
// The result may be off the board; see hitsWall.
func step(head int, dir Direction, size int) int {
	switch dir {
	case DirUp:
		return head - size
	case DirDown:
		return head + size
	case DirLeft:
		return head - 1
	case DirRight:
		return head + 1
	}
	return head
}

// hitsWall reports whether moving from head to next in dir leaves the board.
// Flat indices wrap across row edges, so horizontal moves are checked by column.
func hitsWall(head, next int, dir Direction, size int) bool {
	if next < 0 || next >= size*size {
		return true
	}
	if dir == DirLeft && Col(head, size) == 0 {
		return true
	}
	if dir == DirRight && Col(head, size) == size-1 {
		return true
	}
	return false
}
