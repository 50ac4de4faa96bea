package model

// Board is the playfield grid. Each cell holds 0 for empty or a PieceType
// tag (1..7) for a locked cell; the tag is only used for rendering. The
// grid is fixed-size: exactly Height rows of exactly Width cells each.
// Only the game state machine writes to a board, and only through the
// board service's lock and line-clear operations.
type Board struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Cells  [][]int `json:"cells"` // row-major: Cells[y][x]
}

// NewBoard creates an empty board of the given dimensions
func NewBoard(width, height int) *Board {
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
	}
	return &Board{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	cells := make([][]int, len(b.Cells))
	for y, row := range b.Cells {
		cells[y] = make([]int, len(row))
		copy(cells[y], row)
	}
	return &Board{
		Width:  b.Width,
		Height: b.Height,
		Cells:  cells,
	}
}

// Cell returns the value at (x, y), or 0 for out-of-bounds coordinates
func (b *Board) Cell(x, y int) int {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0
	}
	return b.Cells[y][x]
}

// InBounds returns true if (x, y) is a visible board cell
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// RowFull returns true if every cell in the given row is occupied
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.Height {
		return false
	}
	for _, v := range b.Cells[y] {
		if v == 0 {
			return false
		}
	}
	return true
}

// Valid returns true if the grid matches the declared dimensions
func (b *Board) Valid() bool {
	if b == nil || b.Width <= 0 || b.Height <= 0 {
		return false
	}
	if len(b.Cells) != b.Height {
		return false
	}
	for _, row := range b.Cells {
		if len(row) != b.Width {
			return false
		}
	}
	return true
}
