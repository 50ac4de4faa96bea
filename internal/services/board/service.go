package board

import (
	"log/slog"

	"github.com/jackiesafari/dam-attack-sub002/internal/model"
)

// Service answers geometric queries about pieces and boards. All operations
// are pure: boards passed in are never mutated, and operations that change
// cell content return a new board.
type Service struct {
	logger *slog.Logger
}

// New creates a new board service
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Collides returns true if any occupied cell of the piece falls outside the
// horizontal bounds, at or below the bottom of the board, or on an occupied
// board cell. Cells above row 0 only collide against the horizontal bounds,
// so a piece may overlap the top edge while spawning.
func (s *Service) Collides(p *model.Piece, b *model.Board) bool {
	for _, cell := range p.Cells() {
		if cell.X < 0 || cell.X >= b.Width {
			return true
		}
		if cell.Y >= b.Height {
			return true
		}
		if cell.Y >= 0 && b.Cells[cell.Y][cell.X] != 0 {
			return true
		}
	}
	return false
}

// Merge returns a new board with the piece's occupied cells written at its
// type tag. Cells above row 0 are silently dropped: a piece that never fully
// entered the board is a game-over precursor handled by the state machine,
// not by the board. An invalid piece or board leaves the board unchanged.
func (s *Service) Merge(p *model.Piece, b *model.Board) *model.Board {
	if !p.Valid() || !b.Valid() {
		s.logger.Warn("rejected merge of invalid piece or board")
		return b
	}

	merged := b.Clone()
	for _, cell := range p.Cells() {
		if b.InBounds(cell.X, cell.Y) {
			merged.Cells[cell.Y][cell.X] = int(p.Type)
		}
	}
	return merged
}

// DropPosition returns the greatest y at which the piece does not collide,
// starting from its current position. If the piece already collides, its
// current y is returned unchanged.
func (s *Service) DropPosition(p *model.Piece, b *model.Board) int {
	candidate := p.Clone()
	for {
		candidate.Y++
		if s.Collides(candidate, b) {
			return candidate.Y - 1
		}
	}
}

// ClearResult reports the outcome of a line clear. Rows are the cleared row
// indices in pre-clear coordinates, top to bottom.
type ClearResult struct {
	Count int
	Rows  []int
	Board *model.Board
}

// ClearLines removes every full row simultaneously and compacts the board
// downward, inserting that many empty rows at the top. The returned board
// always has the original dimensions.
func (s *Service) ClearLines(b *model.Board) ClearResult {
	var cleared []int
	kept := make([][]int, 0, b.Height)

	for y := 0; y < b.Height; y++ {
		if b.RowFull(y) {
			cleared = append(cleared, y)
			continue
		}
		row := make([]int, b.Width)
		copy(row, b.Cells[y])
		kept = append(kept, row)
	}

	if len(cleared) == 0 {
		return ClearResult{Board: b.Clone()}
	}

	cells := make([][]int, 0, b.Height)
	for i := 0; i < len(cleared); i++ {
		cells = append(cells, make([]int, b.Width))
	}
	cells = append(cells, kept...)

	return ClearResult{
		Count: len(cleared),
		Rows:  cleared,
		Board: &model.Board{Width: b.Width, Height: b.Height, Cells: cells},
	}
}

// Validate checks the board's structural invariants. Callers recover from a
// corrupted board by resetting to a known-good default rather than crashing.
func (s *Service) Validate(b *model.Board) error {
	if b == nil {
		s.logger.Warn("board failed validation: nil board")
		return model.ErrInvalidBoard
	}
	if !b.Valid() {
		s.logger.Warn("board failed validation",
			slog.Int("declared_width", b.Width),
			slog.Int("declared_height", b.Height),
			slog.Int("rows", len(b.Cells)),
		)
		return model.ErrInvalidBoard
	}
	return nil
}
