package piece

import (
	"github.com/jackiesafari/dam-attack-sub002/internal/dependencies/random"
	"github.com/jackiesafari/dam-attack-sub002/internal/model"
	"github.com/jackiesafari/dam-attack-sub002/internal/services/board"
)

// kickOffsets are the positional nudges tried, in order, when a naive
// rotation collides. Smaller offsets come first; the single upward nudge
// lets tall pieces rotate against the stack surface.
var kickOffsets = []struct{ dx, dy int }{
	{-1, 0},
	{1, 0},
	{-2, 0},
	{2, 0},
	{0, -1},
}

// Service produces and transforms pieces. It never touches board content:
// every operation is pure, and collision checks delegate to the board
// service. Validity of a candidate piece is the caller's decision.
type Service struct {
	random random.Random
	boards *board.Service
}

// New creates a new piece service
func New(random random.Random, boards *board.Service) *Service {
	return &Service{
		random: random,
		boards: boards,
	}
}

// CreateRandom selects a catalog type uniformly at random and positions it
// centered horizontally at the top of a board of the given width. Draws are
// independent per piece; there is no bag anti-repetition.
func (s *Service) CreateRandom(boardWidth int) *model.Piece {
	types := model.PieceTypes()
	p := model.NewPiece(types[s.random.Intn(len(types))])
	p.X = (boardWidth - p.Width()) / 2
	p.Y = 0
	return p
}

// Move returns a new piece translated by (dx, dy). No collision check is
// performed; callers must test the result against the board before
// accepting it.
func (s *Service) Move(p *model.Piece, dx, dy int) *model.Piece {
	moved := p.Clone()
	moved.X += dx
	moved.Y += dy
	return moved
}

// Rotate returns a new piece whose shape is the 90-degree clockwise
// rotation of the current shape, at the same position. No bounds or
// collision check is performed.
func (s *Service) Rotate(p *model.Piece) *model.Piece {
	rows := p.Height()
	cols := p.Width()
	rotated := make([][]int, cols)
	for i := 0; i < cols; i++ {
		rotated[i] = make([]int, rows)
		for j := 0; j < rows; j++ {
			rotated[i][j] = p.Shape[rows-1-j][i]
		}
	}
	return &model.Piece{
		Type:  p.Type,
		Shape: rotated,
		X:     p.X,
		Y:     p.Y,
	}
}

// WallKick tries the kick offsets on a rotated piece that collides in
// place, returning the first offset variant that fits, or nil if none does.
func (s *Service) WallKick(rotated *model.Piece, b *model.Board) *model.Piece {
	for _, kick := range kickOffsets {
		candidate := s.Move(rotated, kick.dx, kick.dy)
		if !s.boards.Collides(candidate, b) {
			return candidate
		}
	}
	return nil
}

// Collides reports whether the piece collides with the board
func (s *Service) Collides(p *model.Piece, b *model.Board) bool {
	return s.boards.Collides(p, b)
}
