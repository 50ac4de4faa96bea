package board

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/jackiesafari/dam-attack-sub002/internal/model"
	"github.com/jackiesafari/dam-attack-sub002/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(testutil.NopLogger())
}

func pieceAt(t model.PieceType, x, y int) *model.Piece {
	p := model.NewPiece(t)
	p.X, p.Y = x, y
	return p
}

// Collides tests

func (s *ServiceSuite) TestCollidesEmptyBoardInBounds() {
	b := model.NewBoard(10, 20)
	s.False(s.service.Collides(pieceAt(model.PieceO, 4, 0), b))
}

func (s *ServiceSuite) TestCollidesLeftAndRightWalls() {
	b := model.NewBoard(10, 20)
	s.True(s.service.Collides(pieceAt(model.PieceO, -1, 0), b))
	s.True(s.service.Collides(pieceAt(model.PieceO, 9, 0), b))
	s.False(s.service.Collides(pieceAt(model.PieceO, 8, 0), b))
}

func (s *ServiceSuite) TestCollidesFloor() {
	b := model.NewBoard(10, 20)
	s.False(s.service.Collides(pieceAt(model.PieceO, 0, 18), b))
	s.True(s.service.Collides(pieceAt(model.PieceO, 0, 19), b))
}

func (s *ServiceSuite) TestCollidesOccupiedCell() {
	b := model.NewBoard(10, 20)
	b.Cells[5][4] = int(model.PieceL)

	s.True(s.service.Collides(pieceAt(model.PieceO, 4, 5), b))
	s.False(s.service.Collides(pieceAt(model.PieceO, 5, 5), b))
}

func (s *ServiceSuite) TestCollidesAboveBoardOnlyAgainstWalls() {
	b := model.NewBoard(10, 20)
	// Rows above the top do not collide vertically
	s.False(s.service.Collides(pieceAt(model.PieceO, 4, -2), b))
	// But still collide horizontally
	s.True(s.service.Collides(pieceAt(model.PieceO, -1, -2), b))
}

// Merge tests

func (s *ServiceSuite) TestMergeWritesTypeTag() {
	b := model.NewBoard(10, 20)
	merged := s.service.Merge(pieceAt(model.PieceT, 3, 18), b)

	s.Equal(int(model.PieceT), merged.Cells[18][4])
	s.Equal(int(model.PieceT), merged.Cells[19][3])
	s.Equal(int(model.PieceT), merged.Cells[19][4])
	s.Equal(int(model.PieceT), merged.Cells[19][5])
}

func (s *ServiceSuite) TestMergeDoesNotMutateInput() {
	b := model.NewBoard(10, 20)
	_ = s.service.Merge(pieceAt(model.PieceO, 0, 18), b)

	for y := range b.Cells {
		for x := range b.Cells[y] {
			s.Equal(0, b.Cells[y][x])
		}
	}
}

func (s *ServiceSuite) TestMergeClipsRowsAboveTop() {
	b := model.NewBoard(10, 20)
	// L piece straddling the top edge: rows -1, 0, 1 of shape at y=-2
	merged := s.service.Merge(pieceAt(model.PieceL, 0, -2), b)

	s.Equal(int(model.PieceL), merged.Cells[0][0])
	s.Equal(int(model.PieceL), merged.Cells[0][1])
	for x := 0; x < merged.Width; x++ {
		s.Equal(0, merged.Cells[1][x])
	}
}

func (s *ServiceSuite) TestMergeInvalidPieceReturnsBoardUnchanged() {
	b := model.NewBoard(10, 20)
	invalid := &model.Piece{Type: model.PieceType(9)}

	merged := s.service.Merge(invalid, b)
	s.Same(b, merged)
}

// DropPosition tests

func (s *ServiceSuite) TestDropPositionEmptyBoard() {
	b := model.NewBoard(10, 20)

	// 1x4 horizontal bar rests on the floor row
	s.Equal(19, s.service.DropPosition(pieceAt(model.PieceI, 3, 0), b))
	// 2x2 square rests with its bottom row on the floor
	s.Equal(18, s.service.DropPosition(pieceAt(model.PieceO, 0, 0), b))
}

func (s *ServiceSuite) TestDropPositionOntoStack() {
	b := model.NewBoard(10, 20)
	for x := 0; x < b.Width; x++ {
		b.Cells[19][x] = int(model.PieceI)
	}

	s.Equal(17, s.service.DropPosition(pieceAt(model.PieceO, 0, 0), b))
}

func (s *ServiceSuite) TestDropPositionAlreadyResting() {
	b := model.NewBoard(10, 20)
	s.Equal(18, s.service.DropPosition(pieceAt(model.PieceO, 0, 18), b))
}

// ClearLines tests

func fillRow(b *model.Board, y int) {
	for x := 0; x < b.Width; x++ {
		b.Cells[y][x] = int(model.PieceI)
	}
}

func (s *ServiceSuite) TestClearLinesNoneFull() {
	b := model.NewBoard(4, 4)
	b.Cells[3][0] = int(model.PieceJ)

	result := s.service.ClearLines(b)
	s.Equal(0, result.Count)
	s.Empty(result.Rows)
	s.Equal(b.Cells, result.Board.Cells)
	s.NotSame(b, result.Board)
}

func (s *ServiceSuite) TestClearLinesSingleRow() {
	b := model.NewBoard(4, 4)
	fillRow(b, 3)
	b.Cells[2][1] = int(model.PieceS)

	result := s.service.ClearLines(b)
	s.Equal(1, result.Count)
	s.Equal([]int{3}, result.Rows)

	// Stack compacts down one row
	s.Equal(int(model.PieceS), result.Board.Cells[3][1])
	for x := 0; x < 4; x++ {
		s.Equal(0, result.Board.Cells[0][x])
	}
}

func (s *ServiceSuite) TestClearLinesNonAdjacentRowsSimultaneously() {
	b := model.NewBoard(4, 6)
	fillRow(b, 2)
	fillRow(b, 4)
	b.Cells[3][0] = int(model.PieceZ)
	b.Cells[5][1] = int(model.PieceT)

	result := s.service.ClearLines(b)
	s.Equal(2, result.Count)
	s.Equal([]int{2, 4}, result.Rows)

	// Surviving rows keep their relative order
	s.Equal(int(model.PieceZ), result.Board.Cells[4][0])
	s.Equal(int(model.PieceT), result.Board.Cells[5][1])
	// Everything above the survivors is empty padding
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			s.Equal(0, result.Board.Cells[y][x], "row %d col %d", y, x)
		}
	}
}

func (s *ServiceSuite) TestClearLinesFullBoard() {
	b := model.NewBoard(4, 4)
	for y := 0; y < 4; y++ {
		fillRow(b, y)
	}

	result := s.service.ClearLines(b)
	s.Equal(4, result.Count)
	s.Equal([]int{0, 1, 2, 3}, result.Rows)
	for y := range result.Board.Cells {
		for x := range result.Board.Cells[y] {
			s.Equal(0, result.Board.Cells[y][x])
		}
	}
}

func (s *ServiceSuite) TestClearLinesPreservesDimensions() {
	b := model.NewBoard(7, 11)
	fillRow(b, 10)

	result := s.service.ClearLines(b)
	s.Equal(7, result.Board.Width)
	s.Equal(11, result.Board.Height)
	s.Len(result.Board.Cells, 11)
}

// Validate tests

func (s *ServiceSuite) TestValidateAcceptsWellFormedBoard() {
	s.NoError(s.service.Validate(model.NewBoard(10, 20)))
}

func (s *ServiceSuite) TestValidateRejectsCorruptBoards() {
	s.ErrorIs(s.service.Validate(nil), model.ErrInvalidBoard)

	ragged := model.NewBoard(4, 4)
	ragged.Cells[1] = ragged.Cells[1][:2]
	s.ErrorIs(s.service.Validate(ragged), model.ErrInvalidBoard)

	short := model.NewBoard(4, 4)
	short.Cells = short.Cells[:2]
	s.ErrorIs(s.service.Validate(short), model.ErrInvalidBoard)
}
