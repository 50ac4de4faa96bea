package piece

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/jackiesafari/dam-attack-sub002/internal/dependencies/mocks"
	"github.com/jackiesafari/dam-attack-sub002/internal/model"
	"github.com/jackiesafari/dam-attack-sub002/internal/services/board"
	"github.com/jackiesafari/dam-attack-sub002/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	boards  *board.Service
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.boards = board.New(testutil.NopLogger())
	s.service = New(s.random, s.boards)
}

// CreateRandom tests

func (s *ServiceSuite) TestCreateRandomUsesDraw() {
	s.random.QueueIntn(0, 6)

	first := s.service.CreateRandom(10)
	s.Equal(model.PieceI, first.Type)

	second := s.service.CreateRandom(10)
	s.Equal(model.PieceJ, second.Type)
}

func (s *ServiceSuite) TestCreateRandomCentersHorizontally() {
	cases := []struct {
		draw int
		t    model.PieceType
		x    int
	}{
		{0, model.PieceI, 3}, // width 4 on a 10-wide board
		{1, model.PieceO, 4}, // width 2
		{2, model.PieceT, 3}, // width 3
		{5, model.PieceL, 4}, // width 2
	}
	for _, c := range cases {
		s.random.Reset()
		s.random.QueueIntn(c.draw)

		p := s.service.CreateRandom(10)
		s.Equal(c.t, p.Type)
		s.Equal(c.x, p.X, "spawn x for %s", c.t)
		s.Equal(0, p.Y)
	}
}

// Move tests

func (s *ServiceSuite) TestMoveIsPure() {
	p := model.NewPiece(model.PieceT)
	p.X, p.Y = 3, 5

	moved := s.service.Move(p, -1, 2)
	s.Equal(2, moved.X)
	s.Equal(7, moved.Y)
	s.Equal(3, p.X)
	s.Equal(5, p.Y)
	s.Equal(p.Shape, moved.Shape)
}

// Rotate tests

func (s *ServiceSuite) TestRotateIRow() {
	p := model.NewPiece(model.PieceI)

	rotated := s.service.Rotate(p)
	s.Equal([][]int{{1}, {1}, {1}, {1}}, rotated.Shape)
	s.Equal(p.X, rotated.X)
	s.Equal(p.Y, rotated.Y)
}

func (s *ServiceSuite) TestRotateT() {
	p := model.NewPiece(model.PieceT)

	rotated := s.service.Rotate(p)
	s.Equal([][]int{
		{1, 0},
		{1, 1},
		{1, 0},
	}, rotated.Shape)
}

func (s *ServiceSuite) TestRotateFourTimesIsIdentity() {
	for _, t := range model.PieceTypes() {
		p := model.NewPiece(t)
		r := p
		for i := 0; i < 4; i++ {
			r = s.service.Rotate(r)
		}
		s.Equal(p.Shape, r.Shape, "4x rotation of %s", t)
	}
}

func (s *ServiceSuite) TestRotatePreservesCellCount() {
	for _, t := range model.PieceTypes() {
		r := s.service.Rotate(model.NewPiece(t))
		s.Len(r.Cells(), 4, "rotated %s", t)
	}
}

func (s *ServiceSuite) TestRotateDoesNotMutateInput() {
	p := model.NewPiece(model.PieceS)
	original := p.Clone()

	_ = s.service.Rotate(p)
	s.Equal(original.Shape, p.Shape)
}

// WallKick tests

func (s *ServiceSuite) TestWallKickNudgesOffRightWall() {
	b := model.NewBoard(10, 20)

	// Vertical I near the right edge rotates into a horizontal bar that
	// overhangs the wall by two columns
	vertical := &model.Piece{
		Type:  model.PieceI,
		Shape: [][]int{{1}, {1}, {1}, {1}},
		X:     8,
		Y:     5,
	}
	rotated := s.service.Rotate(vertical)
	s.Require().True(s.boards.Collides(rotated, b))

	kicked := s.service.WallKick(rotated, b)
	s.Require().NotNil(kicked)
	s.False(s.boards.Collides(kicked, b))
	s.Equal(6, kicked.X)
	s.Equal(rotated.Shape, kicked.Shape)
}

func (s *ServiceSuite) TestWallKickDeterministicFirstFit() {
	b := model.NewBoard(10, 20)

	// Both left and right nudges fit; the left offset is tried first
	p := model.NewPiece(model.PieceO)
	p.X, p.Y = 4, 5
	b.Cells[5][5] = int(model.PieceZ)

	kicked := s.service.WallKick(p, b)
	s.Require().NotNil(kicked)
	s.Equal(3, kicked.X)
	s.Equal(5, kicked.Y)
}

func (s *ServiceSuite) TestWallKickNoFit() {
	b := model.NewBoard(10, 20)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			b.Cells[y][x] = int(model.PieceI)
		}
	}

	p := model.NewPiece(model.PieceO)
	p.X, p.Y = 4, 5
	s.Nil(s.service.WallKick(p, b))
}
