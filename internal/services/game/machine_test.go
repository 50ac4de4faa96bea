package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/jackiesafari/dam-attack-sub002/internal/dependencies/mocks"
	"github.com/jackiesafari/dam-attack-sub002/internal/model"
	"github.com/jackiesafari/dam-attack-sub002/internal/services/board"
	"github.com/jackiesafari/dam-attack-sub002/internal/services/piece"
	"github.com/jackiesafari/dam-attack-sub002/internal/services/scoring"
	"github.com/jackiesafari/dam-attack-sub002/internal/testutil"
)

type MachineSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	machine *Machine
}

func TestMachineSuite(t *testing.T) {
	suite.Run(t, new(MachineSuite))
}

func (s *MachineSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()

	boards := board.New(testutil.NopLogger())
	pieces := piece.New(s.random, boards)
	s.machine = NewMachine(DefaultConfig(), pieces, boards, scoring.New(), s.clock, testutil.NopLogger())
}

// newGame creates a game; with an exhausted random queue every draw is 0,
// so all pieces are I bars spawning at x=3
func (s *MachineSuite) newGame() *model.Game {
	g, _ := s.machine.NewGame("game-1")
	return g
}

func eventTypes(events []model.Event) []model.EventType {
	types := make([]model.EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}

func findEvent(events []model.Event, t model.EventType) *model.Event {
	for i := range events {
		if events[i].Type == t {
			return &events[i]
		}
	}
	return nil
}

// NewGame tests

func (s *MachineSuite) TestNewGameInitialState() {
	g, events := s.machine.NewGame("game-1")

	s.Equal(model.GameID("game-1"), g.ID)
	s.Equal(10, g.Board.Width)
	s.Equal(20, g.Board.Height)
	s.Equal(0, g.Score)
	s.Equal(1, g.Level)
	s.Equal(0, g.Lines)
	s.Equal(time.Second, g.DropInterval)
	s.False(g.Over)
	s.False(g.Paused)

	s.Require().NotNil(g.Current)
	s.Equal(model.PieceI, g.Current.Type)
	s.Equal(3, g.Current.X)
	s.Equal(0, g.Current.Y)
	s.NotNil(g.Next)

	s.Equal([]model.EventType{model.EventGameCreated, model.EventPieceSpawned}, eventTypes(events))
}

// Movement tests

func (s *MachineSuite) TestMoveLeftAndRight() {
	g := s.newGame()

	events := s.machine.Apply(g, model.CommandMoveLeft)
	s.Equal(2, g.Current.X)
	s.Equal([]model.EventType{model.EventPieceMoved}, eventTypes(events))

	s.machine.Apply(g, model.CommandMoveRight)
	s.Equal(3, g.Current.X)
}

func (s *MachineSuite) TestMoveRejectedAtWall() {
	g := s.newGame()

	// I bar at x=3, width 4: three moves reach the left wall
	for i := 0; i < 3; i++ {
		s.NotEmpty(s.machine.Apply(g, model.CommandMoveLeft))
	}
	s.Equal(0, g.Current.X)

	events := s.machine.Apply(g, model.CommandMoveLeft)
	s.Empty(events)
	s.Equal(0, g.Current.X)
}

func (s *MachineSuite) TestSoftDropDescendsOneRow() {
	g := s.newGame()
	before := g.Current.Y

	events := s.machine.Apply(g, model.CommandSoftDrop)
	s.Equal(before+1, g.Current.Y)

	moved := findEvent(events, model.EventPieceMoved)
	s.Require().NotNil(moved)
	s.Equal(1, moved.Payload.(model.PieceMovedPayload).DY)
}

func (s *MachineSuite) TestSoftDropAwardsNoPoints() {
	g := s.newGame()
	s.machine.Apply(g, model.CommandSoftDrop)
	s.Equal(0, g.Score)
}

func (s *MachineSuite) TestSoftDropResetsDropClock() {
	g := s.newGame()
	s.clock.Advance(700 * time.Millisecond)

	s.machine.Apply(g, model.CommandSoftDrop)
	s.Equal(s.clock.Now(), g.LastDrop)
}

// Rotation tests

func (s *MachineSuite) TestRotateInOpenSpace() {
	g := s.newGame()
	s.machine.Apply(g, model.CommandSoftDrop)

	events := s.machine.Apply(g, model.CommandRotate)
	s.Equal([][]int{{1}, {1}, {1}, {1}}, g.Current.Shape)

	rotated := findEvent(events, model.EventPieceRotated)
	s.Require().NotNil(rotated)
	s.False(rotated.Payload.(model.PieceRotatedPayload).Kicked)
}

func (s *MachineSuite) TestRotateWithWallKick() {
	g := s.newGame()
	s.machine.Apply(g, model.CommandSoftDrop)
	s.machine.Apply(g, model.CommandRotate)

	// Vertical bar against the right wall; rotating back needs a kick
	for g.Current.X < 8 {
		s.Require().NotEmpty(s.machine.Apply(g, model.CommandMoveRight))
	}

	events := s.machine.Apply(g, model.CommandRotate)
	rotated := findEvent(events, model.EventPieceRotated)
	s.Require().NotNil(rotated)
	s.True(rotated.Payload.(model.PieceRotatedPayload).Kicked)
	s.Equal(6, g.Current.X)
}

func (s *MachineSuite) TestRotateRejectedWhenNoKickFits() {
	g := s.newGame()
	s.machine.Apply(g, model.CommandSoftDrop)
	s.machine.Apply(g, model.CommandRotate)

	// Box the vertical bar in so no rotation variant fits
	for y := 0; y < g.Board.Height; y++ {
		for x := 0; x < g.Board.Width; x++ {
			if x != g.Current.X {
				g.Board.Cells[y][x] = int(model.PieceO)
			}
		}
	}

	before := g.Current.Clone()
	events := s.machine.Apply(g, model.CommandRotate)
	s.Empty(events)
	s.Equal(before, g.Current)
}

// Hard drop tests

func (s *MachineSuite) TestHardDropRestsOnFloor() {
	g := s.newGame()

	events := s.machine.Apply(g, model.CommandHardDrop)

	// I bar from y=0 rests on the bottom row
	locked := findEvent(events, model.EventPieceLocked)
	s.Require().NotNil(locked)
	for x := 3; x <= 6; x++ {
		s.Equal(int(model.PieceI), g.Board.Cells[19][x], "col %d", x)
	}

	// 19 rows of forced descent at 2 points per cell
	s.Equal(38, g.Score)

	// Next piece spawned immediately
	s.NotNil(g.Current)
	s.Equal(0, g.Current.Y)
	s.NotNil(findEvent(events, model.EventPieceSpawned))
}

func (s *MachineSuite) TestHardDropOntoStack() {
	g := s.newGame()
	// Two locked rows directly under the bar's columns
	for x := 3; x <= 6; x++ {
		g.Board.Cells[18][x] = int(model.PieceO)
		g.Board.Cells[19][x] = int(model.PieceO)
	}

	s.machine.Apply(g, model.CommandHardDrop)
	for x := 3; x <= 6; x++ {
		s.Equal(int(model.PieceI), g.Board.Cells[17][x])
	}
	// 17 rows of forced descent
	s.Equal(34, g.Score)
}

// Line clear and scoring tests

func (s *MachineSuite) TestSingleLineClearScoresAtLevelOne() {
	g := s.newGame()
	for x := 0; x < g.Board.Width; x++ {
		if x < 3 || x > 6 {
			g.Board.Cells[19][x] = int(model.PieceO)
		}
	}

	events := s.machine.Apply(g, model.CommandHardDrop)

	cleared := findEvent(events, model.EventLinesCleared)
	s.Require().NotNil(cleared)
	payload := cleared.Payload.(model.LinesClearedPayload)
	s.Equal(1, payload.Count)
	s.Equal([]int{19}, payload.Rows)
	s.False(payload.Tetris)
	s.Equal(100, payload.Points)

	// 100 for the clear plus 38 for the drop
	s.Equal(138, g.Score)
	s.Equal(1, g.Lines)

	// The cleared stack leaves an empty bottom row
	for x := 0; x < g.Board.Width; x++ {
		s.Equal(0, g.Board.Cells[19][x])
	}
}

func (s *MachineSuite) TestTetrisClearSetsFlag() {
	g := s.newGame()
	// Vertical bar over a one-column well four rows deep
	s.machine.Apply(g, model.CommandRotate)
	s.Require().Equal(3, g.Current.X)
	for y := 16; y <= 19; y++ {
		for x := 0; x < g.Board.Width; x++ {
			if x != 3 {
				g.Board.Cells[y][x] = int(model.PieceO)
			}
		}
	}

	events := s.machine.Apply(g, model.CommandHardDrop)

	cleared := findEvent(events, model.EventLinesCleared)
	s.Require().NotNil(cleared)
	payload := cleared.Payload.(model.LinesClearedPayload)
	s.Equal(4, payload.Count)
	s.Equal([]int{16, 17, 18, 19}, payload.Rows)
	s.True(payload.Tetris)
	s.Equal(400, payload.Points)
	s.Equal(4, g.Lines)
}

func (s *MachineSuite) TestLevelUpAtLinesThreshold() {
	g := s.newGame()
	g.Lines = 9
	for x := 0; x < g.Board.Width; x++ {
		if x < 3 || x > 6 {
			g.Board.Cells[19][x] = int(model.PieceO)
		}
	}

	events := s.machine.Apply(g, model.CommandHardDrop)

	s.Equal(10, g.Lines)
	s.Equal(2, g.Level)
	s.Equal(900*time.Millisecond, g.DropInterval)

	levelUp := findEvent(events, model.EventLevelUp)
	s.Require().NotNil(levelUp)
	payload := levelUp.Payload.(model.LevelUpPayload)
	s.Equal(2, payload.Level)
	s.Equal(int64(900), payload.DropIntervalMs)
}

func (s *MachineSuite) TestLineClearPointsScaleWithLevel() {
	g := s.newGame()
	g.Level = 3
	for x := 0; x < g.Board.Width; x++ {
		if x < 3 || x > 6 {
			g.Board.Cells[19][x] = int(model.PieceO)
		}
	}

	events := s.machine.Apply(g, model.CommandHardDrop)

	cleared := findEvent(events, model.EventLinesCleared)
	s.Require().NotNil(cleared)
	s.Equal(300, cleared.Payload.(model.LinesClearedPayload).Points)
}

// Game over tests

func (s *MachineSuite) TestSpawnCollisionEndsGame() {
	g := s.newGame()
	// Occupy a spawn cell so the next spawn collides
	g.Board.Cells[0][4] = int(model.PieceO)
	boardBefore := g.Board.Clone()

	events := s.machine.Apply(g, model.CommandHardDrop)

	s.True(g.Over)
	s.Nil(g.Current)

	over := findEvent(events, model.EventGameOver)
	s.Require().NotNil(over)
	s.Equal(g.Result(), over.Payload.(model.GameOverPayload).Result)

	// The dropped bar merged, but the failed spawn wrote nothing
	for x := 3; x <= 6; x++ {
		s.Equal(int(model.PieceI), g.Board.Cells[19][x])
	}
	s.Equal(boardBefore.Cells[0], g.Board.Cells[0])
}

func (s *MachineSuite) TestCommandsAreNoOpsAfterGameOver() {
	g := s.newGame()
	g.Board.Cells[0][4] = int(model.PieceO)
	s.machine.Apply(g, model.CommandHardDrop)
	s.Require().True(g.Over)

	snapshot := g.Snapshot()
	for _, cmd := range []model.Command{
		model.CommandMoveLeft, model.CommandMoveRight, model.CommandSoftDrop,
		model.CommandRotate, model.CommandHardDrop, model.CommandPause,
	} {
		s.Empty(s.machine.Apply(g, cmd))
	}
	s.Empty(s.machine.Advance(g))
	s.Equal(snapshot, g.Snapshot())
}

// Pause tests

func (s *MachineSuite) TestPauseTogglesAndBlocksMovement() {
	g := s.newGame()

	events := s.machine.Apply(g, model.CommandPause)
	s.True(g.Paused)
	toggled := findEvent(events, model.EventPauseToggled)
	s.Require().NotNil(toggled)
	s.True(toggled.Payload.(model.PauseToggledPayload).Paused)

	s.Empty(s.machine.Apply(g, model.CommandMoveLeft))
	s.Equal(3, g.Current.X)
	s.Empty(s.machine.Advance(g))
}

func (s *MachineSuite) TestUnpauseRestartsDropClock() {
	g := s.newGame()
	s.machine.Apply(g, model.CommandPause)

	s.clock.Advance(5 * time.Second)
	s.machine.Apply(g, model.CommandPause)

	s.False(g.Paused)
	s.Equal(s.clock.Now(), g.LastDrop)

	// Time spent paused does not trigger a catch-up drop
	s.Empty(s.machine.Advance(g))
	s.Equal(0, g.Current.Y)
}

// Advance tests

func (s *MachineSuite) TestAdvanceBeforeIntervalDoesNothing() {
	g := s.newGame()
	s.clock.Advance(999 * time.Millisecond)
	s.Empty(s.machine.Advance(g))
	s.Equal(0, g.Current.Y)
}

func (s *MachineSuite) TestAdvanceSingleInterval() {
	g := s.newGame()
	s.clock.Advance(time.Second)

	events := s.machine.Advance(g)
	s.Equal(1, g.Current.Y)
	s.Len(events, 1)
	s.Equal(model.EventPieceMoved, events[0].Type)
}

func (s *MachineSuite) TestAdvanceCatchesUpMissedIntervals() {
	g := s.newGame()
	s.clock.Advance(3500 * time.Millisecond)

	events := s.machine.Advance(g)
	s.Equal(3, g.Current.Y)
	s.Len(events, 3)
}

func (s *MachineSuite) TestAdvanceLocksAtRest() {
	g := s.newGame()
	g.Current.Y = 19

	s.clock.Advance(time.Second)
	events := s.machine.Advance(g)

	s.NotNil(findEvent(events, model.EventPieceLocked))
	s.NotNil(findEvent(events, model.EventPieceSpawned))
	for x := 3; x <= 6; x++ {
		s.Equal(int(model.PieceI), g.Board.Cells[19][x])
	}
}

// Reset tests

func (s *MachineSuite) TestResetRestoresDefaults() {
	g := s.newGame()
	s.machine.Apply(g, model.CommandHardDrop)
	g.Score = 500
	g.Lines = 12
	g.Level = 2
	g.Over = true

	events := s.machine.Reset(g)

	s.Equal(0, g.Score)
	s.Equal(1, g.Level)
	s.Equal(0, g.Lines)
	s.Equal(time.Second, g.DropInterval)
	s.False(g.Over)
	s.False(g.Paused)
	s.NotNil(g.Current)
	for y := range g.Board.Cells {
		for x := range g.Board.Cells[y] {
			s.Equal(0, g.Board.Cells[y][x])
		}
	}

	s.Equal([]model.EventType{model.EventGameReset, model.EventPieceSpawned}, eventTypes(events))
}
