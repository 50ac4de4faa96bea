package leaderboard

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/jackiesafari/dam-attack-sub002/internal/dependencies/mocks"
	"github.com/jackiesafari/dam-attack-sub002/internal/model"
	"github.com/jackiesafari/dam-attack-sub002/internal/storage/memory"
	"github.com/jackiesafari/dam-attack-sub002/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) submit(player string, score int) {
	_, _, err := s.service.Submit(s.ctx, player, model.Result{Score: score, Level: 1, Lines: 0})
	s.Require().NoError(err)
}

// Submit tests

func (s *ServiceSuite) TestSubmitFirstScore() {
	entry, improved, err := s.service.Submit(s.ctx, "alice", model.Result{Score: 500, Level: 2, Lines: 14})
	s.Require().NoError(err)

	s.True(improved)
	s.Equal("alice", entry.Player)
	s.Equal(500, entry.Score)
	s.Equal(2, entry.Level)
	s.Equal(14, entry.Lines)
	s.Equal(s.clock.Now(), entry.SubmittedAt)
}

func (s *ServiceSuite) TestSubmitKeepsBest() {
	s.submit("alice", 500)
	s.clock.Advance(time.Minute)

	entry, improved, err := s.service.Submit(s.ctx, "alice", model.Result{Score: 300, Level: 1, Lines: 2})
	s.Require().NoError(err)

	s.False(improved)
	s.Equal(500, entry.Score)

	best, err := s.service.PlayerBest(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(500, best.Score)
}

func (s *ServiceSuite) TestSubmitImprovesBest() {
	s.submit("alice", 500)
	s.clock.Advance(time.Minute)

	entry, improved, err := s.service.Submit(s.ctx, "alice", model.Result{Score: 900, Level: 3, Lines: 22})
	s.Require().NoError(err)

	s.True(improved)
	s.Equal(900, entry.Score)
}

func (s *ServiceSuite) TestSubmitEqualScoreDoesNotImprove() {
	s.submit("alice", 500)

	_, improved, err := s.service.Submit(s.ctx, "alice", model.Result{Score: 500, Level: 1, Lines: 0})
	s.Require().NoError(err)
	s.False(improved)
}

func (s *ServiceSuite) TestSubmitTrimsPlayerName() {
	entry, _, err := s.service.Submit(s.ctx, "  alice  ", model.Result{Score: 100, Level: 1, Lines: 1})
	s.Require().NoError(err)
	s.Equal("alice", entry.Player)
}

func (s *ServiceSuite) TestSubmitInvalidPlayerName() {
	_, _, err := s.service.Submit(s.ctx, "", model.Result{Score: 100, Level: 1})
	s.ErrorIs(err, model.ErrInvalidPlayerName)

	_, _, err = s.service.Submit(s.ctx, "   ", model.Result{Score: 100, Level: 1})
	s.ErrorIs(err, model.ErrInvalidPlayerName)

	long := strings.Repeat("x", maxPlayerNameLength+1)
	_, _, err = s.service.Submit(s.ctx, long, model.Result{Score: 100, Level: 1})
	s.ErrorIs(err, model.ErrInvalidPlayerName)
}

func (s *ServiceSuite) TestSubmitInvalidResult() {
	_, _, err := s.service.Submit(s.ctx, "alice", model.Result{Score: -1, Level: 1})
	s.ErrorIs(err, model.ErrInvalidScore)

	_, _, err = s.service.Submit(s.ctx, "alice", model.Result{Score: 100, Level: 0})
	s.ErrorIs(err, model.ErrInvalidScore)

	_, _, err = s.service.Submit(s.ctx, "alice", model.Result{Score: 100, Level: 1, Lines: -1})
	s.ErrorIs(err, model.ErrInvalidScore)
}

// Top tests

func (s *ServiceSuite) TestTopOrdersByScoreDescending() {
	s.submit("alice", 300)
	s.submit("bob", 900)
	s.submit("carol", 600)

	top, err := s.service.Top(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(top, 3)
	s.Equal("bob", top[0].Player)
	s.Equal("carol", top[1].Player)
	s.Equal("alice", top[2].Player)
}

func (s *ServiceSuite) TestTopHonorsLimit() {
	for i, name := range []string{"a", "b", "c", "d", "e"} {
		s.submit(name, (i+1)*100)
	}

	top, err := s.service.Top(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(top, 2)
	s.Equal("e", top[0].Player)
}

func (s *ServiceSuite) TestTopDefaultAndMaxLimit() {
	for i := 0; i < 15; i++ {
		s.submit(string(rune('a'+i)), (i+1)*10)
	}

	top, err := s.service.Top(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(top, DefaultLimit)

	top, err = s.service.Top(s.ctx, MaxLimit+50)
	s.Require().NoError(err)
	s.Len(top, 15)
}

func (s *ServiceSuite) TestTopTieBreaksByEarlierSubmission() {
	s.submit("late", 500)
	s.clock.Advance(-time.Hour)
	s.submit("early", 500)
	s.clock.Advance(2 * time.Hour)

	top, err := s.service.Top(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal("early", top[0].Player)
	s.Equal("late", top[1].Player)
}

// PlayerBest tests

func (s *ServiceSuite) TestPlayerBestNotFound() {
	_, err := s.service.PlayerBest(s.ctx, "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestPlayerBestInvalidName() {
	_, err := s.service.PlayerBest(s.ctx, "  ")
	s.ErrorIs(err, model.ErrInvalidPlayerName)
}

// PlayerRank tests

func (s *ServiceSuite) TestPlayerRank() {
	s.submit("alice", 300)
	s.submit("bob", 900)
	s.submit("carol", 600)

	rank, err := s.service.PlayerRank(s.ctx, "bob")
	s.Require().NoError(err)
	s.Equal(1, rank)

	rank, err = s.service.PlayerRank(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(3, rank)
}

func (s *ServiceSuite) TestPlayerRankNotFound() {
	_, err := s.service.PlayerRank(s.ctx, "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
