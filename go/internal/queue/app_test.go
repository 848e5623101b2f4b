package queue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/castdraft/castdraft/go/internal/draft"
	"github.com/castdraft/castdraft/go/internal/events"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type AppTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	clock   *clockwork.FakeClock
	app     *App
	testNow time.Time
}

func (s *AppTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.testNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	s.clock = clockwork.NewFakeClockAt(s.testNow)
	s.app = NewApp(repo, events.NopPublisher{}, s.clock)
}

func (s *AppTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) TestGetQueue_LazyDefault() {
	q, err := s.app.GetQueue(context.Background(), "castaway-crew", "Alice")
	s.Require().NoError(err)
	s.Equal("castaway-crew", q.GroupSlug)
	s.Equal("Alice", q.UserName)
	s.Empty(q.ContestantIDs)
	s.False(q.Locked)
}

func (s *AppTestSuite) TestToggleSelection_Persists() {
	_, err := s.app.ToggleSelection(context.Background(), "g", "Alice", 4)
	s.Require().NoError(err)
	q, err := s.app.ToggleSelection(context.Background(), "g", "Alice", 7)
	s.Require().NoError(err)
	s.Equal([]int{4, 7}, q.ContestantIDs)
	s.Equal(s.testNow, q.UpdatedAt)

	got, err := s.app.GetQueue(context.Background(), "g", "Alice")
	s.Require().NoError(err)
	s.Equal([]int{4, 7}, got.ContestantIDs)
}

func (s *AppTestSuite) TestToggleSelection_LockedQueueUnchanged() {
	_, err := s.app.ToggleSelection(context.Background(), "g", "Alice", 4)
	s.Require().NoError(err)
	_, err = s.app.ToggleLock(context.Background(), "g", "Alice")
	s.Require().NoError(err)

	_, err = s.app.ToggleSelection(context.Background(), "g", "Alice", 7)
	s.ErrorIs(err, draft.ErrQueueLocked)

	got, err := s.app.GetQueue(context.Background(), "g", "Alice")
	s.Require().NoError(err)
	s.Equal([]int{4}, got.ContestantIDs)
	s.True(got.Locked)
}

func (s *AppTestSuite) TestClearQueue() {
	_, err := s.app.ToggleSelection(context.Background(), "g", "Alice", 4)
	s.Require().NoError(err)

	q, err := s.app.ClearQueue(context.Background(), "g", "Alice")
	s.Require().NoError(err)
	s.Empty(q.ContestantIDs)
}

func (s *AppTestSuite) TestToggleLock_RoundTrip() {
	q, err := s.app.ToggleLock(context.Background(), "g", "Alice")
	s.Require().NoError(err)
	s.True(q.Locked)

	q, err = s.app.ToggleLock(context.Background(), "g", "Alice")
	s.Require().NoError(err)
	s.False(q.Locked)
}

func (s *AppTestSuite) TestToggleLock_StampsUpdatedAt() {
	s.clock.Advance(5 * time.Minute)

	q, err := s.app.ToggleLock(context.Background(), "g", "Alice")
	s.Require().NoError(err)
	s.Equal(s.testNow.Add(5*time.Minute), q.UpdatedAt)
}
