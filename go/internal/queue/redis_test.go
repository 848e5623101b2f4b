package queue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/castdraft/castdraft/go/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetQueue() {
	q := &models.AutodraftQueue{
		GroupSlug:     "castaway-crew",
		UserName:      "Alice",
		ContestantIDs: []int{5, 1, 9},
		Locked:        true,
		UpdatedAt:     time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.repo.SaveQueue(context.Background(), q))

	got, err := s.repo.GetQueue(context.Background(), "castaway-crew", "Alice")
	s.Require().NoError(err)
	s.Equal([]int{5, 1, 9}, got.ContestantIDs)
	s.True(got.Locked)
	s.Equal(q.UpdatedAt, got.UpdatedAt)
}

func (s *RedisRepositoryTestSuite) TestGetQueue_NotFound() {
	_, err := s.repo.GetQueue(context.Background(), "castaway-crew", "Alice")
	s.ErrorIs(err, ErrQueueNotFound)
}

func (s *RedisRepositoryTestSuite) TestQueuesAreScopedPerUser() {
	alice := &models.AutodraftQueue{GroupSlug: "g", UserName: "Alice", ContestantIDs: []int{1}}
	bob := &models.AutodraftQueue{GroupSlug: "g", UserName: "Bob", ContestantIDs: []int{2}}
	s.Require().NoError(s.repo.SaveQueue(context.Background(), alice))
	s.Require().NoError(s.repo.SaveQueue(context.Background(), bob))

	got, err := s.repo.GetQueue(context.Background(), "g", "Bob")
	s.Require().NoError(err)
	s.Equal([]int{2}, got.ContestantIDs)
}

func (s *RedisRepositoryTestSuite) TestDeleteQueue() {
	q := &models.AutodraftQueue{GroupSlug: "g", UserName: "Alice", ContestantIDs: []int{1}}
	s.Require().NoError(s.repo.SaveQueue(context.Background(), q))
	s.Require().NoError(s.repo.DeleteQueue(context.Background(), "g", "Alice"))

	_, err := s.repo.GetQueue(context.Background(), "g", "Alice")
	s.ErrorIs(err, ErrQueueNotFound)
}
