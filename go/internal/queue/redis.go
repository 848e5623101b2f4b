package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/castdraft/castdraft/go/internal/models"
	"github.com/redis/go-redis/v9"
)

// Queues live in their own keyspace, independent of the group documents.
// One whole-document blob per (group, user) pair.
const queueKeyPrefix = "adq:"

// Config holds configuration for the Redis queue repository.
type Config struct {
	RedisClient *redis.Client
}

// redisRepository implements the queue Repository interface using Redis.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed autodraft queue repository.
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil || cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{client: cfg.RedisClient}, nil
}

func queueKey(slug, userName string) string {
	return fmt.Sprintf("%s%s:%s", queueKeyPrefix, slug, userName)
}

// GetQueue retrieves a queue document for a (group, user) pair.
func (r *redisRepository) GetQueue(ctx context.Context, slug, userName string) (*models.AutodraftQueue, error) {
	data, err := r.client.Get(ctx, queueKey(slug, userName)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrQueueNotFound
		}
		return nil, fmt.Errorf("%w: get queue: %v", ErrStorageUnavailable, err)
	}

	var q models.AutodraftQueue
	if err := json.Unmarshal([]byte(data), &q); err != nil {
		return nil, fmt.Errorf("failed to unmarshal queue %s/%s: %w", slug, userName, err)
	}
	return &q, nil
}

// SaveQueue rewrites a queue document.
func (r *redisRepository) SaveQueue(ctx context.Context, q *models.AutodraftQueue) error {
	data, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("failed to marshal queue: %w", err)
	}
	if err := r.client.Set(ctx, queueKey(q.GroupSlug, q.UserName), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: save queue: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// DeleteQueue removes a queue document.
func (r *redisRepository) DeleteQueue(ctx context.Context, slug, userName string) error {
	if err := r.client.Del(ctx, queueKey(slug, userName)).Err(); err != nil {
		return fmt.Errorf("%w: delete queue: %v", ErrStorageUnavailable, err)
	}
	return nil
}
