package group

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/castdraft/castdraft/go/internal/models"
	"github.com/redis/go-redis/v9"
)

// Groups are stored as whole-document JSON blobs keyed by slug; every write
// rewrites the entire document.
const groupKeyPrefix = "group:"

// Config holds configuration for the Redis group repository.
type Config struct {
	RedisClient *redis.Client
}

// redisRepository implements the group Repository interface using Redis.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed group repository.
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil || cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{client: cfg.RedisClient}, nil
}

// GetGroup retrieves a group document by slug.
func (r *redisRepository) GetGroup(ctx context.Context, slug string) (*models.Group, error) {
	data, err := r.client.Get(ctx, groupKeyPrefix+slug).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("%w: get group: %v", ErrStorageUnavailable, err)
	}

	var g models.Group
	if err := json.Unmarshal([]byte(data), &g); err != nil {
		return nil, fmt.Errorf("failed to unmarshal group %s: %w", slug, err)
	}
	return &g, nil
}

// CreateGroup stores a new group document. Fails if the slug is taken.
func (r *redisRepository) CreateGroup(ctx context.Context, g *models.Group) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal group: %w", err)
	}

	ok, err := r.client.SetNX(ctx, groupKeyPrefix+g.Slug, data, 0).Result()
	if err != nil {
		return fmt.Errorf("%w: create group: %v", ErrStorageUnavailable, err)
	}
	if !ok {
		return ErrGroupExists
	}
	return nil
}

// UpdateGroup rewrites a group document if and only if the stored version
// still matches g.Version. On success g.Version is bumped to the version
// that was written. A concurrent writer triggers ErrVersionConflict.
func (r *redisRepository) UpdateGroup(ctx context.Context, g *models.Group) error {
	key := groupKeyPrefix + g.Slug

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrGroupNotFound
			}
			return fmt.Errorf("%w: read group for update: %v", ErrStorageUnavailable, err)
		}

		var stored models.Group
		if err := json.Unmarshal([]byte(data), &stored); err != nil {
			return fmt.Errorf("failed to unmarshal stored group %s: %w", g.Slug, err)
		}
		if stored.Version != g.Version {
			return ErrVersionConflict
		}

		next := *g
		next.Version = g.Version + 1
		payload, err := json.Marshal(&next)
		if err != nil {
			return fmt.Errorf("failed to marshal group: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		return err
	}, key)

	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return ErrVersionConflict
		}
		return err
	}

	g.Version++
	return nil
}

// DeleteGroup removes a group document.
func (r *redisRepository) DeleteGroup(ctx context.Context, slug string) error {
	if err := r.client.Del(ctx, groupKeyPrefix+slug).Err(); err != nil {
		return fmt.Errorf("%w: delete group: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// SlugExists reports whether a group document exists for the slug.
func (r *redisRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	n, err := r.client.Exists(ctx, groupKeyPrefix+slug).Result()
	if err != nil {
		return false, fmt.Errorf("%w: check slug: %v", ErrStorageUnavailable, err)
	}
	return n > 0, nil
}
