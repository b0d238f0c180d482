package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis key prefixes.
const (
	sessionKeyPrefix = "session:"
	flashKeyPrefix   = "flash:"

	// flashTTL bounds how long an unread flash message lingers for a
	// visitor that never came back for the next page.
	flashTTL = time.Hour
)

// RedisStore is a Store backed by Redis.
// Session keys carry no TTL: identities persist until logout.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and returns a RedisStore.
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	// Connection pool settings
	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)

	// Verify connection
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Ping checks Redis connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// SetUser associates a user ID with the token.
func (s *RedisStore) SetUser(ctx context.Context, token string, userID int64) error {
	key := sessionKeyPrefix + token

	if err := s.client.Set(ctx, key, strconv.FormatInt(userID, 10), 0).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

// User returns the user ID for the token, or ErrNoSession.
func (s *RedisStore) User(ctx context.Context, token string) (int64, error) {
	key := sessionKeyPrefix + token

	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNoSession
		}
		return 0, fmt.Errorf("failed to load session: %w", err)
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// Corrupted entry - treat as absent
		return 0, ErrNoSession
	}

	return userID, nil
}

// Delete clears the identity for the token.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	key := sessionKeyPrefix + token

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// AddFlash queues a one-time message for the token.
func (s *RedisStore) AddFlash(ctx context.Context, token, message string) error {
	key := flashKeyPrefix + token

	pipe := s.client.Pipeline()
	pipe.RPush(ctx, key, message)
	pipe.Expire(ctx, key, flashTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to queue flash: %w", err)
	}

	return nil
}

// PopFlashes returns and discards all queued messages for the token.
func (s *RedisStore) PopFlashes(ctx context.Context, token string) ([]string, error) {
	key := flashKeyPrefix + token

	pipe := s.client.TxPipeline()
	rangeCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to pop flashes: %w", err)
	}

	return rangeCmd.Val(), nil
}
