package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Question content changes rarely; answer listings move whenever
// a like lands or a submission is approved; the pending-jobs count backs the
// admin dashboard badge and tolerates short staleness.
const (
	TTLQuestions   = 10 * time.Minute
	TTLAnswers     = 1 * time.Minute
	TTLPendingJobs = 30 * time.Second
	TTLDefault     = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixQuestions = "questions:"
	PrefixAnswers   = "answers:"
	KeyPendingJobs  = "jobs:pending_count"
)

// Service Redis cache service interface
type Service interface {
	// Generic operations
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// Question list cache
	GetQuestions(ctx context.Context, dest interface{}) error
	SetQuestions(ctx context.Context, data interface{}) error
	InvalidateQuestions(ctx context.Context) error

	// Approved answers per question
	GetAnswers(ctx context.Context, questionID string, dest interface{}) error
	SetAnswers(ctx context.Context, questionID string, data interface{}) error
	InvalidateAnswers(ctx context.Context, questionID string) error

	// Pending jobs count for the admin dashboard
	GetPendingJobCount(ctx context.Context) (int64, error)
	SetPendingJobCount(ctx context.Context, count int64) error
	InvalidatePendingJobCount(ctx context.Context) error

	// Utilities
	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache Redis-backed cache implementation
type redisCache struct {
	client *redis.Client
}

// NewService creates a new cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable reports whether a Redis connection is configured
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping tests the Redis connection
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get reads a value from the cache
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Set stores a value in the cache
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // no Redis, caching is best-effort
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes keys from the cache
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// ========================================
// Question list cache
// ========================================

func (c *redisCache) questionsKey() string {
	return PrefixQuestions + "all"
}

func (c *redisCache) GetQuestions(ctx context.Context, dest interface{}) error {
	return c.Get(ctx, c.questionsKey(), dest)
}

func (c *redisCache) SetQuestions(ctx context.Context, data interface{}) error {
	if c.client == nil {
		return nil
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.questionsKey(), jsonData, TTLQuestions).Err()
}

func (c *redisCache) InvalidateQuestions(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.questionsKey()).Err()
}

// ========================================
// Approved answers per question
// ========================================

func (c *redisCache) answersKey(questionID string) string {
	return PrefixAnswers + questionID
}

func (c *redisCache) GetAnswers(ctx context.Context, questionID string, dest interface{}) error {
	return c.Get(ctx, c.answersKey(questionID), dest)
}

func (c *redisCache) SetAnswers(ctx context.Context, questionID string, data interface{}) error {
	if c.client == nil {
		return nil
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.answersKey(questionID), jsonData, TTLAnswers).Err()
}

func (c *redisCache) InvalidateAnswers(ctx context.Context, questionID string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.answersKey(questionID)).Err()
}

// ========================================
// Pending jobs count
// ========================================

func (c *redisCache) GetPendingJobCount(ctx context.Context) (int64, error) {
	if c.client == nil {
		return 0, fmt.Errorf("redis not available")
	}
	val, err := c.client.Get(ctx, KeyPendingJobs).Result()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func (c *redisCache) SetPendingJobCount(ctx context.Context, count int64) error {
	if c.client == nil {
		return nil
	}
	return c.client.Set(ctx, KeyPendingJobs, count, TTLPendingJobs).Err()
}

func (c *redisCache) InvalidatePendingJobCount(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, KeyPendingJobs).Err()
}
