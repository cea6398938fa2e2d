package adapter

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisClient defines the subset of Redis operations used by the bot to enable mocking
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisClient=MockRedisClient
type RedisClient interface {
	// Ping checks if Redis is reachable
	Ping(ctx context.Context) error

	// SAdd adds member to the set at key and returns the number of members actually added
	SAdd(ctx context.Context, key string, member string) (int64, error)

	// SRem removes member from the set at key and returns the number of members actually removed
	SRem(ctx context.Context, key string, member string) (int64, error)

	// SMembers returns all members of the set at key
	SMembers(ctx context.Context, key string) ([]string, error)

	// ScanKeys returns every key matching pattern using SCAN
	ScanKeys(ctx context.Context, pattern string, count int64) ([]string, error)

	// Close closes the Redis connection
	Close() error
}

// RealRedisClient wraps the actual Redis client
type RealRedisClient struct {
	client *redis.Client
}

// NewRedisClient creates a new Redis client
func NewRedisClient(addr, password string, db int) RedisClient {
	return &RealRedisClient{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Ping checks if Redis is reachable
func (r *RealRedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// SAdd adds member to the set at key
func (r *RealRedisClient) SAdd(ctx context.Context, key string, member string) (int64, error) {
	return r.client.SAdd(ctx, key, member).Result()
}

// SRem removes member from the set at key
func (r *RealRedisClient) SRem(ctx context.Context, key string, member string) (int64, error) {
	return r.client.SRem(ctx, key, member).Result()
}

// SMembers returns all members of the set at key
func (r *RealRedisClient) SMembers(ctx context.Context, key string) ([]string, error) {
	return r.client.SMembers(ctx, key).Result()
}

// ScanKeys returns every key matching pattern
func (r *RealRedisClient) ScanKeys(ctx context.Context, pattern string, count int64) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, pattern, count).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// Close closes the Redis connection
func (r *RealRedisClient) Close() error {
	return r.client.Close()
}
