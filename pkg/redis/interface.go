package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IRedis defines the interface for Redis operations.
// Implementations are safe for concurrent use.
type IRedis interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) (int64, error)
	Exists(ctx context.Context, key string) (bool, error)
	TTL(ctx context.Context, key string) (time.Duration, error)

	// HSetWithTTL writes all fields of a hash and sets its expiry in one pipeline.
	HSetWithTTL(ctx context.Context, key string, fields map[string]interface{}, ttl time.Duration) error
	HGet(ctx context.Context, key, field string) (string, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// PushCapped prepends value to a list and trims it to at most max entries.
	PushCapped(ctx context.Context, key, value string, max int64) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)

	// ScanKeys iterates the keyspace with SCAN and returns every key matching pattern.
	ScanKeys(ctx context.Context, pattern string, batch int64) ([]string, error)

	Ping(ctx context.Context) error
	Close() error
	GetClient() *goredis.Client
}

// NewRedis creates a new Redis client and verifies the connection.
func NewRedis(cfg RedisConfig) (IRedis, error) {
	if cfg.Host == "" {
		return nil, ErrHostRequired
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, ErrInvalidPort
	}
	cfg.applyDefaults()

	client := goredis.NewClient(&goredis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolTimeout:  cfg.PoolTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisImpl{client: client}, nil
}

// NewFromClient wraps an existing go-redis client.
func NewFromClient(client *goredis.Client) IRedis {
	return &redisImpl{client: client}
}

// IsNil reports whether err is the go-redis "key does not exist" sentinel.
func IsNil(err error) bool {
	return err == goredis.Nil
}
