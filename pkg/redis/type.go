package redis

import (
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	DefaultConnectTimeout = 5 * time.Second
	DefaultDialTimeout    = 3 * time.Second
	DefaultReadTimeout    = 2 * time.Second
	DefaultWriteTimeout   = 2 * time.Second
	DefaultPoolTimeout    = 3 * time.Second
	DefaultScanBatch      = 100
)

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: port must be between 1 and 65535")
)

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Host         string
	Port         int
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
}

func (c *RedisConfig) applyDefaults() {
	if c.DialTimeout <= 0 {
		c.DialTimeout = DefaultDialTimeout
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.PoolTimeout <= 0 {
		c.PoolTimeout = DefaultPoolTimeout
	}
}

// redisImpl implements IRedis using go-redis.
type redisImpl struct {
	client *goredis.Client
}
