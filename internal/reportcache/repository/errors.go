package repository

import "errors"

var (
	ErrCacheDirRequired = errors.New("repository: cache dir is required")
	ErrRedisRequired    = errors.New("repository: redis client is required")
)
