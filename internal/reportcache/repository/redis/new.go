package redis

import (
	"donation-report-srv/internal/reportcache/repository"
	"donation-report-srv/pkg/log"
	pkgRedis "donation-report-srv/pkg/redis"
)

const (
	keyPattern  = "report:*"
	recentKey   = "reports:recent"
	recentMax   = 100
	scanBatch   = 100
	deleteBatch = 500
)

type implRepository struct {
	rdb pkgRedis.IRedis
	l   log.Logger
}

// New returns the Redis cache tier. Each entry is a hash at report:<key>.
func New(rdb pkgRedis.IRedis, l log.Logger) (repository.IndexedTierRepository, error) {
	if rdb == nil {
		return nil, repository.ErrRedisRequired
	}
	return &implRepository{rdb: rdb, l: l}, nil
}
