package repository

import (
	"context"
	"time"

	"donation-report-srv/internal/model"
)

// TierRepository is one layer of the report cache.
// Get returns (nil, nil) when the key is absent or expired.
type TierRepository interface {
	Get(ctx context.Context, key model.CacheKey) (*model.CacheEntry, error)
	Put(ctx context.Context, entry model.CacheEntry, ttl time.Duration) error
	Delete(ctx context.Context, key model.CacheKey) error
	// Clear removes every report entry and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}

// RecentRepository exposes the most recently written report ids, newest first.
type RecentRepository interface {
	Recent(ctx context.Context, limit int64) ([]string, error)
}

// IndexedTierRepository is a tier that also tracks recent writes.
type IndexedTierRepository interface {
	TierRepository
	RecentRepository
}
