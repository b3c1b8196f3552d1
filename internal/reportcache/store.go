package reportcache

import (
	"context"
	"errors"
	"time"

	"donation-report-srv/internal/model"
	"donation-report-srv/internal/reportcache/repository"
	"donation-report-srv/pkg/log"
)

// Store is the two tier report cache. Failures of the primary tier are logged and
// absorbed; callers only see an error when no tier could serve the request.
type Store interface {
	Get(ctx context.Context, key model.CacheKey) (*model.CacheEntry, Tier, error)
	Put(ctx context.Context, entry model.CacheEntry, ttl time.Duration) error
	Delete(ctx context.Context, key model.CacheKey) error
	Clear(ctx context.Context) (int, error)
	Recent(ctx context.Context, limit int64) ([]string, error)
}

type implStore struct {
	primary   repository.TierRepository
	secondary repository.TierRepository
	recent    repository.RecentRepository
	l         log.Logger
}

// NewStore builds a Store. primary may be nil, in which case the store runs on the
// secondary tier alone. If primary also implements RecentRepository it backs Recent.
func NewStore(primary, secondary repository.TierRepository, l log.Logger) (Store, error) {
	if secondary == nil {
		return nil, ErrNoTierConfigured
	}
	s := &implStore{primary: primary, secondary: secondary, l: l}
	if r, ok := primary.(repository.RecentRepository); ok {
		s.recent = r
	}
	return s, nil
}

func (s *implStore) Get(ctx context.Context, key model.CacheKey) (*model.CacheEntry, Tier, error) {
	if s.primary != nil {
		entry, err := s.primary.Get(ctx, key)
		if err != nil {
			s.l.Warnf(ctx, "reportcache.Store.Get: primary read failed for %s, using secondary: %v", key, err)
		} else if entry != nil {
			return entry, TierPrimary, nil
		}
	}

	entry, err := s.secondary.Get(ctx, key)
	if err != nil {
		s.l.Errorf(ctx, "reportcache.Store.Get: secondary read failed for %s: %v", key, err)
		return nil, TierNone, err
	}
	if entry == nil {
		return nil, TierNone, nil
	}
	if s.primary != nil {
		s.l.Infof(ctx, "reportcache.Store.Get: serving %s from secondary tier", key)
	}
	return entry, TierSecondary, nil
}

func (s *implStore) Put(ctx context.Context, entry model.CacheEntry, ttl time.Duration) error {
	var primaryErr error
	if s.primary != nil {
		if primaryErr = s.primary.Put(ctx, entry, ttl); primaryErr != nil {
			s.l.Errorf(ctx, "reportcache.Store.Put: primary write failed for %s: %v", entry.ReportID, primaryErr)
		}
	}

	secondaryErr := s.secondary.Put(ctx, entry, ttl)
	if secondaryErr != nil {
		s.l.Errorf(ctx, "reportcache.Store.Put: secondary write failed for %s: %v", entry.ReportID, secondaryErr)
	}

	if secondaryErr != nil && (s.primary == nil || primaryErr != nil) {
		return errors.Join(ErrAllTiersFailed, primaryErr, secondaryErr)
	}
	return nil
}

// Delete removes key from every tier. Absence or failure in a tier is logged only.
func (s *implStore) Delete(ctx context.Context, key model.CacheKey) error {
	if s.primary != nil {
		if err := s.primary.Delete(ctx, key); err != nil {
			s.l.Warnf(ctx, "reportcache.Store.Delete: primary delete failed for %s: %v", key, err)
		}
	}
	if err := s.secondary.Delete(ctx, key); err != nil {
		s.l.Warnf(ctx, "reportcache.Store.Delete: secondary delete failed for %s: %v", key, err)
	}
	return nil
}

func (s *implStore) Clear(ctx context.Context) (int, error) {
	var (
		total      int
		primaryErr error
	)
	if s.primary != nil {
		n, err := s.primary.Clear(ctx)
		if err != nil {
			primaryErr = err
			s.l.Errorf(ctx, "reportcache.Store.Clear: primary clear failed: %v", err)
		}
		total += n
	}

	n, secondaryErr := s.secondary.Clear(ctx)
	if secondaryErr != nil {
		s.l.Errorf(ctx, "reportcache.Store.Clear: secondary clear failed: %v", secondaryErr)
	}
	total += n

	if primaryErr != nil || secondaryErr != nil {
		return total, errors.Join(primaryErr, secondaryErr)
	}
	return total, nil
}

func (s *implStore) Recent(ctx context.Context, limit int64) ([]string, error) {
	if s.recent == nil {
		return []string{}, nil
	}
	return s.recent.Recent(ctx, limit)
}
