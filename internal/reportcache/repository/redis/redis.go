package redis

import (
	"context"
	"fmt"
	"time"

	"donation-report-srv/internal/model"
	pkgRedis "donation-report-srv/pkg/redis"
)

func (r *implRepository) Get(ctx context.Context, key model.CacheKey) (*model.CacheEntry, error) {
	fields, err := r.rdb.HGetAll(ctx, key.StorageKey())
	if err != nil {
		return nil, fmt.Errorf("redis hgetall %s: %w", key, err)
	}
	return model.CacheEntryFromFields(fields), nil
}

func (r *implRepository) Put(ctx context.Context, entry model.CacheEntry, ttl time.Duration) error {
	storageKey := entry.ReportID.StorageKey()
	flat := entry.ToFields()
	fields := make(map[string]interface{}, len(flat))
	for k, v := range flat {
		fields[k] = v
	}

	if err := r.rdb.HSetWithTTL(ctx, storageKey, fields, ttl); err != nil {
		return fmt.Errorf("redis hset %s: %w", entry.ReportID, err)
	}

	// Read back one field; a mismatch is logged but the write stands.
	got, err := r.rdb.HGet(ctx, storageKey, model.FieldDataFingerprint)
	if err != nil && !pkgRedis.IsNil(err) {
		r.l.Warnf(ctx, "reportcache.redis.Put: verify %s failed: %v", entry.ReportID, err)
	} else if got != string(entry.Fingerprint) {
		r.l.Warnf(ctx, "reportcache.redis.Put: verify %s mismatch: stored=%q expected=%q", entry.ReportID, got, entry.Fingerprint)
	}

	if err := r.rdb.PushCapped(ctx, recentKey, string(entry.ReportID), recentMax); err != nil {
		r.l.Warnf(ctx, "reportcache.redis.Put: recent list update failed for %s: %v", entry.ReportID, err)
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, key model.CacheKey) error {
	if _, err := r.rdb.Delete(ctx, key.StorageKey()); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (r *implRepository) Clear(ctx context.Context) (int, error) {
	keys, err := r.rdb.ScanKeys(ctx, keyPattern, scanBatch)
	if err != nil {
		return 0, fmt.Errorf("redis scan %s: %w", keyPattern, err)
	}

	var removed int
	for start := 0; start < len(keys); start += deleteBatch {
		end := min(start+deleteBatch, len(keys))
		n, err := r.rdb.Delete(ctx, keys[start:end]...)
		removed += int(n)
		if err != nil {
			return removed, fmt.Errorf("redis del batch: %w", err)
		}
	}
	return removed, nil
}

func (r *implRepository) Recent(ctx context.Context, limit int64) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}
	ids, err := r.rdb.LRange(ctx, recentKey, 0, limit-1)
	if err != nil {
		return nil, fmt.Errorf("redis lrange %s: %w", recentKey, err)
	}
	return ids, nil
}
