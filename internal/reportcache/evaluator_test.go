package reportcache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"donation-report-srv/internal/model"
	"donation-report-srv/pkg/log"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	entries map[model.CacheKey]*model.CacheEntry
	deleted []model.CacheKey
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: map[model.CacheKey]*model.CacheEntry{}}
}

func (s *fakeStore) Get(ctx context.Context, key model.CacheKey) (*model.CacheEntry, Tier, error) {
	e, ok := s.entries[key]
	if !ok {
		return nil, TierNone, nil
	}
	return e, TierPrimary, nil
}

func (s *fakeStore) Put(ctx context.Context, entry model.CacheEntry, ttl time.Duration) error {
	s.entries[entry.ReportID] = &entry
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, key model.CacheKey) error {
	s.deleted = append(s.deleted, key)
	delete(s.entries, key)
	return nil
}

func (s *fakeStore) Clear(ctx context.Context) (int, error) {
	n := len(s.entries)
	s.entries = map[model.CacheKey]*model.CacheEntry{}
	return n, nil
}

func (s *fakeStore) Recent(ctx context.Context, limit int64) ([]string, error) {
	return nil, nil
}

func TestEvaluator_Evaluate(t *testing.T) {
	const (
		key = model.CacheKey("0123456789abcdef")
		fp  = model.DataFingerprint("fedcba9876543210")
	)
	now := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

	artifact := func(t *testing.T) string {
		p := filepath.Join(t.TempDir(), "donation_report_weekly_current.pdf")
		require.NoError(t, os.WriteFile(p, []byte("%PDF-1.3"), 0o644))
		return p
	}

	entry := func(location string, age time.Duration, period model.PeriodType) *model.CacheEntry {
		return &model.CacheEntry{
			ReportID:         key,
			PeriodType:       period,
			GeneratedAt:      now.Add(-age),
			ArtifactLocation: location,
			Fingerprint:      fp,
			Version:          EngineVersion,
		}
	}

	newEvaluator := func(store Store) Evaluator {
		return NewEvaluator(store, clockwork.NewFakeClockAt(now), EngineVersion, nil, log.NewNop())
	}

	t.Run("absent entry", func(t *testing.T) {
		store := newFakeStore()
		d := newEvaluator(store).Evaluate(context.Background(), key, fp, model.PeriodWeekly)
		assert.False(t, d.Hit)
		assert.Equal(t, ReasonNotFound, d.Reason)
		assert.Empty(t, store.deleted)
	})

	t.Run("fresh weekly entry hits", func(t *testing.T) {
		p := artifact(t)
		store := newFakeStore()
		store.entries[key] = entry(p, 6*24*time.Hour, model.PeriodWeekly)

		d := newEvaluator(store).Evaluate(context.Background(), key, fp, model.PeriodWeekly)
		assert.True(t, d.Hit)
		assert.Equal(t, p, d.Location)
		assert.Equal(t, TierPrimary, d.Tier)
	})

	t.Run("six days and twenty three hours still hits", func(t *testing.T) {
		p := artifact(t)
		store := newFakeStore()
		store.entries[key] = entry(p, 7*24*time.Hour-time.Hour, model.PeriodMonthly)

		d := newEvaluator(store).Evaluate(context.Background(), key, fp, model.PeriodMonthly)
		assert.True(t, d.Hit)
	})

	t.Run("seven day old weekly entry is evicted with its file", func(t *testing.T) {
		p := artifact(t)
		store := newFakeStore()
		store.entries[key] = entry(p, 7*24*time.Hour, model.PeriodWeekly)

		d := newEvaluator(store).Evaluate(context.Background(), key, fp, model.PeriodWeekly)
		assert.False(t, d.Hit)
		assert.Equal(t, ReasonExpired, d.Reason)
		assert.Equal(t, []model.CacheKey{key}, store.deleted)
		assert.NoFileExists(t, p)
	})

	t.Run("yearly entries do not age out", func(t *testing.T) {
		p := artifact(t)
		store := newFakeStore()
		store.entries[key] = entry(p, 40*24*time.Hour, model.PeriodYearly)

		d := newEvaluator(store).Evaluate(context.Background(), key, fp, model.PeriodYearly)
		assert.True(t, d.Hit)
	})

	t.Run("version mismatch", func(t *testing.T) {
		p := artifact(t)
		store := newFakeStore()
		e := entry(p, time.Hour, model.PeriodWeekly)
		e.Version = "10.0.0"
		store.entries[key] = e

		d := newEvaluator(store).Evaluate(context.Background(), key, fp, model.PeriodWeekly)
		assert.Equal(t, ReasonVersionMismatch, d.Reason)
		assert.Equal(t, []model.CacheKey{key}, store.deleted)
		assert.FileExists(t, p)
	})

	t.Run("missing version never matches", func(t *testing.T) {
		p := artifact(t)
		store := newFakeStore()
		e := entry(p, time.Hour, model.PeriodWeekly)
		e.Version = ""
		store.entries[key] = e

		d := newEvaluator(store).Evaluate(context.Background(), key, fp, model.PeriodWeekly)
		assert.Equal(t, ReasonVersionMismatch, d.Reason)
	})

	t.Run("fingerprint mismatch", func(t *testing.T) {
		p := artifact(t)
		store := newFakeStore()
		store.entries[key] = entry(p, time.Hour, model.PeriodWeekly)

		d := newEvaluator(store).Evaluate(context.Background(), key, "0000000000000000", model.PeriodWeekly)
		assert.Equal(t, ReasonFingerprintMismatch, d.Reason)
		assert.Equal(t, []model.CacheKey{key}, store.deleted)
	})

	t.Run("artifact removed from disk", func(t *testing.T) {
		p := artifact(t)
		require.NoError(t, os.Remove(p))
		store := newFakeStore()
		store.entries[key] = entry(p, time.Hour, model.PeriodWeekly)

		d := newEvaluator(store).Evaluate(context.Background(), key, fp, model.PeriodWeekly)
		assert.Equal(t, ReasonArtifactMissing, d.Reason)
		assert.Equal(t, []model.CacheKey{key}, store.deleted)
	})

	t.Run("url location skips the file check", func(t *testing.T) {
		url := "https://reports.example.com/reports/donation_report_weekly_current.pdf"
		store := newFakeStore()
		store.entries[key] = entry(url, time.Hour, model.PeriodWeekly)

		d := newEvaluator(store).Evaluate(context.Background(), key, fp, model.PeriodWeekly)
		assert.True(t, d.Hit)
		assert.Equal(t, url, d.Location)
	})

	t.Run("stale url entry is evicted", func(t *testing.T) {
		store := newFakeStore()
		store.entries[key] = entry("http://minio:9000/reports/a.pdf", 8*24*time.Hour, model.PeriodWeekly)

		d := newEvaluator(store).Evaluate(context.Background(), key, fp, model.PeriodWeekly)
		assert.Equal(t, ReasonExpired, d.Reason)
		assert.Equal(t, []model.CacheKey{key}, store.deleted)
	})
}

func TestEvaluator_Metrics(t *testing.T) {
	const key = model.CacheKey("0123456789abcdef")
	now := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	store := newFakeStore()
	store.entries[key] = &model.CacheEntry{
		ReportID:         key,
		GeneratedAt:      now,
		ArtifactLocation: "https://reports.example.com/a.pdf",
		Fingerprint:      "aaaaaaaaaaaaaaaa",
		Version:          EngineVersion,
	}
	e := NewEvaluator(store, clockwork.NewFakeClockAt(now), "", m, log.NewNop())

	e.Evaluate(context.Background(), key, "aaaaaaaaaaaaaaaa", model.PeriodYearly)
	e.Evaluate(context.Background(), key, "bbbbbbbbbbbbbbbb", model.PeriodYearly)
	e.Evaluate(context.Background(), key, "bbbbbbbbbbbbbbbb", model.PeriodYearly)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.hits.WithLabelValues("yearly")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.misses.WithLabelValues("yearly", string(ReasonFingerprintMismatch))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.misses.WithLabelValues("yearly", string(ReasonNotFound))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.evictions.WithLabelValues("yearly", string(ReasonFingerprintMismatch))))
}
