package reportcache

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"donation-report-srv/internal/model"
	"donation-report-srv/pkg/log"

	"github.com/jonboulle/clockwork"
)

// Evaluator decides whether a cached report may be served.
type Evaluator interface {
	Evaluate(ctx context.Context, key model.CacheKey, fp model.DataFingerprint, period model.PeriodType) Decision
}

type implEvaluator struct {
	store   Store
	clock   clockwork.Clock
	version string
	metrics *Metrics
	l       log.Logger
}

// NewEvaluator returns an Evaluator that checks entries against version. An empty
// version means EngineVersion. metrics may be nil.
func NewEvaluator(store Store, clock clockwork.Clock, version string, metrics *Metrics, l log.Logger) Evaluator {
	if version == "" {
		version = EngineVersion
	}
	return &implEvaluator{store: store, clock: clock, version: version, metrics: metrics, l: l}
}

// Evaluate applies, in order: presence, engine version, fingerprint, artifact
// existence and, for weekly and monthly reports, age. Every failed check after
// presence evicts the entry.
func (e *implEvaluator) Evaluate(ctx context.Context, key model.CacheKey, fp model.DataFingerprint, period model.PeriodType) Decision {
	d := e.evaluate(ctx, key, fp, period)
	e.metrics.observe(string(period), d)
	if d.Hit {
		e.l.Infof(ctx, "reportcache.Evaluator.Evaluate: hit %s from %s tier: %s", key, d.Tier, d.Location)
	} else {
		e.l.Infof(ctx, "reportcache.Evaluator.Evaluate: miss %s: %s", key, d.Reason)
	}
	return d
}

func (e *implEvaluator) evaluate(ctx context.Context, key model.CacheKey, fp model.DataFingerprint, period model.PeriodType) Decision {
	entry, tier, err := e.store.Get(ctx, key)
	if err != nil {
		e.l.Warnf(ctx, "reportcache.Evaluator.evaluate: store read failed for %s: %v", key, err)
		return miss(ReasonNotFound)
	}
	if entry == nil {
		return miss(ReasonNotFound)
	}

	if entry.Version != e.version {
		e.evict(ctx, key, period, ReasonVersionMismatch, "")
		return miss(ReasonVersionMismatch)
	}

	if entry.Fingerprint != fp {
		e.l.Infof(ctx, "reportcache.Evaluator.evaluate: data changed for %s: cached=%s current=%s", key, entry.Fingerprint, fp)
		e.evict(ctx, key, period, ReasonFingerprintMismatch, "")
		return miss(ReasonFingerprintMismatch)
	}

	location := entry.ArtifactLocation
	if !IsRemoteLocation(location) && !fileExists(location) {
		e.evict(ctx, key, period, ReasonArtifactMissing, "")
		return miss(ReasonArtifactMissing)
	}

	if period.Rolling() {
		ageDays := int(e.clock.Since(entry.GeneratedAt).Hours() / 24)
		if ageDays >= maxRollingAgeDays {
			e.evict(ctx, key, period, ReasonExpired, location)
			return miss(ReasonExpired)
		}
	}

	return hit(location, tier)
}

// evict drops key from the store. A non-empty artifact is also removed from disk
// unless it is a remote URL, whose lifecycle is managed by the bucket.
func (e *implEvaluator) evict(ctx context.Context, key model.CacheKey, period model.PeriodType, reason Reason, artifact string) {
	if err := e.store.Delete(ctx, key); err != nil {
		e.l.Warnf(ctx, "reportcache.Evaluator.evict: delete %s failed: %v", key, err)
	}
	e.metrics.evicted(string(period), reason)

	if artifact == "" || IsRemoteLocation(artifact) {
		return
	}
	if err := os.Remove(artifact); err != nil && !errors.Is(err, fs.ErrNotExist) {
		e.l.Warnf(ctx, "reportcache.Evaluator.evict: remove %s failed: %v", artifact, err)
		return
	}
	e.l.Infof(ctx, "reportcache.Evaluator.evict: deleted expired artifact %s", artifact)
}

// IsRemoteLocation reports whether loc is a URL rather than a local path.
func IsRemoteLocation(loc string) bool {
	return strings.HasPrefix(loc, "http")
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
