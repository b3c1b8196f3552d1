package reportcache

import (
	"time"

	"donation-report-srv/internal/model"
)

// EngineVersion is part of every cache key and is checked on every read.
// Bumping it invalidates all cached reports.
const EngineVersion = "11.0.0"

const (
	RollingTTL = 7 * 24 * time.Hour
	YearlyTTL  = 30 * 24 * time.Hour

	// maxRollingAgeDays is the age in whole days at which a weekly or monthly report is stale.
	maxRollingAgeDays = 7
)

// TTLFor returns how long the store keeps an entry for the period.
func TTLFor(p model.PeriodType) time.Duration {
	if p == model.PeriodYearly {
		return YearlyTTL
	}
	return RollingTTL
}

// Tier names the store layer an entry was read from.
type Tier string

const (
	TierNone      Tier = ""
	TierPrimary   Tier = "primary"
	TierSecondary Tier = "secondary"
)

// Reason explains a Decision.
type Reason string

const (
	ReasonHit                 Reason = "hit"
	ReasonNotFound            Reason = "not_found"
	ReasonVersionMismatch     Reason = "version_mismatch"
	ReasonFingerprintMismatch Reason = "fingerprint_mismatch"
	ReasonArtifactMissing     Reason = "artifact_missing"
	ReasonExpired             Reason = "expired"
)

// Decision is the outcome of evaluating a cached entry.
type Decision struct {
	Hit      bool
	Location string
	Reason   Reason
	Tier     Tier
}

func hit(location string, tier Tier) Decision {
	return Decision{Hit: true, Location: location, Reason: ReasonHit, Tier: tier}
}

func miss(reason Reason) Decision {
	return Decision{Reason: reason}
}
