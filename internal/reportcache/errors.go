package reportcache

import "errors"

var (
	ErrInvalidYear       = errors.New("reportcache: year must be positive")
	ErrNoTierConfigured  = errors.New("reportcache: at least one cache tier is required")
	ErrAllTiersFailed    = errors.New("reportcache: write failed on every tier")
	ErrInvalidPeriodType = errors.New("reportcache: invalid period type")
)
