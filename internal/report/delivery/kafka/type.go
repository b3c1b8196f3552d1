package kafka

import (
	"time"
)

// ReportRequestMessage asks the service to make sure a report exists.
type ReportRequestMessage struct {
	PeriodType      string `json:"period_type"`
	Year            *int   `json:"year,omitempty"`
	ForceRegenerate bool   `json:"force_regenerate"`
	RequestedBy     string `json:"requested_by,omitempty"`
}

// ReportGeneratedMessage is published after a report is built and cached.
type ReportGeneratedMessage struct {
	CacheKey    string    `json:"cache_key"`
	PeriodType  string    `json:"period_type"`
	Year        *int      `json:"year,omitempty"`
	Location    string    `json:"location"`
	Fingerprint string    `json:"fingerprint"`
	GeneratedAt time.Time `json:"generated_at"`
}
