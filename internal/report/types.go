package report

import (
	"time"

	"donation-report-srv/internal/model"
)

const (
	// DefaultRecentLimit matches the length of the recent report list.
	DefaultRecentLimit = 100
	// DefaultRetentionDays is used by the scheduled and manual cleanup.
	DefaultRetentionDays = 30
	// ExpiredAfter is how long weekly and monthly PDFs are kept on disk.
	ExpiredAfter = 7 * 24 * time.Hour

	FilePrefix    = "donation_report_"
	FileExtension = ".pdf"
	ContentType   = "application/pdf"
)

type GetOrBuildInput struct {
	PeriodType      model.PeriodType
	Year            *int
	ForceRegenerate bool
}

type GetOrBuildOutput struct {
	Location    string
	CacheHit    bool
	CacheKey    model.CacheKey
	Fingerprint model.DataFingerprint
}

// ReportFile is a generated PDF found in the output directory.
type ReportFile struct {
	Filename  string
	Path      string
	SizeMB    float64
	CreatedAt time.Time
}

type BuildInput struct {
	PeriodType model.PeriodType
	Year       *int
	Start      time.Time
	End        time.Time
	Data       model.ReportData
}

// GeneratedEvent is emitted after every fresh build.
type GeneratedEvent struct {
	CacheKey    model.CacheKey
	PeriodType  model.PeriodType
	Year        *int
	Location    string
	Fingerprint model.DataFingerprint
	GeneratedAt time.Time
}
