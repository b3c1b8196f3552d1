package model

import (
	"strconv"
	"time"
)

// Flat field names shared by the Redis hash and the JSON file tier.
const (
	FieldReportID        = "report_id"
	FieldPeriodType      = "period_type"
	FieldYear            = "year"
	FieldStartDate       = "start_date"
	FieldEndDate         = "end_date"
	FieldGeneratedAt     = "generated_at"
	FieldFilePath        = "file_path"
	FieldDataFingerprint = "data_fingerprint"
	FieldVersion         = "version"
)

// CacheKey is the first 16 hex chars of an md5 digest over the request identity.
type CacheKey string

// StorageKey is the Redis key and file tier name for k.
func (k CacheKey) StorageKey() string {
	return "report:" + string(k)
}

// DataFingerprint summarises the donation rows a report was built from.
type DataFingerprint string

// CacheEntry is the metadata stored for one generated report.
type CacheEntry struct {
	ReportID         CacheKey
	PeriodType       PeriodType
	Year             *int
	StartDate        string
	EndDate          string
	GeneratedAt      time.Time
	ArtifactLocation string
	Fingerprint      DataFingerprint
	Version          string
	TTL              time.Duration
}

// ToFields renders the entry in its wire format. Every value is a string.
func (e CacheEntry) ToFields() map[string]string {
	return map[string]string{
		FieldReportID:        string(e.ReportID),
		FieldPeriodType:      string(e.PeriodType),
		FieldYear:            FormatYear(e.Year),
		FieldStartDate:       e.StartDate,
		FieldEndDate:         e.EndDate,
		FieldGeneratedAt:     e.GeneratedAt.Format(time.RFC3339Nano),
		FieldFilePath:        e.ArtifactLocation,
		FieldDataFingerprint: string(e.Fingerprint),
		FieldVersion:         e.Version,
	}
}

// CacheEntryFromFields parses the wire format. Missing fields become zero values,
// so an entry written without a version never matches the engine version.
// An empty map yields nil.
func CacheEntryFromFields(fields map[string]string) *CacheEntry {
	if len(fields) == 0 {
		return nil
	}
	e := &CacheEntry{
		ReportID:         CacheKey(fields[FieldReportID]),
		PeriodType:       PeriodType(fields[FieldPeriodType]),
		Year:             ParseYear(fields[FieldYear]),
		StartDate:        fields[FieldStartDate],
		EndDate:          fields[FieldEndDate],
		ArtifactLocation: fields[FieldFilePath],
		Fingerprint:      DataFingerprint(fields[FieldDataFingerprint]),
		Version:          fields[FieldVersion],
	}
	if ts, err := parseGeneratedAt(fields[FieldGeneratedAt]); err == nil {
		e.GeneratedAt = ts
	}
	return e
}

// parseGeneratedAt also accepts timezone-less timestamps written by older writers.
func parseGeneratedAt(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05.999999999", s, time.Local)
}

func FormatYear(y *int) string {
	if y == nil {
		return ""
	}
	return strconv.Itoa(*y)
}

func ParseYear(s string) *int {
	if s == "" {
		return nil
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &y
}
