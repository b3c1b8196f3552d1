package model

import (
	"errors"
	"strings"
)

// PeriodType is the reporting cadence.
type PeriodType string

const (
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"
	PeriodYearly  PeriodType = "yearly"
)

var ErrInvalidPeriodType = errors.New("model: period type must be weekly, monthly or yearly")

// ParsePeriodType accepts any letter case.
func ParsePeriodType(s string) (PeriodType, error) {
	p := PeriodType(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", ErrInvalidPeriodType
	}
	return p, nil
}

func (p PeriodType) Valid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Rolling reports whether the period is re-generated on a sliding window
// (weekly and monthly) as opposed to a calendar year.
func (p PeriodType) Rolling() bool {
	return p == PeriodWeekly || p == PeriodMonthly
}

func (p PeriodType) String() string {
	return string(p)
}

// ReportRequest identifies one report. Year is only meaningful for yearly reports.
type ReportRequest struct {
	PeriodType      PeriodType
	Year            *int
	ForceRegenerate bool
}

// YearString renders Year, or "" when absent.
func (r ReportRequest) YearString() string {
	return FormatYear(r.Year)
}
