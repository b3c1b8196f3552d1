package model

import "time"

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// DateRange is the reporting window. CacheEnd is the date-only end used in cache keys.
type DateRange struct {
	Start    time.Time
	End      time.Time
	CacheEnd string
}

// StartString is the start date at midnight, which is what queries and keys use.
func (r DateRange) StartString() string {
	return r.Start.Format(DateLayout) + " 00:00:00"
}

func (r DateRange) EndString() string {
	return r.End.Format(DateTimeLayout)
}
