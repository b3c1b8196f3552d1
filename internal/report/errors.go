package report

import "errors"

var (
	ErrInvalidPeriodType = errors.New("period type must be weekly, monthly or yearly")
	ErrInvalidYear       = errors.New("year must be a positive number")
	ErrInvalidDays       = errors.New("days must be greater than 0")
	ErrBuildFailed       = errors.New("report generation failed")
	ErrInvalidateFailed  = errors.New("failed to invalidate report cache")
	ErrListFailed        = errors.New("failed to list reports")
)
