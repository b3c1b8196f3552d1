package http

import (
	"errors"

	"donation-report-srv/internal/report"
	pkgErrors "donation-report-srv/pkg/errors"
)

var (
	errInvalidRequest    = pkgErrors.NewHTTPError(400, "Invalid request body")
	errInvalidPeriodType = pkgErrors.NewHTTPError(400, "Period type must be weekly, monthly or yearly")
	errInvalidYear       = pkgErrors.NewHTTPError(400, "Year must be a positive number")
	errInvalidForce      = pkgErrors.NewHTTPError(400, "force must be true or false")
	errInvalidDays       = pkgErrors.NewHTTPError(400, "days must be a positive number")
	errInvalidLimit      = pkgErrors.NewHTTPError(400, "limit must be a positive number")
	errBuildFailed       = pkgErrors.NewHTTPError(500, "Report generation failed")
	errInvalidateFailed  = pkgErrors.NewHTTPError(500, "Failed to invalidate report cache")
	errListFailed        = pkgErrors.NewHTTPError(500, "Failed to list reports")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrInvalidPeriodType):
		return errInvalidPeriodType
	case errors.Is(err, report.ErrInvalidYear):
		return errInvalidYear
	case errors.Is(err, report.ErrInvalidDays):
		return errInvalidDays
	case errors.Is(err, report.ErrBuildFailed):
		return errBuildFailed
	case errors.Is(err, report.ErrInvalidateFailed):
		return errInvalidateFailed
	case errors.Is(err, report.ErrListFailed):
		return errListFailed
	default:
		panic(err)
	}
}
