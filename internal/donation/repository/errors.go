package repository

import "errors"

var (
	ErrQueryFailed   = errors.New("repository: donation query failed")
	ErrInvalidLimit  = errors.New("repository: limit must be greater than 0")
	ErrInvalidWindow = errors.New("repository: start and end are required")
)
