package repository

import "errors"

var (
	ErrArtifactNotFound = errors.New("repository: artifact file not found")
	ErrUploadFailed     = errors.New("repository: artifact upload failed")
	ErrPresignFailed    = errors.New("repository: failed to presign artifact url")
)
