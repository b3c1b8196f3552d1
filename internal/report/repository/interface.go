package repository

import (
	"context"
)

// ArtifactRepository publishes a locally built report and returns a URL it can be
// downloaded from.
//
//go:generate mockery --name ArtifactRepository
type ArtifactRepository interface {
	Upload(ctx context.Context, localPath string) (string, error)
}
