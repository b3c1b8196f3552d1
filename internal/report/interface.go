package report

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GetOrBuild serves a cached report when it is still valid and builds one otherwise.
	GetOrBuild(ctx context.Context, input GetOrBuildInput) (GetOrBuildOutput, error)
	ListReports(ctx context.Context) ([]ReportFile, error)
	ListRecent(ctx context.Context, limit int64) ([]string, error)
	CleanupOldReports(ctx context.Context, days int) (int, error)
	CleanupExpired(ctx context.Context) (int, error)
	InvalidateAll(ctx context.Context) (int, error)
}

// Builder renders a report to a local file and returns its path.
type Builder interface {
	Build(ctx context.Context, input BuildInput) (string, error)
}

// Producer publishes report lifecycle events.
type Producer interface {
	PublishReportGenerated(ctx context.Context, event GeneratedEvent) error
}
