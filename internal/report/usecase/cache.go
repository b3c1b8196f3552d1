package usecase

import (
	"context"
	"fmt"

	"donation-report-srv/internal/report"
)

// ListRecent returns up to limit recently built report ids, newest first.
func (uc *implUseCase) ListRecent(ctx context.Context, limit int64) ([]string, error) {
	if limit <= 0 || limit > report.DefaultRecentLimit {
		limit = report.DefaultRecentLimit
	}
	ids, err := uc.store.Recent(ctx, limit)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ListRecent: %v", err)
		return nil, report.ErrListFailed
	}
	return ids, nil
}

// InvalidateAll drops every cache entry on both tiers. Artifacts stay on disk.
func (uc *implUseCase) InvalidateAll(ctx context.Context) (int, error) {
	n, err := uc.store.Clear(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.InvalidateAll: cleared %d entries before failing: %v", n, err)
		return n, fmt.Errorf("%w: %w", report.ErrInvalidateFailed, err)
	}
	uc.l.Infof(ctx, "report.usecase.InvalidateAll: cleared %d cache entries", n)
	return n, nil
}
