package job

import (
	"context"
	"fmt"
)

// Start registers the cleanup job and starts the scheduler in the background.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.schedule, func() { s.RunCleanup(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule report cleanup %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.l.Infof(ctx, "Report cleanup scheduled: %s (retention %d days)", s.schedule, s.retentionDays)
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunCleanup removes expired rolling reports and every report older than the
// retention window. Errors are logged.
func (s *Scheduler) RunCleanup(ctx context.Context) {
	expired, err := s.uc.CleanupExpired(ctx)
	if err != nil {
		s.l.Warnf(ctx, "report.delivery.job.RunCleanup: CleanupExpired failed: %v", err)
	}

	old, err := s.uc.CleanupOldReports(ctx, s.retentionDays)
	if err != nil {
		s.l.Errorf(ctx, "report.delivery.job.RunCleanup: CleanupOldReports failed: %v", err)
		return
	}

	if expired+old > 0 {
		s.l.Infof(ctx, "Report cleanup removed %d expired and %d old files", expired, old)
	}
}
