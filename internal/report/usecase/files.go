package usecase

import (
	"context"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"donation-report-srv/internal/model"
	"donation-report-srv/internal/report"
)

// ListReports returns the PDFs in the output directory, newest first.
func (uc *implUseCase) ListReports(ctx context.Context) ([]report.ReportFile, error) {
	infos, err := uc.reportFiles()
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ListReports: %v", err)
		return nil, report.ErrListFailed
	}

	files := make([]report.ReportFile, 0, len(infos))
	for _, f := range infos {
		files = append(files, report.ReportFile{
			Filename:  f.name,
			Path:      f.path,
			SizeMB:    math.Round(float64(f.size)/(1024*1024)*100) / 100,
			CreatedAt: f.modTime,
		})
	}
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].CreatedAt.After(files[j].CreatedAt)
	})
	return files, nil
}

// CleanupOldReports deletes every PDF older than days and returns how many were deleted.
func (uc *implUseCase) CleanupOldReports(ctx context.Context, days int) (int, error) {
	if days <= 0 {
		return 0, report.ErrInvalidDays
	}
	cutoff := uc.clock.Now().Add(-time.Duration(days) * 24 * time.Hour)

	n, err := uc.removeOlder(ctx, cutoff, func(string) bool { return true })
	if err != nil {
		return n, err
	}
	uc.l.Infof(ctx, "report.usecase.CleanupOldReports: removed %d reports older than %d days", n, days)
	return n, nil
}

// CleanupExpired deletes weekly and monthly PDFs older than report.ExpiredAfter.
func (uc *implUseCase) CleanupExpired(ctx context.Context) (int, error) {
	cutoff := uc.clock.Now().Add(-report.ExpiredAfter)
	rolling := func(name string) bool {
		return strings.HasPrefix(name, report.FilePrefix+string(model.PeriodWeekly)+"_") ||
			strings.HasPrefix(name, report.FilePrefix+string(model.PeriodMonthly)+"_")
	}

	n, err := uc.removeOlder(ctx, cutoff, rolling)
	if n > 0 {
		uc.l.Infof(ctx, "report.usecase.CleanupExpired: removed %d expired reports", n)
	}
	return n, err
}

type reportFile struct {
	name    string
	path    string
	size    int64
	modTime time.Time
}

func (uc *implUseCase) reportFiles() ([]reportFile, error) {
	if uc.config.OutputDir == "" {
		return nil, nil
	}
	matches, err := filepath.Glob(filepath.Join(uc.config.OutputDir, report.FilePrefix+"*"+report.FileExtension))
	if err != nil {
		return nil, err
	}

	files := make([]reportFile, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			// Removed between glob and stat.
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		if info.IsDir() {
			continue
		}
		files = append(files, reportFile{name: info.Name(), path: m, size: info.Size(), modTime: info.ModTime()})
	}
	return files, nil
}

func (uc *implUseCase) removeOlder(ctx context.Context, cutoff time.Time, match func(name string) bool) (int, error) {
	files, err := uc.reportFiles()
	if err != nil {
		return 0, err
	}

	var removed int
	for _, f := range files {
		if !match(f.name) || !f.modTime.Before(cutoff) {
			continue
		}
		if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			uc.l.Warnf(ctx, "report.usecase.removeOlder: remove %s failed: %v", f.path, err)
			continue
		}
		removed++
	}
	return removed, nil
}
