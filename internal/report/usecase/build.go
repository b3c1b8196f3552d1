package usecase

import (
	"context"
	"fmt"

	donationRepo "donation-report-srv/internal/donation/repository"
	"donation-report-srv/internal/model"
	"donation-report-srv/internal/report"
	"donation-report-srv/internal/reportcache"

	"golang.org/x/sync/errgroup"
)

// build gathers data, renders the PDF, publishes it and records the cache entry.
// It returns the artifact location.
func (uc *implUseCase) build(ctx context.Context, req model.ReportRequest, window model.DateRange, key model.CacheKey, fp model.DataFingerprint) (string, error) {
	uc.l.Infof(ctx, "report.usecase.build: building %s report %s for %s to %s",
		req.PeriodType, key, window.StartString(), window.EndString())

	data, err := uc.gather(ctx, req, window)
	if err != nil {
		return "", fmt.Errorf("%w: %w", report.ErrBuildFailed, err)
	}

	path, err := uc.builder.Build(ctx, report.BuildInput{
		PeriodType: req.PeriodType,
		Year:       req.Year,
		Start:      window.Start,
		End:        window.End,
		Data:       data,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", report.ErrBuildFailed, err)
	}

	location := path
	if uc.artifacts != nil {
		url, err := uc.artifacts.Upload(ctx, path)
		if err != nil {
			uc.l.Warnf(ctx, "report.usecase.build: upload of %s failed, serving local file: %v", path, err)
		} else {
			location = url
		}
	}

	generatedAt := uc.clock.Now()
	ttl := reportcache.TTLFor(req.PeriodType)
	entry := model.CacheEntry{
		ReportID:         key,
		PeriodType:       req.PeriodType,
		Year:             req.Year,
		StartDate:        window.StartString(),
		EndDate:          window.EndString(),
		GeneratedAt:      generatedAt,
		ArtifactLocation: location,
		Fingerprint:      fp,
		Version:          uc.config.EngineVersion,
		TTL:              ttl,
	}
	if err := uc.store.Put(ctx, entry, ttl); err != nil {
		uc.l.Errorf(ctx, "report.usecase.build: cache write for %s failed: %v", key, err)
	}

	if uc.producer != nil {
		if err := uc.producer.PublishReportGenerated(ctx, report.GeneratedEvent{
			CacheKey:    key,
			PeriodType:  req.PeriodType,
			Year:        req.Year,
			Location:    location,
			Fingerprint: fp,
			GeneratedAt: generatedAt,
		}); err != nil {
			uc.l.Warnf(ctx, "report.usecase.build: publish event for %s failed: %v", key, err)
		}
	}

	uc.l.Infof(ctx, "report.usecase.build: built %s at %s", key, location)
	return location, nil
}

// gather runs the report queries concurrently. The first failure cancels the rest.
func (uc *implUseCase) gather(ctx context.Context, req model.ReportRequest, window model.DateRange) (model.ReportData, error) {
	var data model.ReportData

	rng := donationRepo.RangeOptions{Start: window.StartString(), End: window.EndString()}
	top := donationRepo.TopOptions{Start: rng.Start, End: rng.End, Limit: uc.config.TopLimit}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.Summary, err = uc.data.Summary(gctx, rng)
		return err
	})
	g.Go(func() (err error) {
		data.Donors, err = uc.data.TopDonors(gctx, top)
		return err
	})
	g.Go(func() (err error) {
		data.Schools, err = uc.data.TopSchools(gctx, top)
		return err
	})
	g.Go(func() (err error) {
		data.Campaigns, err = uc.data.TopCampaigns(gctx, top)
		return err
	})
	g.Go(func() (err error) {
		data.Status, err = uc.data.StatusSummary(gctx, rng)
		return err
	})
	if req.PeriodType == model.PeriodYearly && req.Year != nil {
		year := *req.Year
		g.Go(func() (err error) {
			data.Monthly, err = uc.data.MonthlyBreakdown(gctx, year)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return model.ReportData{}, err
	}
	return data, nil
}
