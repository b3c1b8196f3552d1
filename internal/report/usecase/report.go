package usecase

import (
	"context"

	"donation-report-srv/internal/model"
	"donation-report-srv/internal/report"
	"donation-report-srv/internal/reportcache"
)

// GetOrBuild returns the location of a report for the requested period.
// Flow: validate → cleanup → window → fingerprint → key → evaluate → build once per key.
func (uc *implUseCase) GetOrBuild(ctx context.Context, input report.GetOrBuildInput) (report.GetOrBuildOutput, error) {
	if !input.PeriodType.Valid() {
		return report.GetOrBuildOutput{}, report.ErrInvalidPeriodType
	}

	req := model.ReportRequest{
		PeriodType:      input.PeriodType,
		Year:            uc.resolveYear(input),
		ForceRegenerate: input.ForceRegenerate,
	}
	if req.Year != nil && *req.Year <= 0 {
		return report.GetOrBuildOutput{}, report.ErrInvalidYear
	}

	if _, err := uc.CleanupExpired(ctx); err != nil {
		uc.l.Warnf(ctx, "report.usecase.GetOrBuild: CleanupExpired failed: %v", err)
	}

	window, err := reportcache.ComputeDateRange(req.PeriodType, req.Year, uc.clock.Now())
	if err != nil {
		return report.GetOrBuildOutput{}, report.ErrInvalidYear
	}

	fp := uc.fingerprinter.Compute(ctx, window)
	key := reportcache.DeriveKey(req, window, uc.config.EngineVersion)

	if !req.ForceRegenerate {
		d := uc.evaluator.Evaluate(ctx, key, fp, req.PeriodType)
		if d.Hit {
			return report.GetOrBuildOutput{
				Location:    d.Location,
				CacheHit:    true,
				CacheKey:    key,
				Fingerprint: fp,
			}, nil
		}
	} else {
		uc.l.Infof(ctx, "report.usecase.GetOrBuild: forced regeneration of %s %s", req.PeriodType, key)
	}

	// The build outlives the caller's context so a dropped client cannot abort
	// a build other callers are waiting on.
	buildCtx := context.WithoutCancel(ctx)
	v, err, shared := uc.builds.Do(string(key), func() (interface{}, error) {
		return uc.build(buildCtx, req, window, key, fp)
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.GetOrBuild: build %s failed: %v", key, err)
		return report.GetOrBuildOutput{}, err
	}
	if shared {
		uc.l.Infof(ctx, "report.usecase.GetOrBuild: joined in-flight build of %s", key)
	}

	return report.GetOrBuildOutput{
		Location:    v.(string),
		CacheKey:    key,
		Fingerprint: fp,
	}, nil
}

// resolveYear pins yearly requests to a concrete year and drops the year otherwise.
func (uc *implUseCase) resolveYear(input report.GetOrBuildInput) *int {
	if input.PeriodType != model.PeriodYearly {
		return nil
	}
	if input.Year != nil {
		y := *input.Year
		return &y
	}
	y := uc.clock.Now().Year()
	return &y
}
