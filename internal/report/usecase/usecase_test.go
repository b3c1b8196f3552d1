package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	donationRepo "donation-report-srv/internal/donation/repository"
	"donation-report-srv/internal/model"
	"donation-report-srv/internal/report"
	"donation-report-srv/internal/report/repository"
	"donation-report-srv/internal/reportcache"
	"donation-report-srv/internal/reportcache/repository/file"
	"donation-report-srv/pkg/log"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeData struct {
	err          error
	monthlyYears []int
	mu           sync.Mutex
}

func (f *fakeData) Summary(ctx context.Context, opts donationRepo.RangeOptions) (model.SummaryRow, error) {
	return model.SummaryRow{TotalTransactions: 1, TotalAmount: decimal.NewFromInt(100)}, f.err
}

func (f *fakeData) TopDonors(ctx context.Context, opts donationRepo.TopOptions) ([]model.DonorRow, error) {
	return []model.DonorRow{{DonorName: "Jane", NumberOfDonations: 1}}, nil
}

func (f *fakeData) TopSchools(ctx context.Context, opts donationRepo.TopOptions) ([]model.SchoolRow, error) {
	return nil, nil
}

func (f *fakeData) TopCampaigns(ctx context.Context, opts donationRepo.TopOptions) ([]model.CampaignRow, error) {
	return nil, nil
}

func (f *fakeData) StatusSummary(ctx context.Context, opts donationRepo.RangeOptions) (model.StatusSummary, error) {
	return model.StatusSummary{SuccessCount: 1}, nil
}

func (f *fakeData) MonthlyBreakdown(ctx context.Context, year int) ([]model.MonthlyRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.monthlyYears = append(f.monthlyYears, year)
	return nil, nil
}

type fakeFingerprinter struct {
	mu sync.Mutex
	fp model.DataFingerprint
}

func (f *fakeFingerprinter) Compute(ctx context.Context, r model.DateRange) model.DataFingerprint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fp
}

func (f *fakeFingerprinter) set(fp model.DataFingerprint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fp = fp
}

type fakeBuilder struct {
	dir     string
	calls   atomic.Int32
	release chan struct{}
	err     error
	ctxErr  error
	inputs  []report.BuildInput
	mu      sync.Mutex
}

func (b *fakeBuilder) Build(ctx context.Context, input report.BuildInput) (string, error) {
	n := b.calls.Add(1)
	if b.release != nil {
		<-b.release
	}
	b.mu.Lock()
	b.ctxErr = ctx.Err()
	b.inputs = append(b.inputs, input)
	b.mu.Unlock()
	if b.err != nil {
		return "", b.err
	}
	p := filepath.Join(b.dir, fmt.Sprintf("donation_report_%s_current_%d.pdf", input.PeriodType, n))
	if err := os.WriteFile(p, []byte("%PDF"), 0o644); err != nil {
		return "", err
	}
	return p, nil
}

type fakeArtifacts struct {
	url string
	err error
}

func (a *fakeArtifacts) Upload(ctx context.Context, localPath string) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	return a.url + "/" + filepath.Base(localPath), nil
}

type fakeProducer struct {
	mu     sync.Mutex
	events []report.GeneratedEvent
}

func (p *fakeProducer) PublishReportGenerated(ctx context.Context, event report.GeneratedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

type missingEvaluator struct {
	wg *sync.WaitGroup
}

func (e missingEvaluator) Evaluate(ctx context.Context, key model.CacheKey, fp model.DataFingerprint, period model.PeriodType) reportcache.Decision {
	if e.wg != nil {
		e.wg.Done()
	}
	return reportcache.Decision{Reason: reportcache.ReasonNotFound}
}

type fixture struct {
	uc       report.UseCase
	data     *fakeData
	fp       *fakeFingerprinter
	builder  *fakeBuilder
	producer *fakeProducer
	store    reportcache.Store
	clock    *clockwork.FakeClock
	dir      string
}

type fixtureOpts struct {
	artifacts *fakeArtifacts
	evaluator reportcache.Evaluator
	release   chan struct{}
}

var testNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func newFixture(t *testing.T, opts fixtureOpts) *fixture {
	t.Helper()
	l := log.NewNop()
	clock := clockwork.NewFakeClockAt(testNow)
	dir := t.TempDir()

	tier, err := file.New(filepath.Join(dir, "cache"), clock, l)
	require.NoError(t, err)
	store, err := reportcache.NewStore(nil, tier, l)
	require.NoError(t, err)

	evaluator := opts.evaluator
	if evaluator == nil {
		evaluator = reportcache.NewEvaluator(store, clock, "", nil, l)
	}

	f := &fixture{
		data:     &fakeData{},
		fp:       &fakeFingerprinter{fp: "aaaaaaaaaaaaaaaa"},
		builder:  &fakeBuilder{dir: dir, release: opts.release},
		producer: &fakeProducer{},
		store:    store,
		clock:    clock,
		dir:      dir,
	}

	var artifacts repository.ArtifactRepository
	if opts.artifacts != nil {
		artifacts = opts.artifacts
	}

	f.uc = New(l, f.data, f.fp, evaluator, store, f.builder, artifacts, f.producer, clock, Config{OutputDir: dir})
	return f
}

func TestGetOrBuild_Validation(t *testing.T) {
	f := newFixture(t, fixtureOpts{})
	ctx := context.Background()

	_, err := f.uc.GetOrBuild(ctx, report.GetOrBuildInput{PeriodType: "daily"})
	assert.ErrorIs(t, err, report.ErrInvalidPeriodType)

	zero := 0
	_, err = f.uc.GetOrBuild(ctx, report.GetOrBuildInput{PeriodType: model.PeriodYearly, Year: &zero})
	assert.ErrorIs(t, err, report.ErrInvalidYear)

	assert.Zero(t, f.builder.calls.Load())
}

func TestGetOrBuild_CacheLifecycle(t *testing.T) {
	ctx := context.Background()
	in := report.GetOrBuildInput{PeriodType: model.PeriodWeekly}

	t.Run("miss builds then hit serves", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})

		first, err := f.uc.GetOrBuild(ctx, in)
		require.NoError(t, err)
		assert.False(t, first.CacheHit)
		assert.FileExists(t, first.Location)

		second, err := f.uc.GetOrBuild(ctx, in)
		require.NoError(t, err)
		assert.True(t, second.CacheHit)
		assert.Equal(t, first.Location, second.Location)
		assert.Equal(t, first.CacheKey, second.CacheKey)
		assert.Equal(t, int32(1), f.builder.calls.Load())
	})

	t.Run("force bypasses a valid entry", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})

		_, err := f.uc.GetOrBuild(ctx, in)
		require.NoError(t, err)

		forced, err := f.uc.GetOrBuild(ctx, report.GetOrBuildInput{PeriodType: model.PeriodWeekly, ForceRegenerate: true})
		require.NoError(t, err)
		assert.False(t, forced.CacheHit)
		assert.Equal(t, int32(2), f.builder.calls.Load())
	})

	t.Run("data change rebuilds", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})

		first, err := f.uc.GetOrBuild(ctx, in)
		require.NoError(t, err)

		f.fp.set("bbbbbbbbbbbbbbbb")
		second, err := f.uc.GetOrBuild(ctx, in)
		require.NoError(t, err)
		assert.False(t, second.CacheHit)
		assert.NotEqual(t, first.Location, second.Location)
		assert.Equal(t, model.DataFingerprint("bbbbbbbbbbbbbbbb"), second.Fingerprint)
	})

	t.Run("monthly entry expires after seven days", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		monthly := report.GetOrBuildInput{PeriodType: model.PeriodMonthly}

		first, err := f.uc.GetOrBuild(ctx, monthly)
		require.NoError(t, err)

		f.clock.Advance(6 * 24 * time.Hour)
		hit, err := f.uc.GetOrBuild(ctx, monthly)
		require.NoError(t, err)
		assert.True(t, hit.CacheHit)

		f.clock.Advance(24 * time.Hour)
		again, err := f.uc.GetOrBuild(ctx, monthly)
		require.NoError(t, err)
		assert.False(t, again.CacheHit)
		assert.Equal(t, first.CacheKey, again.CacheKey)
		assert.Equal(t, int32(2), f.builder.calls.Load())
	})

	t.Run("cached entry is recorded with version and ttl", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})

		out, err := f.uc.GetOrBuild(ctx, in)
		require.NoError(t, err)

		entry, _, err := f.store.Get(ctx, out.CacheKey)
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, reportcache.EngineVersion, entry.Version)
		assert.Equal(t, out.Location, entry.ArtifactLocation)
		assert.Equal(t, "2024-03-04 00:00:00", entry.StartDate)
		assert.Nil(t, entry.Year)
	})
}

func TestGetOrBuild_Yearly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOpts{})

	out, err := f.uc.GetOrBuild(ctx, report.GetOrBuildInput{PeriodType: model.PeriodYearly})
	require.NoError(t, err)
	assert.False(t, out.CacheHit)

	y := 2024
	explicit, err := f.uc.GetOrBuild(ctx, report.GetOrBuildInput{PeriodType: model.PeriodYearly, Year: &y})
	require.NoError(t, err)
	assert.True(t, explicit.CacheHit)
	assert.Equal(t, out.CacheKey, explicit.CacheKey)

	assert.Equal(t, []int{2024}, f.data.monthlyYears)
	require.Len(t, f.builder.inputs, 1)
	require.NotNil(t, f.builder.inputs[0].Year)
	assert.Equal(t, 2024, *f.builder.inputs[0].Year)
}

func TestGetOrBuild_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("query error is a build failure", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.data.err = errors.New("relation does not exist")

		_, err := f.uc.GetOrBuild(ctx, report.GetOrBuildInput{PeriodType: model.PeriodMonthly})
		assert.ErrorIs(t, err, report.ErrBuildFailed)
		assert.Zero(t, f.builder.calls.Load())
	})

	t.Run("builder error is a build failure", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.builder.err = errors.New("disk full")

		_, err := f.uc.GetOrBuild(ctx, report.GetOrBuildInput{PeriodType: model.PeriodMonthly})
		assert.ErrorIs(t, err, report.ErrBuildFailed)
		assert.Empty(t, f.producer.events)
	})
}

func TestGetOrBuild_Artifacts(t *testing.T) {
	ctx := context.Background()

	t.Run("upload replaces the location", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{artifacts: &fakeArtifacts{url: "https://cdn.example.com/reports"}})

		out, err := f.uc.GetOrBuild(ctx, report.GetOrBuildInput{PeriodType: model.PeriodWeekly})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/reports/donation_report_weekly_current_1.pdf", out.Location)

		hit, err := f.uc.GetOrBuild(ctx, report.GetOrBuildInput{PeriodType: model.PeriodWeekly})
		require.NoError(t, err)
		assert.True(t, hit.CacheHit)
		assert.Equal(t, out.Location, hit.Location)
	})

	t.Run("upload failure keeps the local path", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{artifacts: &fakeArtifacts{err: errors.New("bucket missing")}})

		out, err := f.uc.GetOrBuild(ctx, report.GetOrBuildInput{PeriodType: model.PeriodWeekly})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(f.dir, "donation_report_weekly_current_1.pdf"), out.Location)
	})

	t.Run("fresh builds publish an event", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})

		out, err := f.uc.GetOrBuild(ctx, report.GetOrBuildInput{PeriodType: model.PeriodWeekly})
		require.NoError(t, err)
		_, err = f.uc.GetOrBuild(ctx, report.GetOrBuildInput{PeriodType: model.PeriodWeekly})
		require.NoError(t, err)

		require.Len(t, f.producer.events, 1)
		ev := f.producer.events[0]
		assert.Equal(t, out.CacheKey, ev.CacheKey)
		assert.Equal(t, out.Location, ev.Location)
		assert.Equal(t, model.PeriodWeekly, ev.PeriodType)
		assert.True(t, testNow.Equal(ev.GeneratedAt))
	})
}

func TestGetOrBuild_SingleFlight(t *testing.T) {
	const callers = 8

	var entered sync.WaitGroup
	entered.Add(callers)
	release := make(chan struct{})
	f := newFixture(t, fixtureOpts{evaluator: missingEvaluator{wg: &entered}, release: release})

	var (
		wg      sync.WaitGroup
		outs    [callers]report.GetOrBuildOutput
		errs    [callers]error
		ctx, cc = context.WithCancel(context.Background())
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outs[i], errs[i] = f.uc.GetOrBuild(ctx, report.GetOrBuildInput{PeriodType: model.PeriodMonthly})
		}(i)
	}

	entered.Wait()
	time.Sleep(50 * time.Millisecond)
	cc()
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), f.builder.calls.Load())
	assert.NoError(t, f.builder.ctxErr)
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, outs[0].Location, outs[i].Location)
	}
}

func TestListAndCleanup(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOpts{})

	touch := func(name string, age time.Duration) string {
		p := filepath.Join(f.dir, name)
		require.NoError(t, os.WriteFile(p, make([]byte, 2048), 0o644))
		mt := testNow.Add(-age)
		require.NoError(t, os.Chtimes(p, mt, mt))
		return p
	}

	weeklyOld := touch("donation_report_weekly_current_20240301_000000.pdf", 8*24*time.Hour)
	monthlyNew := touch("donation_report_monthly_current_20240314_000000.pdf", 24*time.Hour)
	yearlyOld := touch("donation_report_yearly_2023_20240101_000000.pdf", 40*24*time.Hour)
	yearlyMid := touch("donation_report_yearly_2022_20240301_000000.pdf", 10*24*time.Hour)
	other := touch("notes.pdf", 90*24*time.Hour)

	t.Run("list is newest first", func(t *testing.T) {
		files, err := f.uc.ListReports(ctx)
		require.NoError(t, err)
		require.Len(t, files, 4)
		assert.Equal(t, monthlyNew, files[0].Path)
		assert.Equal(t, yearlyOld, files[3].Path)
		assert.Equal(t, "donation_report_monthly_current_20240314_000000.pdf", files[0].Filename)
	})

	t.Run("expired cleanup only touches weekly and monthly", func(t *testing.T) {
		n, err := f.uc.CleanupExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.NoFileExists(t, weeklyOld)
		assert.FileExists(t, monthlyNew)
		assert.FileExists(t, yearlyOld)
	})

	t.Run("retention cleanup", func(t *testing.T) {
		_, err := f.uc.CleanupOldReports(ctx, 0)
		assert.ErrorIs(t, err, report.ErrInvalidDays)

		n, err := f.uc.CleanupOldReports(ctx, 30)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.NoFileExists(t, yearlyOld)
		assert.FileExists(t, yearlyMid)
		assert.FileExists(t, other)
	})
}

func TestRecentAndInvalidate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixtureOpts{})

	out, err := f.uc.GetOrBuild(ctx, report.GetOrBuildInput{PeriodType: model.PeriodWeekly})
	require.NoError(t, err)

	ids, err := f.uc.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, ids)

	n, err := f.uc.InvalidateAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	entry, _, err := f.store.Get(ctx, out.CacheKey)
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.FileExists(t, out.Location)
}
