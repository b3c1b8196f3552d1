package usecase

import (
	donationRepo "donation-report-srv/internal/donation/repository"
	"donation-report-srv/internal/report"
	"donation-report-srv/internal/report/repository"
	"donation-report-srv/internal/reportcache"
	"donation-report-srv/pkg/log"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"
)

const (
	defaultTopLimit = 10
)

// Config holds configuration for report generation.
type Config struct {
	OutputDir     string
	TopLimit      int
	EngineVersion string
}

type implUseCase struct {
	l             log.Logger
	data          donationRepo.ReportDataRepository
	fingerprinter reportcache.Fingerprinter
	evaluator     reportcache.Evaluator
	store         reportcache.Store
	builder       report.Builder
	artifacts     repository.ArtifactRepository
	producer      report.Producer
	clock         clockwork.Clock
	config        Config

	builds singleflight.Group
}

// New creates a new report UseCase. artifacts and producer are optional.
func New(
	l log.Logger,
	data donationRepo.ReportDataRepository,
	fingerprinter reportcache.Fingerprinter,
	evaluator reportcache.Evaluator,
	store reportcache.Store,
	builder report.Builder,
	artifacts repository.ArtifactRepository,
	producer report.Producer,
	clock clockwork.Clock,
	cfg Config,
) report.UseCase {
	if cfg.TopLimit <= 0 {
		cfg.TopLimit = defaultTopLimit
	}
	if cfg.EngineVersion == "" {
		cfg.EngineVersion = reportcache.EngineVersion
	}

	return &implUseCase{
		l:             l,
		data:          data,
		fingerprinter: fingerprinter,
		evaluator:     evaluator,
		store:         store,
		builder:       builder,
		artifacts:     artifacts,
		producer:      producer,
		clock:         clock,
		config:        cfg,
	}
}
