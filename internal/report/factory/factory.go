// Package factory assembles the report usecase from configuration so the API
// server, the consumer and the CLI share one wiring.
package factory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"donation-report-srv/config"
	configMinio "donation-report-srv/config/minio"
	donationPostgre "donation-report-srv/internal/donation/repository/postgre"
	"donation-report-srv/internal/report"
	"donation-report-srv/internal/report/builder"
	"donation-report-srv/internal/report/repository"
	minioRepo "donation-report-srv/internal/report/repository/minio"
	s3Repo "donation-report-srv/internal/report/repository/s3"
	"donation-report-srv/internal/report/usecase"
	"donation-report-srv/internal/reportcache"
	cacheRepo "donation-report-srv/internal/reportcache/repository"
	fileTier "donation-report-srv/internal/reportcache/repository/file"
	redisTier "donation-report-srv/internal/reportcache/repository/redis"
	"donation-report-srv/pkg/log"
	pkgRedis "donation-report-srv/pkg/redis"
	pkgS3 "donation-report-srv/pkg/s3"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ErrConfigRequired   = errors.New("factory: config is required")
	ErrDatabaseRequired = errors.New("factory: postgres db is required")
	ErrUnknownProvider  = errors.New("factory: unknown storage provider")
)

// Deps are the connections the report domain runs on. Redis, Producer, Metrics and
// Clock are optional.
type Deps struct {
	Logger   log.Logger
	Config   *config.Config
	DB       *sql.DB
	Redis    pkgRedis.IRedis
	Producer report.Producer
	Metrics  prometheus.Registerer
	Clock    clockwork.Clock
}

// Domain is the assembled report domain.
type Domain struct {
	UseCase report.UseCase
	Store   reportcache.Store
}

// New wires repositories, cache tiers, builder and optional artifact storage into a UseCase.
func New(ctx context.Context, d Deps) (Domain, error) {
	if d.Config == nil {
		return Domain{}, ErrConfigRequired
	}
	if d.DB == nil {
		return Domain{}, ErrDatabaseRequired
	}
	if d.Clock == nil {
		d.Clock = clockwork.NewRealClock()
	}
	cfg := d.Config

	repo := donationPostgre.New(d.DB, d.Logger)

	store, err := newStore(d)
	if err != nil {
		return Domain{}, err
	}

	b, err := builder.New(cfg.Report.OutputDir, d.Clock, d.Logger)
	if err != nil {
		return Domain{}, fmt.Errorf("factory: builder: %w", err)
	}

	artifacts, err := newArtifactRepository(ctx, cfg, d.Logger)
	if err != nil {
		return Domain{}, err
	}

	fingerprinter := reportcache.NewFingerprinter(repo, d.Clock, d.Logger)
	evaluator := reportcache.NewEvaluator(store, d.Clock, cfg.Cache.EngineVersion, reportcache.NewMetrics(d.Metrics), d.Logger)

	uc := usecase.New(d.Logger, repo, fingerprinter, evaluator, store, b, artifacts, d.Producer, d.Clock, usecase.Config{
		OutputDir:     cfg.Report.OutputDir,
		TopLimit:      cfg.Report.TopLimit,
		EngineVersion: cfg.Cache.EngineVersion,
	})

	return Domain{UseCase: uc, Store: store}, nil
}

func newStore(d Deps) (reportcache.Store, error) {
	secondary, err := fileTier.New(d.Config.Cache.Dir, d.Clock, d.Logger)
	if err != nil {
		return nil, fmt.Errorf("factory: file tier: %w", err)
	}

	var primary cacheRepo.TierRepository
	if d.Redis != nil {
		tier, err := redisTier.New(d.Redis, d.Logger)
		if err != nil {
			return nil, fmt.Errorf("factory: redis tier: %w", err)
		}
		primary = tier
	}

	return reportcache.NewStore(primary, secondary, d.Logger)
}

// newArtifactRepository returns nil when reports stay on local disk.
func newArtifactRepository(ctx context.Context, cfg *config.Config, l log.Logger) (repository.ArtifactRepository, error) {
	switch cfg.Storage.Provider {
	case config.StorageProviderNone, "":
		return nil, nil
	case config.StorageProviderMinIO:
		client, err := configMinio.Connect(ctx, &cfg.MinIO)
		if err != nil {
			return nil, fmt.Errorf("factory: minio: %w", err)
		}
		return minioRepo.New(client, cfg.MinIO.Bucket, l), nil
	case config.StorageProviderS3:
		client, err := pkgS3.New(ctx, cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("factory: s3: %w", err)
		}
		return s3Repo.New(client, l), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Storage.Provider)
	}
}
