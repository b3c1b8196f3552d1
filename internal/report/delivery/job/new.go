package job

import (
	"errors"

	"donation-report-srv/internal/report"
	"donation-report-srv/pkg/log"

	"github.com/robfig/cron/v3"
)

var (
	ErrLoggerRequired   = errors.New("logger is required")
	ErrUseCaseRequired  = errors.New("usecase is required")
	ErrScheduleRequired = errors.New("cleanup schedule is required")
)

// Config holds the configuration for the report maintenance jobs
type Config struct {
	Logger        log.Logger
	UseCase       report.UseCase
	Schedule      string
	RetentionDays int
}

// Scheduler runs periodic report cleanup.
type Scheduler struct {
	l             log.Logger
	uc            report.UseCase
	schedule      string
	retentionDays int
	cron          *cron.Cron
}

// New creates a Scheduler. A non-positive retention falls back to the default.
func New(cfg Config) (*Scheduler, error) {
	if cfg.Logger == nil {
		return nil, ErrLoggerRequired
	}
	if cfg.UseCase == nil {
		return nil, ErrUseCaseRequired
	}
	if cfg.Schedule == "" {
		return nil, ErrScheduleRequired
	}
	days := cfg.RetentionDays
	if days <= 0 {
		days = report.DefaultRetentionDays
	}
	return &Scheduler{
		l:             cfg.Logger,
		uc:            cfg.UseCase,
		schedule:      cfg.Schedule,
		retentionDays: days,
		cron:          cron.New(),
	}, nil
}
