package cli

import (
	"context"
	"fmt"

	"donation-report-srv/config"
	configKafka "donation-report-srv/config/kafka"
	configPostgre "donation-report-srv/config/postgre"
	configRedis "donation-report-srv/config/redis"
	"donation-report-srv/internal/report"
	reportProducer "donation-report-srv/internal/report/delivery/kafka/producer"
	"donation-report-srv/internal/report/factory"
	"donation-report-srv/pkg/log"
	pkgRedis "donation-report-srv/pkg/redis"
)

// openFromConfig connects to the same stores the service uses. Redis and Kafka
// are optional, as they are for the API server.
func openFromConfig(ctx context.Context, verbose bool) (report.UseCase, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{
		Level:    level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	db, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}
	closers = append(closers, func() { _ = configPostgre.Disconnect(ctx, db) })

	var rdb pkgRedis.IRedis
	if cfg.Redis.Enabled {
		if rdb, err = configRedis.Connect(ctx, cfg.Redis); err != nil {
			logger.Warnf(ctx, "Redis unavailable, using the file cache tier only: %v", err)
			rdb = nil
		} else {
			closers = append(closers, func() { _ = configRedis.Disconnect() })
		}
	}

	var producer report.Producer
	if cfg.Kafka.Enabled {
		if kp, err := configKafka.ConnectProducer(cfg.Kafka); err != nil {
			logger.Warnf(ctx, "Kafka producer unavailable, generated events disabled: %v", err)
		} else {
			producer = reportProducer.New(logger, kp)
			closers = append(closers, func() { _ = configKafka.DisconnectProducer() })
		}
	}

	domain, err := factory.New(ctx, factory.Deps{
		Logger:   logger,
		Config:   cfg,
		DB:       db,
		Redis:    rdb,
		Producer: producer,
	})
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	return domain.UseCase, closeAll, nil
}
