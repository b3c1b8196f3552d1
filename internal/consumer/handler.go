package consumer

import (
	"context"
	"fmt"

	"donation-report-srv/internal/report"
	reportConsumer "donation-report-srv/internal/report/delivery/kafka/consumer"
	reportProducer "donation-report-srv/internal/report/delivery/kafka/producer"
	"donation-report-srv/internal/report/factory"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	reportConsumer *reportConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	var producer report.Producer
	if srv.kafkaProducer != nil {
		producer = reportProducer.New(srv.l, srv.kafkaProducer)
	}

	domain, err := factory.New(ctx, factory.Deps{
		Logger:   srv.l,
		Config:   srv.config,
		DB:       srv.postgresDB,
		Redis:    srv.redisClient,
		Producer: producer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to setup report domain: %w", err)
	}

	cons, err := reportConsumer.New(reportConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.config.Kafka,
		UseCase:     domain.UseCase,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report consumer: %w", err)
	}

	srv.l.Infof(ctx, "Report domain initialized")

	return &domainConsumers{
		reportConsumer: cons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.reportConsumer.ConsumeReportRequests(ctx); err != nil {
		return fmt.Errorf("failed to start report consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.reportConsumer != nil {
		if err := consumers.reportConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing report consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
