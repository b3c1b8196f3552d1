package consumer

import (
	"context"
	"database/sql"

	"donation-report-srv/config"
	pkgKafka "donation-report-srv/pkg/kafka"
	"donation-report-srv/pkg/log"
	"donation-report-srv/pkg/redis"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l      log.Logger
	config *config.Config

	// Infrastructure clients
	redisClient   redis.IRedis
	postgresDB    *sql.DB
	kafkaProducer pkgKafka.IProducer
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Infrastructure clients
	RedisClient   redis.IRedis // optional
	PostgresDB    *sql.DB
	KafkaProducer pkgKafka.IProducer // optional, no generated events when nil
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		srv.stopConsumers(ctx, consumers)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
