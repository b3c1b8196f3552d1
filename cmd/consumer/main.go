package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"donation-report-srv/config"
	"donation-report-srv/config/kafka"
	"donation-report-srv/config/postgre"
	"donation-report-srv/config/redis"
	"donation-report-srv/internal/consumer"
	pkgKafka "donation-report-srv/pkg/kafka"
	"donation-report-srv/pkg/log"
	pkgRedis "donation-report-srv/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Donation Report Consumer Service...")

	if !cfg.Kafka.Enabled {
		logger.Error(ctx, "kafka.enabled is false, nothing to consume")
		return
	}

	// Kafka Producer (for publishing generated events)
	var kafkaProducer pkgKafka.IProducer
	kafkaProducer, err = kafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
		return
	}
	defer kafka.DisconnectProducer()
	logger.Info(ctx, "Kafka producer initialized")

	// Redis (optional)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = redis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Warnf(ctx, "Redis unavailable, using the file cache tier only: %v", err)
			redisClient = nil
		} else {
			defer redis.Disconnect()
			logger.Info(ctx, "Redis client initialized")
		}
	}

	// PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:        logger,
		Config:        cfg,
		RedisClient:   redisClient,
		PostgresDB:    postgresDB,
		KafkaProducer: kafkaProducer,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
