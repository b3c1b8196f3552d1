package main

import (
	"context"
	"fmt"

	"donation-report-srv/config"
	configKafka "donation-report-srv/config/kafka"
	configPostgre "donation-report-srv/config/postgre"
	configRedis "donation-report-srv/config/redis"
	_ "donation-report-srv/docs" // Import swagger docs
	"donation-report-srv/internal/httpserver"
	"donation-report-srv/internal/report"
	reportProducer "donation-report-srv/internal/report/delivery/kafka/producer"
	"donation-report-srv/pkg/discord"
	"donation-report-srv/pkg/log"
	pkgRedis "donation-report-srv/pkg/redis"
)

// @title       Donation Report Service API
// @description Cached donation reports for weekly, monthly and yearly periods.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Discord (optional)
	var discordClient discord.IDiscord
	discordClient, err = discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 5. Initialize Redis (optional primary cache tier)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Warnf(ctx, "Redis unavailable, serving from the file cache tier only: %v", err)
			redisClient = nil
		} else {
			defer configRedis.Disconnect()
			logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
		}
	}

	// 6. Initialize Kafka producer (optional generated events)
	var producer report.Producer
	if cfg.Kafka.Enabled {
		kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Warnf(ctx, "Kafka producer unavailable, generated events disabled: %v", err)
		} else {
			defer configKafka.DisconnectProducer()
			producer = reportProducer.New(logger, kafkaProducer)
			logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.EventTopic)
		}
	}

	// 7. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		// Report Configuration
		Config:   cfg,
		Producer: producer,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
