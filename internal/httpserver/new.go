package httpserver

import (
	"database/sql"
	"errors"

	"donation-report-srv/config"
	"donation-report-srv/internal/report"
	"donation-report-srv/pkg/discord"
	"donation-report-srv/pkg/log"
	pkgRedis "donation-report-srv/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Report Configuration
	config   *config.Config
	producer report.Producer

	// Monitoring & Notification Configuration
	registry *prometheus.Registry
	discord  discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis // optional, the file tier is used alone when nil

	// Report Configuration
	Config   *config.Config
	Producer report.Producer // optional

	// Monitoring & Notification Configuration
	Registry *prometheus.Registry
	Discord  discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Report Configuration
		config:   cfg.Config,
		producer: cfg.Producer,

		// Monitoring & Notification Configuration
		registry: registry,
		discord:  cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	// Report Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}

	return nil
}
