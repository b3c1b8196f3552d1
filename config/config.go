package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage providers for generated report artifacts.
const (
	StorageProviderNone  = "none"
	StorageProviderMinIO = "minio"
	StorageProviderS3    = "s3"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - donations_raw source table
	Postgres PostgresConfig

	// Redis - Primary cache tier
	Redis RedisConfig

	// Local cache tier and engine version
	Cache CacheConfig

	// Report generation and retention
	Report ReportConfig

	// Remote artifact storage (optional)
	Storage StorageConfig
	MinIO   MinIOConfig
	S3      S3Config

	// Kafka - Report requests and generated events (optional)
	Kafka KafkaConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Enabled      bool
	Host         string
	Port         int
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// CacheConfig configures the local JSON tier.
type CacheConfig struct {
	Dir           string
	EngineVersion string
}

// ReportConfig configures PDF output and cleanup.
type ReportConfig struct {
	OutputDir            string
	TopLimit             int
	CleanupSchedule      string
	CleanupRetentionDays int
}

// StorageConfig selects where built PDFs are published.
type StorageConfig struct {
	Provider string
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// S3Config is the configuration for AWS S3 or any S3 compatible endpoint.
type S3Config struct {
	Region       string
	Bucket       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Enabled      bool
	Brokers      []string
	RequestTopic string
	EventTopic   string
	GroupID      string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	// Set config file name and paths
	viper.SetConfigName("report-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/donation-report/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Enabled = viper.GetBool("redis.enabled")
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.DialTimeout = viper.GetDuration("redis.dial_timeout")
	cfg.Redis.ReadTimeout = viper.GetDuration("redis.read_timeout")
	cfg.Redis.WriteTimeout = viper.GetDuration("redis.write_timeout")

	// Cache
	cfg.Cache.Dir = viper.GetString("cache.dir")
	cfg.Cache.EngineVersion = viper.GetString("cache.engine_version")

	// Report
	cfg.Report.OutputDir = viper.GetString("report.output_dir")
	cfg.Report.TopLimit = viper.GetInt("report.top_limit")
	cfg.Report.CleanupSchedule = viper.GetString("report.cleanup_schedule")
	cfg.Report.CleanupRetentionDays = viper.GetInt("report.cleanup_retention_days")

	// Storage
	cfg.Storage.Provider = strings.ToLower(viper.GetString("storage.provider"))

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// S3
	cfg.S3.Region = viper.GetString("s3.region")
	cfg.S3.Bucket = viper.GetString("s3.bucket")
	cfg.S3.Endpoint = viper.GetString("s3.endpoint")
	cfg.S3.AccessKey = viper.GetString("s3.access_key")
	cfg.S3.SecretKey = viper.GetString("s3.secret_key")
	cfg.S3.UsePathStyle = viper.GetBool("s3.use_path_style")

	// Kafka
	cfg.Kafka.Enabled = viper.GetBool("kafka.enabled")
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.RequestTopic = viper.GetString("kafka.request_topic")
	cfg.Kafka.EventTopic = viper.GetString("kafka.event_topic")
	cfg.Kafka.GroupID = viper.GetString("kafka.group_id")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("postgres.schema", "public")

	// 2. Redis
	viper.SetDefault("redis.enabled", true)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.dial_timeout", "3s")
	viper.SetDefault("redis.read_timeout", "2s")
	viper.SetDefault("redis.write_timeout", "2s")

	// 3. Cache
	viper.SetDefault("cache.dir", "report_cache")
	viper.SetDefault("cache.engine_version", "11.0.0")

	// 4. Report
	viper.SetDefault("report.output_dir", "reports")
	viper.SetDefault("report.top_limit", 10)
	viper.SetDefault("report.cleanup_schedule", "@every 24h")
	viper.SetDefault("report.cleanup_retention_days", 30)

	// 5. Storage
	viper.SetDefault("storage.provider", StorageProviderNone)

	// 6. MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "donation-reports")

	// 7. S3
	viper.SetDefault("s3.region", "us-east-1")
	viper.SetDefault("s3.bucket", "donation-reports")
	viper.SetDefault("s3.use_path_style", false)

	// 8. Kafka
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.request_topic", "donation.report.requests")
	viper.SetDefault("kafka.event_topic", "donation.report.generated")
	viper.SetDefault("kafka.group_id", "donation-report-srv")
}

func validate(cfg *Config) error {
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Enabled {
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("redis.port is required")
		}
	}

	if cfg.Cache.Dir == "" {
		return fmt.Errorf("cache.dir is required")
	}
	if cfg.Cache.EngineVersion == "" {
		return fmt.Errorf("cache.engine_version is required")
	}
	if cfg.Report.OutputDir == "" {
		return fmt.Errorf("report.output_dir is required")
	}
	if cfg.Report.TopLimit <= 0 {
		return fmt.Errorf("report.top_limit must be greater than 0")
	}
	if cfg.Report.CleanupRetentionDays <= 0 {
		return fmt.Errorf("report.cleanup_retention_days must be greater than 0")
	}

	switch cfg.Storage.Provider {
	case StorageProviderNone, "":
	case StorageProviderMinIO:
		if cfg.MinIO.Endpoint == "" {
			return fmt.Errorf("minio.endpoint is required")
		}
		if cfg.MinIO.AccessKey == "" {
			return fmt.Errorf("minio.access_key is required")
		}
		if cfg.MinIO.SecretKey == "" {
			return fmt.Errorf("minio.secret_key is required")
		}
		if cfg.MinIO.Bucket == "" {
			return fmt.Errorf("minio.bucket is required")
		}
	case StorageProviderS3:
		if cfg.S3.Region == "" {
			return fmt.Errorf("s3.region is required")
		}
		if cfg.S3.Bucket == "" {
			return fmt.Errorf("s3.bucket is required")
		}
	default:
		return fmt.Errorf("storage.provider must be one of none, minio, s3")
	}

	if cfg.Kafka.Enabled {
		if len(cfg.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers is required")
		}
		if cfg.Kafka.RequestTopic == "" {
			return fmt.Errorf("kafka.request_topic is required")
		}
		if cfg.Kafka.EventTopic == "" {
			return fmt.Errorf("kafka.event_topic is required")
		}
		if cfg.Kafka.GroupID == "" {
			return fmt.Errorf("kafka.group_id is required")
		}
	}

	return nil
}
