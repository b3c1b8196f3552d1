package consumer

import (
	"context"
	"path/filepath"
	"testing"

	"donation-report-srv/config"
	"donation-report-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Cache:  config.CacheConfig{Dir: filepath.Join(dir, "cache"), EngineVersion: "11.0.0"},
		Report: config.ReportConfig{OutputDir: filepath.Join(dir, "reports"), TopLimit: 10},
		Kafka: config.KafkaConfig{
			Brokers:      []string{"localhost:9092"},
			RequestTopic: "donation.report.requests",
			EventTopic:   "donation.report.generated",
			GroupID:      "donation-report-srv",
		},
	}
}

func TestNew(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Run("valid", func(t *testing.T) {
		_, err := New(Config{Logger: log.NewNop(), Config: testConfig(t), PostgresDB: db})
		assert.NoError(t, err)
	})

	t.Run("missing brokers", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Kafka.Brokers = nil
		_, err := New(Config{Logger: log.NewNop(), Config: cfg, PostgresDB: db})
		assert.Error(t, err)
	})

	t.Run("missing db", func(t *testing.T) {
		_, err := New(Config{Logger: log.NewNop(), Config: testConfig(t)})
		assert.Error(t, err)
	})
}

func TestSetupDomains(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	srv, err := New(Config{Logger: log.NewNop(), Config: testConfig(t), PostgresDB: db})
	require.NoError(t, err)

	consumers, err := srv.setupDomains(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, consumers.reportConsumer)

	srv.stopConsumers(context.Background(), consumers)
}
