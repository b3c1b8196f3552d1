package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"donation-report-srv/internal/model"
	"donation-report-srv/internal/report"
	kafkaDelivery "donation-report-srv/internal/report/delivery/kafka"
	"donation-report-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKafkaProducer struct {
	key, value []byte
	err        error
}

func (f *fakeKafkaProducer) Publish(key, value []byte) error {
	f.key, f.value = key, value
	return f.err
}

func (f *fakeKafkaProducer) Close() error       { return nil }
func (f *fakeKafkaProducer) HealthCheck() error { return nil }

func TestPublishReportGenerated(t *testing.T) {
	year := 2023
	at := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	event := report.GeneratedEvent{
		CacheKey:    "0123456789abcdef",
		PeriodType:  model.PeriodYearly,
		Year:        &year,
		Location:    "https://cdn.example.com/reports/a.pdf",
		Fingerprint: "fedcba9876543210",
		GeneratedAt: at,
	}

	t.Run("publishes json keyed by cache key", func(t *testing.T) {
		kp := &fakeKafkaProducer{}
		p := New(log.NewNop(), kp)

		require.NoError(t, p.PublishReportGenerated(context.Background(), event))
		assert.Equal(t, "0123456789abcdef", string(kp.key))

		var msg kafkaDelivery.ReportGeneratedMessage
		require.NoError(t, json.Unmarshal(kp.value, &msg))
		assert.Equal(t, "yearly", msg.PeriodType)
		require.NotNil(t, msg.Year)
		assert.Equal(t, 2023, *msg.Year)
		assert.Equal(t, event.Location, msg.Location)
		assert.Equal(t, "fedcba9876543210", msg.Fingerprint)
		assert.True(t, at.Equal(msg.GeneratedAt))
	})

	t.Run("publish error is wrapped", func(t *testing.T) {
		boom := errors.New("broker down")
		p := New(log.NewNop(), &fakeKafkaProducer{err: boom})

		err := p.PublishReportGenerated(context.Background(), event)
		assert.ErrorIs(t, err, boom)
	})
}
