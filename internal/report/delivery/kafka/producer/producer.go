package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"donation-report-srv/internal/report"
	kafkaDelivery "donation-report-srv/internal/report/delivery/kafka"
)

// PublishReportGenerated publishes a report generated event keyed by cache key.
func (p *implProducer) PublishReportGenerated(ctx context.Context, e report.GeneratedEvent) error {
	msg := kafkaDelivery.ReportGeneratedMessage{
		CacheKey:    string(e.CacheKey),
		PeriodType:  e.PeriodType.String(),
		Year:        e.Year,
		Location:    e.Location,
		Fingerprint: string(e.Fingerprint),
		GeneratedAt: e.GeneratedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal report generated event: %w", err)
	}

	if err := p.producer.Publish([]byte(msg.CacheKey), body); err != nil {
		return fmt.Errorf("failed to publish report generated event: %w", err)
	}

	p.l.Infof(ctx, "Published report generated event for %s report %s", msg.PeriodType, msg.CacheKey)
	return nil
}
