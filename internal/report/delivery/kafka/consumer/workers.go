package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"donation-report-srv/internal/report"
	kafkaDelivery "donation-report-srv/internal/report/delivery/kafka"

	"github.com/IBM/sarama"
)

// handleReportRequestMessage decodes a request and hands it to the usecase.
// Malformed requests are skipped.
func (c *Consumer) handleReportRequestMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	c.l.Debugf(ctx, "report.delivery.kafka.consumer.handleReportRequestMessage: partition %d, offset %d",
		msg.Partition, msg.Offset)

	var message kafkaDelivery.ReportRequestMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "report.delivery.kafka.consumer.handleReportRequestMessage: invalid message format (skipping): %v", err)
		return nil
	}

	input, err := toGetOrBuildInput(message)
	if err != nil {
		c.l.Warnf(ctx, "report.delivery.kafka.consumer.handleReportRequestMessage: invalid period type %q (skipping)", message.PeriodType)
		return nil
	}

	o, err := c.uc.GetOrBuild(ctx, input)
	if err != nil {
		if errors.Is(err, report.ErrInvalidPeriodType) || errors.Is(err, report.ErrInvalidYear) {
			c.l.Warnf(ctx, "report.delivery.kafka.consumer.handleReportRequestMessage: rejected request (skipping): %v", err)
			return nil
		}
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "report.delivery.kafka.consumer.handleReportRequestMessage: %s report %s ready (cache_hit=%t, requested_by=%s)",
		input.PeriodType, o.CacheKey, o.CacheHit, message.RequestedBy)
	return nil
}
