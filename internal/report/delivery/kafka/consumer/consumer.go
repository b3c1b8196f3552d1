package consumer

import (
	"context"

	kafkaDelivery "donation-report-srv/internal/report/delivery/kafka"
)

// ConsumeReportRequests starts consuming report request messages. It returns
// once the group is running; consumption stops when ctx is cancelled.
func (c *Consumer) ConsumeReportRequests(ctx context.Context) error {
	group, err := c.createConsumerGroup(c.kafkaConfig.GroupID + kafkaDelivery.ConsumerGroupSuffixReportRequests)
	if err != nil {
		return err
	}
	c.requestGroup = group

	handler := &reportRequestHandler{consumer: c}
	topics := []string{c.kafkaConfig.RequestTopic}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, topics, handler); err != nil {
					c.l.Errorf(ctx, "report.delivery.kafka.consumer.ConsumeReportRequests: consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "report.delivery.kafka.consumer.ConsumeReportRequests: consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", c.kafkaConfig.RequestTopic)
	return nil
}
