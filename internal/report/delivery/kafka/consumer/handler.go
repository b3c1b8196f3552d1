package consumer

import (
	"github.com/IBM/sarama"
)

type reportRequestHandler struct {
	consumer *Consumer
}

func (h *reportRequestHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *reportRequestHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim stops at the first message that fails to build. The message stays
// unmarked and returning the error ends the session, so the group rejoins and
// resumes from the last committed offset.
func (h *reportRequestHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()
	for msg := range claim.Messages() {
		if err := h.consumer.handleReportRequestMessage(ctx, msg); err != nil {
			h.consumer.l.Errorf(ctx, "report.delivery.kafka.consumer.ConsumeClaim: failed to process report request at offset %d: %v", msg.Offset, err)
			return err
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
