package consumer

import (
	"fmt"

	"donation-report-srv/config"
	"donation-report-srv/internal/report"
	pkgKafka "donation-report-srv/pkg/kafka"
	"donation-report-srv/pkg/log"
)

// Config holds the configuration for the report consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     report.UseCase
}

// Consumer manages Kafka consumer groups for the report domain
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          report.UseCase

	newGroup     func(pkgKafka.ConsumerConfig) (pkgKafka.IConsumer, error)
	requestGroup pkgKafka.IConsumer
}

// New creates a new report consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, ErrLoggerRequired
	}
	if cfg.UseCase == nil {
		return nil, ErrUseCaseRequired
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, ErrBrokersRequired
	}
	if cfg.KafkaConfig.RequestTopic == "" {
		return nil, ErrTopicRequired
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
		newGroup:    pkgKafka.NewConsumer,
	}, nil
}

// Close closes all consumer groups
func (c *Consumer) Close() error {
	if c.requestGroup != nil {
		if err := c.requestGroup.Close(); err != nil {
			return fmt.Errorf("failed to close report request group: %w", err)
		}
	}
	return nil
}

func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := c.newGroup(pkgKafka.ConsumerConfig{
		Brokers:  c.kafkaConfig.Brokers,
		GroupID:  groupID,
		ClientID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}
	return group, nil
}
