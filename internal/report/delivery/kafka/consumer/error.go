package consumer

import (
	"errors"
)

var (
	ErrLoggerRequired  = errors.New("logger is required")
	ErrUseCaseRequired = errors.New("usecase is required")
	ErrBrokersRequired = errors.New("kafka brokers are required")
	ErrTopicRequired   = errors.New("kafka request topic is required")
)
