package producer

import (
	"donation-report-srv/internal/report"
	pkgKafka "donation-report-srv/pkg/kafka"
	"donation-report-srv/pkg/log"
)

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a report event producer. The topic is fixed by the IProducer.
func New(l log.Logger, producer pkgKafka.IProducer) report.Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
