package consumer

import (
	"donation-report-srv/internal/model"
	"donation-report-srv/internal/report"
	kafkaDelivery "donation-report-srv/internal/report/delivery/kafka"
)

func toGetOrBuildInput(m kafkaDelivery.ReportRequestMessage) (report.GetOrBuildInput, error) {
	p, err := model.ParsePeriodType(m.PeriodType)
	if err != nil {
		return report.GetOrBuildInput{}, err
	}
	return report.GetOrBuildInput{
		PeriodType:      p,
		Year:            m.Year,
		ForceRegenerate: m.ForceRegenerate,
	}, nil
}
