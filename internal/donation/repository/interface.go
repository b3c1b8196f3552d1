package repository

import (
	"context"

	"donation-report-srv/internal/model"
)

// FingerprintRepository reads the aggregates a data fingerprint is built from.
type FingerprintRepository interface {
	// FingerprintInputs scans payment_date in [Start, ScanEnd]. MaxModified is read for
	// payment_date >= Start and is empty when the table has no modification column.
	FingerprintInputs(ctx context.Context, opts FingerprintOptions) (model.FingerprintInputs, error)
	// ModificationColumn returns the preferred row timestamp column, or "" when none exists.
	ModificationColumn(ctx context.Context) (string, error)
}

// ReportDataRepository reads the sections of a donation report.
type ReportDataRepository interface {
	Summary(ctx context.Context, opts RangeOptions) (model.SummaryRow, error)
	TopDonors(ctx context.Context, opts TopOptions) ([]model.DonorRow, error)
	TopSchools(ctx context.Context, opts TopOptions) ([]model.SchoolRow, error)
	TopCampaigns(ctx context.Context, opts TopOptions) ([]model.CampaignRow, error)
	StatusSummary(ctx context.Context, opts RangeOptions) (model.StatusSummary, error)
	MonthlyBreakdown(ctx context.Context, year int) ([]model.MonthlyRow, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	FingerprintRepository
	ReportDataRepository
}
