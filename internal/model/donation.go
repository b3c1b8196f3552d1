package model

import "github.com/shopspring/decimal"

// Donor and campaign classifications used by the report builder.
const (
	DonorTypeRecurring = "Recurring"
	DonorTypeOneTime   = "One-time"
)

// SummaryRow aggregates a reporting window.
type SummaryRow struct {
	TotalTransactions      int64
	UniqueDonors           int64
	TotalAmount            decimal.Decimal
	AvgDonation            decimal.Decimal
	MinDonation            decimal.Decimal
	MaxDonation            decimal.Decimal
	SuccessfulTransactions int64
	FailedTransactions     int64
}

type DonorRow struct {
	DonorName         string
	NumberOfDonations int64
	TotalDonated      decimal.Decimal
	AverageDonation   decimal.Decimal
	DonorType         string
}

type SchoolRow struct {
	SchoolName     string
	SchoolLocation string
	DonationCount  int64
	TotalAmount    decimal.Decimal
	UniqueDonors   int64
}

type CampaignRow struct {
	CampaignName  string
	DonationType  string
	DonationCount int64
	TotalAmount   decimal.Decimal
	UniqueDonors  int64
}

// StatusSummary splits transactions into successful and everything else.
type StatusSummary struct {
	SuccessCount  int64
	SuccessAmount decimal.Decimal
	FailedCount   int64
	FailedAmount  decimal.Decimal
}

// SuccessRate is a percentage in [0, 100]; zero when there are no transactions.
func (s StatusSummary) SuccessRate() decimal.Decimal {
	total := s.SuccessCount + s.FailedCount
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(s.SuccessCount).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(total))
}

type MonthlyRow struct {
	MonthNumber      int
	MonthName        string
	TransactionCount int64
	TotalAmount      decimal.Decimal
	UniqueDonors     int64
}

// FingerprintInputs are the aggregates hashed into a DataFingerprint.
type FingerprintInputs struct {
	RecordCount    int64
	TotalAmount    decimal.Decimal
	MaxPaymentDate string
	SuccessCount   int64
	UniqueDonors   int64
	MaxModified    string
}

// ReportData is everything the PDF builder renders. Monthly is only filled for yearly reports.
type ReportData struct {
	Summary   SummaryRow
	Donors    []DonorRow
	Schools   []SchoolRow
	Campaigns []CampaignRow
	Status    StatusSummary
	Monthly   []MonthlyRow
}
