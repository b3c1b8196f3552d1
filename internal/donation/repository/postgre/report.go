package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"donation-report-srv/internal/donation/repository"
	"donation-report-srv/internal/model"

	"github.com/shopspring/decimal"
)

// Summary - Totals for the window. Amount statistics count successful payments only.
func (r *implRepository) Summary(ctx context.Context, opts repository.RangeOptions) (model.SummaryRow, error) {
	if err := validateRange(opts.Start, opts.End); err != nil {
		return model.SummaryRow{}, err
	}

	var s model.SummaryRow
	err := r.db.QueryRowContext(ctx, summaryQuery, opts.Start, opts.End).Scan(
		&s.TotalTransactions,
		&s.UniqueDonors,
		&s.TotalAmount,
		&s.AvgDonation,
		&s.MinDonation,
		&s.MaxDonation,
		&s.SuccessfulTransactions,
		&s.FailedTransactions,
	)
	if err != nil {
		r.l.Errorf(ctx, "donation.repository.postgre.Summary: %v", err)
		return model.SummaryRow{}, fmt.Errorf("%w: %v", repository.ErrQueryFailed, err)
	}
	return s, nil
}

// TopDonors - Largest successful donors, anonymous when neither name nor email is set.
func (r *implRepository) TopDonors(ctx context.Context, opts repository.TopOptions) ([]model.DonorRow, error) {
	rows, err := r.queryTop(ctx, "TopDonors", topDonorsQuery, opts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.DonorRow
	for rows.Next() {
		var d model.DonorRow
		if err := rows.Scan(&d.DonorName, &d.NumberOfDonations, &d.TotalDonated, &d.AverageDonation, &d.DonorType); err != nil {
			return nil, r.scanErr(ctx, "TopDonors", err)
		}
		out = append(out, d)
	}
	return out, r.rowsErr(ctx, "TopDonors", rows)
}

func (r *implRepository) TopSchools(ctx context.Context, opts repository.TopOptions) ([]model.SchoolRow, error) {
	rows, err := r.queryTop(ctx, "TopSchools", topSchoolsQuery, opts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SchoolRow
	for rows.Next() {
		var s model.SchoolRow
		if err := rows.Scan(&s.SchoolName, &s.SchoolLocation, &s.DonationCount, &s.TotalAmount, &s.UniqueDonors); err != nil {
			return nil, r.scanErr(ctx, "TopSchools", err)
		}
		out = append(out, s)
	}
	return out, r.rowsErr(ctx, "TopSchools", rows)
}

// TopCampaigns - A campaign is Recurring when it has more payments than distinct donors.
func (r *implRepository) TopCampaigns(ctx context.Context, opts repository.TopOptions) ([]model.CampaignRow, error) {
	rows, err := r.queryTop(ctx, "TopCampaigns", topCampaignsQuery, opts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CampaignRow
	for rows.Next() {
		var c model.CampaignRow
		if err := rows.Scan(&c.CampaignName, &c.DonationType, &c.DonationCount, &c.TotalAmount, &c.UniqueDonors); err != nil {
			return nil, r.scanErr(ctx, "TopCampaigns", err)
		}
		out = append(out, c)
	}
	return out, r.rowsErr(ctx, "TopCampaigns", rows)
}

// StatusSummary - Any status containing "success" (any case) counts as successful.
func (r *implRepository) StatusSummary(ctx context.Context, opts repository.RangeOptions) (model.StatusSummary, error) {
	if err := validateRange(opts.Start, opts.End); err != nil {
		return model.StatusSummary{}, err
	}

	rows, err := r.db.QueryContext(ctx, statusSummaryQuery, opts.Start, opts.End)
	if err != nil {
		r.l.Errorf(ctx, "donation.repository.postgre.StatusSummary: %v", err)
		return model.StatusSummary{}, fmt.Errorf("%w: %v", repository.ErrQueryFailed, err)
	}
	defer rows.Close()

	summary := model.StatusSummary{SuccessAmount: decimal.Zero, FailedAmount: decimal.Zero}
	for rows.Next() {
		var (
			status string
			count  int64
			amount decimal.Decimal
		)
		if err := rows.Scan(&status, &count, &amount); err != nil {
			return model.StatusSummary{}, r.scanErr(ctx, "StatusSummary", err)
		}
		if strings.Contains(strings.ToLower(status), "success") {
			summary.SuccessCount += count
			summary.SuccessAmount = summary.SuccessAmount.Add(amount)
		} else {
			summary.FailedCount += count
			summary.FailedAmount = summary.FailedAmount.Add(amount)
		}
	}
	if err := r.rowsErr(ctx, "StatusSummary", rows); err != nil {
		return model.StatusSummary{}, err
	}
	return summary, nil
}

// MonthlyBreakdown - Successful payments per calendar month of year.
func (r *implRepository) MonthlyBreakdown(ctx context.Context, year int) ([]model.MonthlyRow, error) {
	rows, err := r.db.QueryContext(ctx, monthlyBreakdownQuery, year)
	if err != nil {
		r.l.Errorf(ctx, "donation.repository.postgre.MonthlyBreakdown: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrQueryFailed, err)
	}
	defer rows.Close()

	var out []model.MonthlyRow
	for rows.Next() {
		var m model.MonthlyRow
		if err := rows.Scan(&m.MonthNumber, &m.MonthName, &m.TransactionCount, &m.TotalAmount, &m.UniqueDonors); err != nil {
			return nil, r.scanErr(ctx, "MonthlyBreakdown", err)
		}
		// TO_CHAR pads month names to nine characters
		m.MonthName = strings.TrimSpace(m.MonthName)
		out = append(out, m)
	}
	return out, r.rowsErr(ctx, "MonthlyBreakdown", rows)
}

func (r *implRepository) queryTop(ctx context.Context, op, query string, opts repository.TopOptions) (*sql.Rows, error) {
	if err := validateRange(opts.Start, opts.End); err != nil {
		return nil, err
	}
	if opts.Limit <= 0 {
		return nil, repository.ErrInvalidLimit
	}
	rows, err := r.db.QueryContext(ctx, query, opts.Start, opts.End, opts.Limit)
	if err != nil {
		r.l.Errorf(ctx, "donation.repository.postgre.%s: %v", op, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrQueryFailed, err)
	}
	return rows, nil
}

func (r *implRepository) scanErr(ctx context.Context, op string, err error) error {
	r.l.Errorf(ctx, "donation.repository.postgre.%s: scan failed: %v", op, err)
	return fmt.Errorf("%w: %v", repository.ErrQueryFailed, err)
}

func (r *implRepository) rowsErr(ctx context.Context, op string, rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "donation.repository.postgre.%s: iteration failed: %v", op, err)
		return fmt.Errorf("%w: %v", repository.ErrQueryFailed, err)
	}
	return nil
}

func validateRange(start, end string) error {
	if start == "" || end == "" {
		return repository.ErrInvalidWindow
	}
	return nil
}
