package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"donation-report-srv/internal/donation/repository"
	"donation-report-srv/internal/model"
)

// FingerprintInputs - Aggregates over [Start, ScanEnd] plus the latest row modification.
func (r *implRepository) FingerprintInputs(ctx context.Context, opts repository.FingerprintOptions) (model.FingerprintInputs, error) {
	if opts.Start == "" || opts.ScanEnd == "" {
		return model.FingerprintInputs{}, repository.ErrInvalidWindow
	}

	var in model.FingerprintInputs
	err := r.db.QueryRowContext(ctx, fingerprintQuery, opts.Start, opts.ScanEnd).Scan(
		&in.RecordCount,
		&in.TotalAmount,
		&in.MaxPaymentDate,
		&in.SuccessCount,
		&in.UniqueDonors,
	)
	if err != nil {
		r.l.Errorf(ctx, "donation.repository.postgre.FingerprintInputs: aggregate scan failed: %v", err)
		return model.FingerprintInputs{}, fmt.Errorf("%w: %v", repository.ErrQueryFailed, err)
	}

	col, err := r.ModificationColumn(ctx)
	if err != nil {
		return model.FingerprintInputs{}, err
	}
	if col == "" {
		return in, nil
	}

	// Rows whose payment_date is before Start are not seen here. A back-dated edit
	// to an old row therefore does not change the fingerprint.
	query := fmt.Sprintf(maxModifiedQueryFormat, col)
	if err := r.db.QueryRowContext(ctx, query, opts.Start).Scan(&in.MaxModified); err != nil {
		r.l.Errorf(ctx, "donation.repository.postgre.FingerprintInputs: max(%s) failed: %v", col, err)
		return model.FingerprintInputs{}, fmt.Errorf("%w: %v", repository.ErrQueryFailed, err)
	}

	return in, nil
}

// ModificationColumn - Resolve the row timestamp column once per repository.
func (r *implRepository) ModificationColumn(ctx context.Context) (string, error) {
	r.modMu.Lock()
	defer r.modMu.Unlock()

	if r.modResolved {
		return r.modColumn, nil
	}

	var col string
	err := r.db.QueryRowContext(ctx, modificationColumnQuery).Scan(&col)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		r.l.Errorf(ctx, "donation.repository.postgre.ModificationColumn: lookup failed: %v", err)
		return "", fmt.Errorf("%w: %v", repository.ErrQueryFailed, err)
	}
	if !allowedModificationColumn(col) {
		col = ""
	}

	r.modColumn = col
	r.modResolved = true
	r.l.Debugf(ctx, "donation.repository.postgre.ModificationColumn: using %q on %s", col, tableName)
	return col, nil
}

func allowedModificationColumn(col string) bool {
	switch col {
	case "updated_at", "modified_at", "created_at", "inserted_at":
		return true
	}
	return false
}
