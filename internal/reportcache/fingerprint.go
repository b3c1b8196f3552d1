package reportcache

import (
	"context"
	"fmt"

	"donation-report-srv/internal/donation/repository"
	"donation-report-srv/internal/model"
	"donation-report-srv/pkg/log"

	"github.com/jonboulle/clockwork"
)

// Fingerprinter summarises the donation rows behind a report window.
type Fingerprinter interface {
	// Compute never fails. On a data store error it returns a value that matches no stored entry.
	Compute(ctx context.Context, r model.DateRange) model.DataFingerprint
}

type implFingerprinter struct {
	repo  repository.FingerprintRepository
	clock clockwork.Clock
	l     log.Logger
}

func NewFingerprinter(repo repository.FingerprintRepository, clock clockwork.Clock, l log.Logger) Fingerprinter {
	return &implFingerprinter{repo: repo, clock: clock, l: l}
}

// Compute scans from the window start up to now rather than the window end, so
// late-arriving rows dated after the window still invalidate the cached report.
func (f *implFingerprinter) Compute(ctx context.Context, r model.DateRange) model.DataFingerprint {
	now := f.clock.Now()

	in, err := f.repo.FingerprintInputs(ctx, repository.FingerprintOptions{
		Start:   r.StartString(),
		ScanEnd: now.Format(model.DateTimeLayout),
	})
	if err != nil {
		f.l.Errorf(ctx, "reportcache.Fingerprinter.Compute: falling back to volatile fingerprint: %v", err)
		return model.DataFingerprint(shortDigest(fmt.Sprintf("error|%d", now.UnixNano())))
	}

	fp := model.DataFingerprint(shortDigest(RawFingerprint(in)))
	f.l.Infof(ctx, "reportcache.Fingerprinter.Compute: records=%d amount=%s success=%d donors=%d latest=%q modified=%q fingerprint=%s",
		in.RecordCount, in.TotalAmount.StringFixed(2), in.SuccessCount, in.UniqueDonors, in.MaxPaymentDate, in.MaxModified, fp)
	return fp
}

// RawFingerprint is the pre-digest form: count|amount|max_payment_date|success|donors|max_modified.
func RawFingerprint(in model.FingerprintInputs) string {
	return fmt.Sprintf("%d|%s|%s|%d|%d|%s",
		in.RecordCount,
		in.TotalAmount.String(),
		in.MaxPaymentDate,
		in.SuccessCount,
		in.UniqueDonors,
		in.MaxModified,
	)
}
