package builder

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"donation-report-srv/internal/model"
	"donation-report-srv/internal/report"

	"github.com/go-pdf/fpdf"
)

// Build renders input as a PDF and returns the file path.
func (b *implBuilder) Build(ctx context.Context, input report.BuildInput) (string, error) {
	if !input.PeriodType.Valid() {
		return "", report.ErrInvalidPeriodType
	}

	generatedAt := b.clock.Now()
	path := filepath.Join(b.outputDir, Filename(input.PeriodType, input.Year, generatedAt.Format(fileTimeLayout)))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title(input), true)
	pdf.SetAuthor("donation-report-srv", true)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s  |  Page %d/{nb}",
			generatedAt.Format(model.DateTimeLayout), pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	w := &writer{pdf: pdf}
	w.header(input)
	w.summary(input.Data.Summary)
	w.status(input.Data.Status)
	w.donors(input.Data.Donors)
	w.schools(input.Data.Schools)
	w.campaigns(input.Data.Campaigns)
	if input.PeriodType == model.PeriodYearly {
		w.monthly(input.Data.Monthly)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		b.l.Errorf(ctx, "report.builder.Build: write %s failed: %v", path, err)
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	b.l.Infof(ctx, "report.builder.Build: wrote %s", path)
	return path, nil
}

// Filename is donation_report_<period>_<year|current>_<stamp>.pdf.
func Filename(period model.PeriodType, year *int, stamp string) string {
	label := currentLabel
	if year != nil {
		label = strconv.Itoa(*year)
	}
	return report.FilePrefix + strings.Join([]string{string(period), label, stamp}, "_") + report.FileExtension
}

func title(input report.BuildInput) string {
	switch input.PeriodType {
	case model.PeriodWeekly:
		return "Weekly Donation Report"
	case model.PeriodMonthly:
		return fmt.Sprintf("Monthly Donation Report - %s", input.Start.Format("January 2006"))
	default:
		if input.Year != nil {
			return fmt.Sprintf("Yearly Donation Report - %d", *input.Year)
		}
		return "Yearly Donation Report"
	}
}
