package builder

import (
	"fmt"

	"donation-report-srv/internal/model"
	"donation-report-srv/internal/report"

	"github.com/go-pdf/fpdf"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 7.0
	rowHeight  = 6.5
)

type column struct {
	title string
	width float64
	align string
}

type writer struct {
	pdf *fpdf.Fpdf
}

func (w *writer) header(input report.BuildInput) {
	w.pdf.SetFont(fontFamily, "B", 18)
	w.pdf.SetTextColor(33, 37, 41)
	w.pdf.CellFormat(0, 10, title(input), "", 1, "C", false, 0, "")

	w.pdf.SetFont(fontFamily, "", 10)
	w.pdf.SetTextColor(90, 90, 90)
	period := fmt.Sprintf("Period: %s to %s",
		input.Start.Format(model.DateLayout), input.End.Format(model.DateLayout))
	w.pdf.CellFormat(0, 6, period, "", 1, "C", false, 0, "")
	w.pdf.Ln(4)
}

func (w *writer) sectionTitle(s string) {
	w.pdf.Ln(3)
	w.pdf.SetFont(fontFamily, "B", 13)
	w.pdf.SetTextColor(25, 74, 140)
	w.pdf.CellFormat(0, 8, s, "B", 1, "L", false, 0, "")
	w.pdf.Ln(2)
	w.pdf.SetTextColor(33, 37, 41)
}

func (w *writer) keyValues(rows [][2]string) {
	for _, r := range rows {
		w.pdf.SetFont(fontFamily, "B", 10)
		w.pdf.CellFormat(70, lineHeight, r[0], "", 0, "L", false, 0, "")
		w.pdf.SetFont(fontFamily, "", 10)
		w.pdf.CellFormat(0, lineHeight, r[1], "", 1, "L", false, 0, "")
	}
}

func (w *writer) table(cols []column, rows [][]string) {
	if len(rows) == 0 {
		w.pdf.SetFont(fontFamily, "I", 10)
		w.pdf.CellFormat(0, lineHeight, "No data for this period.", "", 1, "L", false, 0, "")
		return
	}

	w.pdf.SetFont(fontFamily, "B", 9)
	w.pdf.SetFillColor(225, 233, 245)
	for _, c := range cols {
		w.pdf.CellFormat(c.width, rowHeight, c.title, "1", 0, "C", true, 0, "")
	}
	w.pdf.Ln(-1)

	w.pdf.SetFont(fontFamily, "", 9)
	w.pdf.SetFillColor(247, 247, 247)
	for i, row := range rows {
		fill := i%2 == 1
		for j, c := range cols {
			w.pdf.CellFormat(c.width, rowHeight, truncate(row[j], c.width), "1", 0, c.align, fill, 0, "")
		}
		w.pdf.Ln(-1)
	}
}

func (w *writer) summary(s model.SummaryRow) {
	w.sectionTitle("Summary")
	w.keyValues([][2]string{
		{"Total transactions", formatInt(s.TotalTransactions)},
		{"Unique donors", formatInt(s.UniqueDonors)},
		{"Total amount", formatMoney(s.TotalAmount)},
		{"Average donation", formatMoney(s.AvgDonation)},
		{"Smallest donation", formatMoney(s.MinDonation)},
		{"Largest donation", formatMoney(s.MaxDonation)},
		{"Successful transactions", formatInt(s.SuccessfulTransactions)},
		{"Failed transactions", formatInt(s.FailedTransactions)},
	})
}

func (w *writer) status(s model.StatusSummary) {
	w.sectionTitle("Transaction Status")
	w.table([]column{
		{"Status", 60, "L"},
		{"Transactions", 60, "R"},
		{"Amount", 60, "R"},
	}, [][]string{
		{"Successful", formatInt(s.SuccessCount), formatMoney(s.SuccessAmount)},
		{"Failed / other", formatInt(s.FailedCount), formatMoney(s.FailedAmount)},
	})
	w.pdf.Ln(1)
	w.pdf.SetFont(fontFamily, "", 10)
	w.pdf.CellFormat(0, lineHeight, "Success rate: "+s.SuccessRate().StringFixed(1)+"%", "", 1, "L", false, 0, "")
}

func (w *writer) donors(rows []model.DonorRow) {
	w.sectionTitle("Top Donors")
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.DonorName, formatInt(r.NumberOfDonations), formatMoney(r.TotalDonated), formatMoney(r.AverageDonation), r.DonorType})
	}
	w.table([]column{
		{"Donor", 55, "L"},
		{"Donations", 25, "R"},
		{"Total", 35, "R"},
		{"Average", 35, "R"},
		{"Type", 30, "C"},
	}, out)
}

func (w *writer) schools(rows []model.SchoolRow) {
	w.sectionTitle("Top Schools")
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.SchoolName, r.SchoolLocation, formatInt(r.DonationCount), formatMoney(r.TotalAmount), formatInt(r.UniqueDonors)})
	}
	w.table([]column{
		{"School", 55, "L"},
		{"Location", 40, "L"},
		{"Donations", 25, "R"},
		{"Total", 35, "R"},
		{"Donors", 25, "R"},
	}, out)
}

func (w *writer) campaigns(rows []model.CampaignRow) {
	w.sectionTitle("Top Campaigns")
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.CampaignName, r.DonationType, formatInt(r.DonationCount), formatMoney(r.TotalAmount), formatInt(r.UniqueDonors)})
	}
	w.table([]column{
		{"Campaign", 55, "L"},
		{"Type", 40, "L"},
		{"Donations", 25, "R"},
		{"Total", 35, "R"},
		{"Donors", 25, "R"},
	}, out)
}

func (w *writer) monthly(rows []model.MonthlyRow) {
	w.sectionTitle("Monthly Breakdown")
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.MonthName, formatInt(r.TransactionCount), formatMoney(r.TotalAmount), formatInt(r.UniqueDonors)})
	}
	w.table([]column{
		{"Month", 45, "L"},
		{"Transactions", 45, "R"},
		{"Total", 45, "R"},
		{"Donors", 45, "R"},
	}, out)
}
