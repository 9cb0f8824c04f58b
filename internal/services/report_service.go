package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"constructax/internal/models"
)

// ReportService renders the printable material estimation report.
type ReportService struct{}

func NewReportService() *ReportService {
	return &ReportService{}
}

// BuildEstimationReport assembles the materials-by-date table into a PDF:
// brand header, project info, one row per material with amounts per date
// and a row total, a per-date totals row, and the grand total.
func (s *ReportService) BuildEstimationReport(projectName string, logs []models.MaterialLog) ([]byte, error) {
	totals := CalculateMaterialTotals(logs)
	breakdown := GroupLogsByDate(logs)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Brand block
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(30, 41, 59)
	pdf.Text(14, 20, "CONSTRUCTAX")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(148, 163, 184)
	pdf.Text(14, 26, "A product from Lakshmi Constructions")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(245, 158, 11)
	pdf.Text(14, 38, "Material Estimation Report")

	if projectName == "" {
		projectName = "Unnamed Project"
	}
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(51, 65, 85)
	pdf.Text(14, 48, fmt.Sprintf("Project: %s", projectName))
	pdf.Text(14, 55, fmt.Sprintf("Generated: %s", time.Now().Format("02/01/2006")))
	pdf.Text(14, 62, fmt.Sprintf("Total Entries: %d", len(logs)))

	// Table layout: material column plus one column per date plus totals.
	const left, top = 14.0, 70.0
	const usableWidth = 182.0
	const materialColWidth, totalColWidth = 32.0, 28.0
	const rowHeight = 8.0

	dateColWidth := 0.0
	if n := len(breakdown.Dates); n > 0 {
		dateColWidth = (usableWidth - materialColWidth - totalColWidth) / float64(n)
	}

	pdf.SetY(top)
	pdf.SetX(left)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(30, 41, 59)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(materialColWidth, rowHeight, "Material", "1", 0, "L", true, 0, "")
	for _, date := range breakdown.Dates {
		pdf.CellFormat(dateColWidth, rowHeight, shortDate(date), "1", 0, "C", true, 0, "")
	}
	pdf.CellFormat(totalColWidth, rowHeight, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(51, 65, 85)
	for _, material := range models.Materials {
		pdf.SetX(left)
		pdf.CellFormat(materialColWidth, rowHeight, string(material), "1", 0, "L", false, 0, "")
		for _, date := range breakdown.Dates {
			amount := breakdown.LogsByDate[date][material]
			cell := "-"
			if amount > 0 {
				cell = formatAmount(amount)
			}
			pdf.CellFormat(dateColWidth, rowHeight, cell, "1", 0, "R", false, 0, "")
		}
		pdf.CellFormat(totalColWidth, rowHeight, formatAmount(totals[material]), "1", 1, "R", false, 0, "")
	}

	// Per-date totals row
	pdf.SetX(left)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(241, 245, 249)
	pdf.CellFormat(materialColWidth, rowHeight, "Daily Total", "1", 0, "L", true, 0, "")
	for _, date := range breakdown.Dates {
		pdf.CellFormat(dateColWidth, rowHeight, formatAmount(DateTotal(breakdown.LogsByDate[date])), "1", 0, "R", true, 0, "")
	}
	pdf.CellFormat(totalColWidth, rowHeight, formatAmount(GrandTotal(totals)), "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(30, 41, 59)
	pdf.Text(left, pdf.GetY()+12, fmt.Sprintf("Grand Total: Rs. %s", formatAmount(GrandTotal(totals))))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render estimation report: %w", err)
	}
	return buf.Bytes(), nil
}

// shortDate renders an ISO date as DD/MM for column headers.
func shortDate(iso string) string {
	t, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01")
}

// formatAmount groups digits the Indian way: last three, then pairs
// (e.g. 1234567 -> 12,34,567).
func formatAmount(amount float64) string {
	whole := fmt.Sprintf("%.0f", amount)
	neg := strings.HasPrefix(whole, "-")
	if neg {
		whole = whole[1:]
	}

	if len(whole) > 3 {
		head, tail := whole[:len(whole)-3], whole[len(whole)-3:]
		var pairs []string
		for len(head) > 2 {
			pairs = append([]string{head[len(head)-2:]}, pairs...)
			head = head[:len(head)-2]
		}
		if head != "" {
			pairs = append([]string{head}, pairs...)
		}
		whole = strings.Join(pairs, ",") + "," + tail
	}

	if neg {
		whole = "-" + whole
	}
	return whole
}
