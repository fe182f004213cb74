package exporting

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

var attainmentColumnWidths = []float64{30, 27, 27, 22, 24, 24, 24, 20, 20, 27, 27}

// AttainmentPDF gera o relatório de cumprimento em A4 paisagem
func AttainmentPDF(report *domain.AttainmentReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Cumplimiento de metas - %s %d", report.Month, report.Year)))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(226, 232, 240)
	for i, h := range attainmentHeaders {
		pdf.CellFormat(attainmentColumnWidths[i], 8, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	for _, r := range report.Rows {
		style := ""
		if r.IsTotal() {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 8)

		for i, v := range attainmentRow(r) {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(attainmentColumnWidths[i], 7, tr(v), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
