package exporting

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

const (
	detailSheet     = "Detalle"
	groupedSheet    = "Agrupado"
	attainmentSheet = "Cumplimiento"
)

// SalesXLSX gera a planilha de detalhe e, quando a consulta foi agrupada, a planilha Agrupado
func SalesXLSX(result *domain.SalesQueryResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", detailSheet); err != nil {
		return nil, err
	}

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	writeHeader(f, detailSheet, salesHeaders, styles.header)
	for i, s := range result.Records {
		row := i + 2
		values := []any{
			s.Date.Format(time.DateOnly), s.InvoiceID, s.ClientID, s.ClientName,
			s.SalespersonID, s.ProductCode, s.ProductDescription, s.Quantity, s.Amount,
		}
		writeRow(f, detailSheet, row, values)
		f.SetCellStyle(detailSheet, fmt.Sprintf("I%d", row), fmt.Sprintf("I%d", row), styles.money)
	}
	f.SetColWidth(detailSheet, "D", "D", 30)
	f.SetColWidth(detailSheet, "G", "G", 40)

	if len(result.Groups) > 0 {
		if _, err := f.NewSheet(groupedSheet); err != nil {
			return nil, err
		}
		writeHeader(f, groupedSheet, groupHeaders, styles.header)
		for i, g := range result.Groups {
			row := i + 2
			writeRow(f, groupedSheet, row, []any{g.Key, g.Quantity, g.Amount, g.Transactions})
			f.SetCellStyle(groupedSheet, fmt.Sprintf("C%d", row), fmt.Sprintf("C%d", row), styles.money)
		}
	}

	return write(f)
}

// AttainmentXLSX gera a tabela de cumprimento com a linha TOTAL em negrito.
// Indicadores indefinidos são escritos como N/A.
func AttainmentXLSX(report *domain.AttainmentReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", attainmentSheet); err != nil {
		return nil, err
	}

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	f.SetCellValue(attainmentSheet, "A1", fmt.Sprintf("Cumplimiento de metas %s %d", report.Month, report.Year))
	f.SetCellStyle(attainmentSheet, "A1", "A1", styles.header)

	writeHeaderAt(f, attainmentSheet, 2, attainmentHeaders, styles.header)
	for i, r := range report.Rows {
		row := i + 3
		writeRow(f, attainmentSheet, row, []any{
			r.SalespersonID,
			r.RealizedAmount,
			r.TargetAmount,
			ratioCell(r.PercentAmount, 1),
			r.RealizedQuantity,
			r.TargetQuantity,
			ratioCell(r.PercentQuantity, 1),
			r.InvoiceCount,
			r.ClientCount,
			ratioCell(r.AverageTicket, 2),
			ratioCell(r.AverageInvoice, 2),
		})
		f.SetCellStyle(attainmentSheet, fmt.Sprintf("B%d", row), fmt.Sprintf("C%d", row), styles.money)
		f.SetCellStyle(attainmentSheet, fmt.Sprintf("J%d", row), fmt.Sprintf("K%d", row), styles.money)
		if r.IsTotal() {
			f.SetCellStyle(attainmentSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), styles.header)
		}
	}
	f.SetColWidth(attainmentSheet, "A", "K", 18)

	return write(f)
}

type sheetStyles struct {
	header int
	money  int
}

func newStyles(f *excelize.File) (sheetStyles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return sheetStyles{}, err
	}

	moneyFormat := "$#,##0.00"
	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFormat})
	if err != nil {
		return sheetStyles{}, err
	}

	return sheetStyles{header: header, money: money}, nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) {
	writeHeaderAt(f, sheet, 1, headers, style)
}

func writeHeaderAt(f *excelize.File, sheet string, row int, headers []string, style int) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetRowStyle(sheet, row, row, style)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}

func ratioCell(r domain.Ratio, places int32) any {
	if !r.Valid {
		return notAvailable
	}
	return roundTo(r.Value, places)
}

func write(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
