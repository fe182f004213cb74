package sheets

import (
	"regexp"

	"github.com/sirupsen/logrus"

	sheetsdomain "github.com/vfg2006/sales-performance-api/infrastructure/integrator/sheets/domain"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

// Colunas da planilha de vendas
const (
	colClientID    = "CODIGO"
	colClientName  = "CLIENTE"
	colInvoice     = "Documento"
	colDate        = "Fecha"
	colTotal       = "Total"
	colSalesperson = "VDE"
	colProductCode = "COD_PROD"
	colDescription = "Descripcion"
	colQuantity    = "Cantidad"
	colCategory    = "CATEGORIA"
	colSubcategory = "SUBCATEGORIA"
)

// Colunas da planilha de metas
const (
	colBudgetAmount   = "MONTO"
	colBudgetQuantity = "CANTIDAD"
	colBudgetMonth    = "MES"
	colBudgetYear     = "ANO"
)

// Colunas da planilha de análise de ligações
const (
	colCallSalesperson = "Vendedor"
	colCallFile        = "Archivo"
	colCallDuration    = "Duración (seg)"
	colCallAdherence   = "% Apego al guion"
	colCallSentiment   = "% Sentimiento"
	colCallFluency     = "Evaluación Fluidez"
	colCallTranscript  = "Transcripción completa"
)

var fileDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// ParseSales converte a planilha de vendas. Linhas com data ou valor inválidos são descartadas,
// assim como linhas sem vendedor, documento ou cliente.
func ParseSales(rows [][]string) ([]*domain.SalesRecord, error) {
	table := sheetsdomain.NewTable(domain.SalesTable, rows)
	if err := table.Require(colClientID, colClientName, colInvoice, colDate, colTotal, colSalesperson); err != nil {
		return nil, err
	}

	records := make([]*domain.SalesRecord, 0, len(table.Rows))
	dropped := 0

	for i, row := range table.Rows {
		date, err := utils.ParseFlexibleDate(table.Value(row, colDate))
		if err != nil {
			dropped++
			continue
		}

		amount, err := utils.ParseNumber(table.Value(row, colTotal))
		if err != nil {
			dropped++
			continue
		}

		record := &domain.SalesRecord{
			ClientID:           table.Value(row, colClientID),
			ClientName:         table.Value(row, colClientName),
			InvoiceID:          table.Value(row, colInvoice),
			SalespersonID:      table.Value(row, colSalesperson),
			ProductCode:        table.Value(row, colProductCode),
			ProductDescription: table.Value(row, colDescription),
			Category:           table.Value(row, colCategory),
			Subcategory:        table.Value(row, colSubcategory),
			Quantity:           parseOptionalNumber(table.Value(row, colQuantity)),
			Amount:             amount,
			Date:               date,
		}
		record.DeriveCalendarFields()

		if err := record.Validate(i + 2); err != nil {
			logrus.WithError(err).Debug("sheets: linha de venda descartada")
			dropped++
			continue
		}

		records = append(records, record)
	}

	if dropped > 0 {
		logrus.WithFields(logrus.Fields{
			"table":           domain.SalesTable,
			"records_dropped": dropped,
		}).Warn("sheets: linhas inválidas descartadas")
	}

	return records, nil
}

// ParseBudget converte a planilha de metas. O mês aceita nomes em inglês e, quando ausente,
// é obtido da coluna Fecha.
func ParseBudget(rows [][]string) ([]*domain.BudgetRecord, error) {
	table := sheetsdomain.NewTable(domain.BudgetTable, rows)
	if err := table.Require(colSalesperson, colBudgetAmount); err != nil {
		return nil, err
	}

	records := make([]*domain.BudgetRecord, 0, len(table.Rows))

	for i, row := range table.Rows {
		record := &domain.BudgetRecord{
			SalespersonID: table.Value(row, colSalesperson),
			Amount:        utils.CleanAmount(table.Value(row, colBudgetAmount)),
			Quantity:      utils.CleanAmount(table.Value(row, colBudgetQuantity)),
			Month:         domain.NormalizeMonthName(table.Value(row, colBudgetMonth)),
			Year:          parseYear(table.Value(row, colBudgetYear)),
			Category:      table.Value(row, colCategory),
			Subcategory:   table.Value(row, colSubcategory),
		}

		if _, known := domain.MonthNumber(record.Month); !known || record.Year == 0 {
			if date, err := utils.ParseFlexibleDate(table.Value(row, colDate)); err == nil {
				if !known {
					record.Month = domain.MonthName(date.Month())
				}
				if record.Year == 0 {
					record.Year = date.Year()
				}
			}
		}

		if err := record.Validate(i + 2); err != nil {
			logrus.WithError(err).Debug("sheets: linha de meta descartada")
			continue
		}

		records = append(records, record)
	}

	return records, nil
}

// ParseCalls converte a planilha de análise de ligações. A data vem do nome do arquivo.
func ParseCalls(rows [][]string) ([]*domain.CallRecord, error) {
	table := sheetsdomain.NewTable(domain.CallsTable, rows)
	if err := table.Require(colCallSalesperson, colCallFile, colCallDuration, colCallAdherence, colCallSentiment); err != nil {
		return nil, err
	}

	records := make([]*domain.CallRecord, 0, len(table.Rows))

	for _, row := range table.Rows {
		record := &domain.CallRecord{
			Salesperson:     table.Value(row, colCallSalesperson),
			File:            table.Value(row, colCallFile),
			DurationSeconds: parseOptionalNumber(table.Value(row, colCallDuration)),
			ScriptAdherence: parseOptionalNumber(table.Value(row, colCallAdherence)),
			Sentiment:       parseOptionalNumber(table.Value(row, colCallSentiment)),
			FluencyRating:   table.Value(row, colCallFluency),
			Transcript:      table.Value(row, colCallTranscript),
		}

		if match := fileDatePattern.FindString(record.File); match != "" {
			if date, err := utils.ParseFlexibleDate(match); err == nil {
				record.Date = date
				record.Month = domain.MonthName(date.Month())
			}
		}

		records = append(records, record)
	}

	return records, nil
}

func parseOptionalNumber(value string) float64 {
	if value == "" {
		return 0
	}
	f, err := utils.ParseNumber(value)
	if err != nil {
		return 0
	}
	return f
}

func parseYear(value string) int {
	if value == "" {
		return 0
	}
	f, err := utils.ParseNumber(value)
	if err != nil {
		return 0
	}
	return int(f)
}
