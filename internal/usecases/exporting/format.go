package exporting

import (
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

const notAvailable = "N/A"

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

var contentTypes = map[Format]string{
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatCSV:  "text/csv; charset=utf-8",
	FormatPDF:  "application/pdf",
}

// File é o arquivo gerado, pronto para ser enviado na resposta
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

func newFile(base string, format Format, content []byte) *File {
	return &File{
		Name:        base + "." + string(format),
		ContentType: contentTypes[format],
		Content:     content,
	}
}

var salesHeaders = []string{"Fecha", "Documento", "CODIGO", "CLIENTE", "VDE", "COD_PROD", "Descripcion", "Cantidad", "Monto"}

var groupHeaders = []string{"Grupo", "Cantidad", "Monto", "Transacciones"}

var attainmentHeaders = []string{
	"VENDEDOR", "MONTO REAL", "MONTO META", "% CUMPL. VENTAS",
	"CANTIDAD REAL", "CANTIDAD META", "% CUMPL. CANTIDAD",
	"FACTURAS", "CLIENTES", "Ticket Promedio", "Factura Promedio",
}

func formatRatioMoney(r domain.Ratio) string {
	if !r.Valid {
		return notAvailable
	}
	return utils.FormatMoney(r.Value)
}

func formatRatioPercent(r domain.Ratio) string {
	if !r.Valid {
		return notAvailable
	}
	return utils.FormatPercent(r.Value)
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func salesRow(s *domain.SalesRecord) []string {
	return []string{
		s.Date.Format(time.DateOnly),
		s.InvoiceID,
		s.ClientID,
		s.ClientName,
		s.SalespersonID,
		s.ProductCode,
		s.ProductDescription,
		formatQuantity(s.Quantity),
		utils.FormatMoney(s.Amount),
	}
}

func attainmentRow(r *domain.AttainmentRow) []string {
	return []string{
		r.SalespersonID,
		utils.FormatMoney(r.RealizedAmount),
		utils.FormatMoney(r.TargetAmount),
		formatRatioPercent(r.PercentAmount),
		formatQuantity(r.RealizedQuantity),
		formatQuantity(r.TargetQuantity),
		formatRatioPercent(r.PercentQuantity),
		strconv.Itoa(r.InvoiceCount),
		strconv.Itoa(r.ClientCount),
		formatRatioMoney(r.AverageTicket),
		formatRatioMoney(r.AverageInvoice),
	}
}

func roundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
