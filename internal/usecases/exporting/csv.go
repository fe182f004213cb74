package exporting

import (
	"bytes"
	"encoding/csv"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// SalesCSV gera o detalhe das vendas separado por ponto e vírgula, com BOM UTF-8
// para abrir corretamente no Excel.
func SalesCSV(result *domain.SalesQueryResult) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(salesHeaders); err != nil {
		return nil, err
	}
	for _, s := range result.Records {
		if err := w.Write(salesRow(s)); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
