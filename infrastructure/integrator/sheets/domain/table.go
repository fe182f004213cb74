package domain

import (
	"strings"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// Table é uma planilha já baixada, com o cabeçalho indexado pelo nome da coluna
type Table struct {
	Name   string
	header map[string]int
	Rows   [][]string
}

// NewTable usa a primeira linha como cabeçalho. Os nomes das colunas são aparados.
func NewTable(name string, rows [][]string) *Table {
	t := &Table{Name: name, header: map[string]int{}}
	if len(rows) == 0 {
		return t
	}

	for i, col := range rows[0] {
		col = strings.TrimSpace(col)
		if _, dup := t.header[col]; !dup {
			t.header[col] = i
		}
	}
	t.Rows = rows[1:]

	return t
}

func (t *Table) Has(column string) bool {
	_, ok := t.header[column]
	return ok
}

// Require retorna um FieldError para a primeira coluna ausente
func (t *Table) Require(columns ...string) error {
	for _, col := range columns {
		if !t.Has(col) {
			return &domain.FieldError{Table: t.Name, Row: -1, Field: col}
		}
	}
	return nil
}

// Value retorna a célula aparada, ou vazio quando a coluna não existe ou a linha é curta
func (t *Table) Value(row []string, column string) string {
	idx, ok := t.header[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
