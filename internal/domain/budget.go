package domain

import "strings"

const BudgetTable = "presupuesto"

// BudgetRecord representa uma linha da planilha de metas
type BudgetRecord struct {
	SalespersonID string  `json:"salesperson_id"`
	Amount        float64 `json:"amount"`
	Quantity      float64 `json:"quantity"`
	Month         string  `json:"month"`
	Year          int     `json:"year"`
	Category      string  `json:"category"`
	Subcategory   string  `json:"subcategory"`
}

func (b *BudgetRecord) Validate(row int) error {
	switch {
	case strings.TrimSpace(b.SalespersonID) == "":
		return &FieldError{Table: BudgetTable, Row: row, Field: "VDE"}
	case strings.TrimSpace(b.Month) == "":
		return &FieldError{Table: BudgetTable, Row: row, Field: "MES"}
	}
	return nil
}

// InPeriod verifica se a meta pertence ao mês e ano informados
func (b *BudgetRecord) InPeriod(month string, year int) bool {
	return b.Year == year && SameMonth(b.Month, month)
}
