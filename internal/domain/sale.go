// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"strings"
	"time"
)

const SalesTable = "ventas"

// SalesRecord representa uma linha da planilha de vendas
type SalesRecord struct {
	ClientID           string    `json:"client_id"`
	ClientName         string    `json:"client_name"`
	InvoiceID          string    `json:"invoice_id"`
	SalespersonID      string    `json:"salesperson_id"`
	ProductCode        string    `json:"product_code"`
	ProductDescription string    `json:"product_description"`
	Category           string    `json:"category"`
	Subcategory        string    `json:"subcategory"`
	Quantity           float64   `json:"quantity"`
	Amount             float64   `json:"amount"`
	Date               time.Time `json:"date"`
	Year               int       `json:"year"`
	Month              string    `json:"month"`
	Week               int       `json:"week"`
	Weekday            string    `json:"weekday"`
}

// DeriveCalendarFields preenche ano, mês, semana ISO e dia da semana a partir da data
func (s *SalesRecord) DeriveCalendarFields() {
	s.Year = s.Date.Year()
	s.Month = MonthName(s.Date.Month())
	_, s.Week = s.Date.ISOWeek()
	s.Weekday = s.Date.Weekday().String()
}

// Validate verifica os campos usados nos agrupamentos
func (s *SalesRecord) Validate(row int) error {
	switch {
	case strings.TrimSpace(s.SalespersonID) == "":
		return &FieldError{Table: SalesTable, Row: row, Field: "VDE"}
	case strings.TrimSpace(s.InvoiceID) == "":
		return &FieldError{Table: SalesTable, Row: row, Field: "Documento"}
	case strings.TrimSpace(s.ClientID) == "":
		return &FieldError{Table: SalesTable, Row: row, Field: "CODIGO"}
	case s.Date.IsZero():
		return &FieldError{Table: SalesTable, Row: row, Field: "Fecha"}
	}
	return nil
}

// ReportFilters representa os filtros aplicados às vendas antes dos cálculos
type ReportFilters struct {
	Year        int      `json:"year"`
	Month       string   `json:"month"`
	Salespeople []string `json:"salespeople"`
}

// Matches aplica o filtro de ano e vendedores. O mês não é aplicado aqui porque
// cada cálculo filtra o mês por conta própria.
func (f ReportFilters) Matches(s *SalesRecord) bool {
	if f.Year != 0 && s.Year != f.Year {
		return false
	}
	if len(f.Salespeople) == 0 {
		return true
	}
	for _, sp := range f.Salespeople {
		if sp == s.SalespersonID {
			return true
		}
	}
	return false
}

// FilterSales retorna os registros que passam pelos filtros
func (f ReportFilters) FilterSales(records []*SalesRecord) []*SalesRecord {
	filtered := make([]*SalesRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
