package domain

import "time"

// SalesPivot contém o total vendido por vendedor em cada mês
type SalesPivot struct {
	Months []string        `json:"months"`
	Rows   []SalesPivotRow `json:"rows"`
}

type SalesPivotRow struct {
	SalespersonID string    `json:"salesperson_id"`
	Amounts       []float64 `json:"amounts"`
	Total         float64   `json:"total"`
}

type ProductSales struct {
	ProductCode string  `json:"product_code"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Quantity    float64 `json:"quantity"`
}

// SalespersonProducts lista os produtos mais vendidos por um vendedor
type SalespersonProducts struct {
	SalespersonID string         `json:"salesperson_id"`
	Products      []ProductSales `json:"products"`
}

// SalesGrouping define o agrupamento da consulta de vendas
type SalesGrouping string

const (
	GroupNone        SalesGrouping = ""
	GroupSalesperson SalesGrouping = "salesperson"
	GroupClient      SalesGrouping = "client"
	GroupMonth       SalesGrouping = "month"
	GroupYear        SalesGrouping = "year"
)

func (g SalesGrouping) IsValid() bool {
	switch g {
	case GroupNone, GroupSalesperson, GroupClient, GroupMonth, GroupYear:
		return true
	}
	return false
}

// SalesQuery representa a consulta livre de vendas por produto, descrição ou cliente
type SalesQuery struct {
	ProductCode string        `json:"product_code"`
	Description string        `json:"description"`
	ClientName  string        `json:"client_name"`
	StartDate   *time.Time    `json:"start_date"`
	EndDate     *time.Time    `json:"end_date"`
	Salespeople []string      `json:"salespeople"`
	GroupBy     SalesGrouping `json:"group_by"`
}

type SalesGroup struct {
	Key          string  `json:"key"`
	Quantity     float64 `json:"quantity"`
	Amount       float64 `json:"amount"`
	Transactions int     `json:"transactions"`
}

type SalesTotals struct {
	Units            float64 `json:"units"`
	Amount           float64 `json:"amount"`
	AverageUnitPrice Ratio   `json:"average_unit_price"`
	AverageTicket    Ratio   `json:"average_ticket"`
	Invoices         int     `json:"invoices"`
}

type SalesQueryResult struct {
	Title   string         `json:"title"`
	Records []*SalesRecord `json:"records"`
	Groups  []SalesGroup   `json:"groups,omitempty"`
	Totals  SalesTotals    `json:"totals"`
}
