package domain

// TotalRowLabel identifica a linha sintética de totais
const TotalRowLabel = "TOTAL"

// AttainmentRow representa o cumprimento de metas de um vendedor no mês
type AttainmentRow struct {
	SalespersonID    string  `json:"salesperson_id"`
	RealizedAmount   float64 `json:"realized_amount"`
	TargetAmount     float64 `json:"target_amount"`
	RealizedQuantity float64 `json:"realized_quantity"`
	TargetQuantity   float64 `json:"target_quantity"`
	InvoiceCount     int     `json:"invoice_count"`
	ClientCount      int     `json:"client_count"`
	PercentAmount    Ratio   `json:"percent_amount"`
	PercentQuantity  Ratio   `json:"percent_quantity"`
	AverageTicket    Ratio   `json:"average_ticket"`
	AverageInvoice   Ratio   `json:"average_invoice"`
}

// DeriveRatios recalcula os indicadores a partir dos totais da linha
func (r *AttainmentRow) DeriveRatios() {
	r.PercentAmount = NewPercent(r.RealizedAmount, r.TargetAmount)
	r.PercentQuantity = NewPercent(r.RealizedQuantity, r.TargetQuantity)
	r.AverageTicket = NewRatio(r.RealizedAmount, float64(r.InvoiceCount))
	r.AverageInvoice = NewRatio(r.RealizedAmount, float64(r.ClientCount))
}

// IsTotal indica se é a linha de totais
func (r *AttainmentRow) IsTotal() bool {
	return r.SalespersonID == TotalRowLabel
}

// AttainmentReport contém uma linha por vendedor, ordenadas, e a linha TOTAL por último
type AttainmentReport struct {
	Month string           `json:"month"`
	Year  int              `json:"year"`
	Rows  []*AttainmentRow `json:"rows"`
}

// Total retorna a linha TOTAL
func (r *AttainmentReport) Total() *AttainmentRow {
	if r == nil || len(r.Rows) == 0 {
		return nil
	}
	last := r.Rows[len(r.Rows)-1]
	if !last.IsTotal() {
		return nil
	}
	return last
}

// Salespeople retorna apenas as linhas de vendedores
func (r *AttainmentReport) Salespeople() []*AttainmentRow {
	if r.Total() == nil {
		return r.Rows
	}
	return r.Rows[:len(r.Rows)-1]
}

// CategoryLevel define o nível de detalhe do cumprimento por categoria
type CategoryLevel string

const (
	LevelCategory    CategoryLevel = "category"
	LevelSubcategory CategoryLevel = "subcategory"
)

// CategoryAttainmentRow representa o realizado contra a meta por vendedor e categoria
type CategoryAttainmentRow struct {
	SalespersonID  string  `json:"salesperson_id"`
	Category       string  `json:"category"`
	Subcategory    string  `json:"subcategory,omitempty"`
	RealizedAmount float64 `json:"realized_amount"`
	TargetAmount   float64 `json:"target_amount"`
	Percent        Ratio   `json:"percent"`
}
