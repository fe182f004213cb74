package domain

type ProjectionKind string

const (
	ProjectionWeekly  ProjectionKind = "weekly"
	ProjectionMonthly ProjectionKind = "monthly"
)

// ProjectionResult representa a projeção linear de vendas até o fim do período
type ProjectionResult struct {
	Kind               ProjectionKind `json:"kind"`
	Period             string         `json:"period"`
	RealizedAmount     float64        `json:"realized_amount"`
	ElapsedWorkingDays float64        `json:"elapsed_working_days"`
	TotalWorkingDays   float64        `json:"total_working_days"`
	AveragePerDay      float64        `json:"average_per_day"`
	Forecast           float64        `json:"forecast"`
	// Preenchidos apenas na projeção mensal
	AverageTicket  *float64 `json:"average_ticket,omitempty"`
	AverageInvoice *float64 `json:"average_invoice,omitempty"`
}
