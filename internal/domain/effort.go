package domain

// EffortPlan mostra o ritmo diário necessário para atingir a meta do mês
type EffortPlan struct {
	Month                string         `json:"month"`
	Year                 int            `json:"year"`
	TotalWorkingDays     float64        `json:"total_working_days"`
	ElapsedWorkingDays   float64        `json:"elapsed_working_days"`
	RemainingWorkingDays float64        `json:"remaining_working_days"`
	Target               EffortFigures  `json:"target"`
	Realized             EffortFigures  `json:"realized"`
	Required             EffortRequired `json:"required"`
}

type EffortFigures struct {
	Amount        float64 `json:"amount"`
	Quantity      float64 `json:"quantity"`
	Clients       float64 `json:"clients"`
	ClientsPerDay float64 `json:"clients_per_day"`
	Ticket        float64 `json:"ticket"`
	Invoice       float64 `json:"invoice"`
}

type EffortRequired struct {
	MissingAmount   float64 `json:"missing_amount"`
	MissingQuantity float64 `json:"missing_quantity"`
	MissingClients  float64 `json:"missing_clients"`
	AmountPerDay    float64 `json:"amount_per_day"`
	QuantityPerDay  float64 `json:"quantity_per_day"`
	ClientsPerDay   float64 `json:"clients_per_day"`
	Ticket          float64 `json:"ticket"`
	Invoice         float64 `json:"invoice"`
}
