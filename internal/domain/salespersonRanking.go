package domain

import "time"

type SalespersonRankingResponse struct {
	Ranking    []SalespersonRankingItem `json:"ranking"`
	LastUpdate time.Time                `json:"last_update"`
}

type SalespersonRankingItem struct {
	ID               int       `json:"id"`
	SalespersonID    string    `json:"salesperson_id"`
	Period           string    `json:"period"` // Formato mm-yyyy (ex: 01-2024)
	RealizedAmount   float64   `json:"realized_amount"`
	TargetAmount     float64   `json:"target_amount"`
	PercentAmount    Ratio     `json:"percent_amount"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int       `json:"previous_position"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
