package domain

import "time"

// SyncResult resume uma carga das planilhas para o banco
type SyncResult struct {
	SyncID        string    `json:"sync_id"`
	SalesRecords  int       `json:"sales_records"`
	BudgetRecords int       `json:"budget_records"`
	CallRecords   int       `json:"call_records"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
}

// SheetsSnapshot é o conteúdo completo das três planilhas numa carga
type SheetsSnapshot struct {
	Sales  []*SalesRecord
	Budget []*BudgetRecord
	Calls  []*CallRecord
}
