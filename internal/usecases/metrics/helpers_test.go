package metrics

import (
	"time"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func sale(salesperson, client, invoice string, amount, quantity float64, date time.Time) *domain.SalesRecord {
	s := &domain.SalesRecord{
		ClientID:      client,
		ClientName:    "Cliente " + client,
		InvoiceID:     invoice,
		SalespersonID: salesperson,
		ProductCode:   "P1",
		Amount:        amount,
		Quantity:      quantity,
		Date:          date,
	}
	s.DeriveCalendarFields()
	return s
}

func budget(salesperson, month string, year int, amount, quantity float64) *domain.BudgetRecord {
	return &domain.BudgetRecord{
		SalespersonID: salesperson,
		Month:         month,
		Year:          year,
		Amount:        amount,
		Quantity:      quantity,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
