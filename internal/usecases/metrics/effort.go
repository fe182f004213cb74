package metrics

import (
	"math"

	"github.com/vfg2006/sales-performance-api/internal/calendar"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// DailyEffort calcula o ritmo diário necessário para fechar a meta do mês corrente
// a partir da linha TOTAL do relatório de cumprimento.
func (e *Engine) DailyEffort(report *domain.AttainmentReport, clientsPerDayTarget float64) (*domain.EffortPlan, domain.Condition) {
	total := report.Total()
	if total == nil {
		return nil, domain.ConditionNoData
	}

	now := e.clock.Now()
	remaining := calendar.RemainingWorkingDays(now)
	if remaining <= 0 {
		return nil, domain.ConditionMonthClosed
	}

	totalDays := calendar.TotalInMonth(now)
	elapsed := calendar.ElapsedInMonth(now)
	targetClients := clientsPerDayTarget * totalDays
	realizedInvoices := float64(total.InvoiceCount)

	plan := &domain.EffortPlan{
		Month:                report.Month,
		Year:                 report.Year,
		TotalWorkingDays:     totalDays,
		ElapsedWorkingDays:   elapsed,
		RemainingWorkingDays: remaining,
		Target: domain.EffortFigures{
			Amount:        total.TargetAmount,
			Quantity:      total.TargetQuantity,
			Clients:       targetClients,
			ClientsPerDay: clientsPerDayTarget,
			Ticket:        safeDiv(total.TargetAmount, total.TargetQuantity),
			Invoice:       safeDiv(total.TargetAmount, targetClients),
		},
		Realized: domain.EffortFigures{
			Amount:        total.RealizedAmount,
			Quantity:      total.RealizedQuantity,
			Clients:       realizedInvoices,
			ClientsPerDay: safeDiv(realizedInvoices, elapsed),
			Ticket:        safeDiv(total.RealizedAmount, total.RealizedQuantity),
			Invoice:       safeDiv(total.RealizedAmount, realizedInvoices),
		},
	}

	req := &plan.Required
	req.MissingAmount = math.Max(0, total.TargetAmount-total.RealizedAmount)
	req.MissingQuantity = math.Max(0, total.TargetQuantity-total.RealizedQuantity)
	req.MissingClients = math.Max(0, targetClients-realizedInvoices)
	req.AmountPerDay = req.MissingAmount / remaining
	req.QuantityPerDay = req.MissingQuantity / remaining
	req.ClientsPerDay = req.MissingClients / remaining
	req.Ticket = safeDiv(req.AmountPerDay, req.QuantityPerDay)
	req.Invoice = safeDiv(req.AmountPerDay, req.ClientsPerDay)

	return plan, domain.ConditionNone
}

// safeDiv retorna 0 quando o denominador não é positivo
func safeDiv(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator
}
