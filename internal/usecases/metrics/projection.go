package metrics

import (
	"strconv"

	"github.com/vfg2006/sales-performance-api/internal/calendar"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// WeeklyProjection projeta o total da semana ISO informada.
// Os dias decorridos seguem a política semanal: 5 de segunda a sexta e no domingo,
// 5.5 no sábado. Sem vendas na semana o resultado é nil com ConditionNoData.
func (e *Engine) WeeklyProjection(week int) (*domain.ProjectionResult, domain.Condition, error) {
	sales := e.sales
	if err := validateSales(sales); err != nil {
		return nil, domain.ConditionNone, err
	}

	realized := 0.0
	found := false
	for _, s := range sales {
		if s.Week != week {
			continue
		}
		found = true
		realized += s.Amount
	}
	if !found {
		return nil, domain.ConditionNoData, nil
	}

	elapsed := calendar.WeeklyElapsedDays(e.clock.Now())
	avg := 0.0
	if elapsed > 0 {
		avg = realized / elapsed
	}

	return &domain.ProjectionResult{
		Kind:               domain.ProjectionWeekly,
		Period:             strconv.Itoa(week),
		RealizedAmount:     realized,
		ElapsedWorkingDays: elapsed,
		TotalWorkingDays:   calendar.WeeklyTotalDays,
		AveragePerDay:      avg,
		Forecast:           avg * calendar.WeeklyTotalDays,
	}, domain.ConditionNone, nil
}

// MonthlyProjection projeta o total do mês informado usando os dias úteis
// do mês corrente até hoje. Sem vendas no mês o resultado é nil com ConditionNoData.
func (e *Engine) MonthlyProjection(month string) (*domain.ProjectionResult, domain.Condition, error) {
	sales := e.sales
	if err := validateSales(sales); err != nil {
		return nil, domain.ConditionNone, err
	}

	realized := 0.0
	invoices := stringSet{}
	clients := stringSet{}
	for _, s := range sales {
		if !domain.SameMonth(s.Month, month) {
			continue
		}
		realized += s.Amount
		invoices.add(s.InvoiceID)
		clients.add(s.ClientID)
	}
	if len(invoices) == 0 {
		return nil, domain.ConditionNoData, nil
	}

	now := e.clock.Now()
	elapsed := calendar.ElapsedInMonth(now)
	total := calendar.TotalInMonth(now)

	avg := 0.0
	if elapsed > 0 {
		avg = realized / elapsed
	}
	ticket := domain.NewRatio(realized, float64(len(invoices))).OrZero()
	invoice := domain.NewRatio(realized, float64(len(clients))).OrZero()

	return &domain.ProjectionResult{
		Kind:               domain.ProjectionMonthly,
		Period:             month,
		RealizedAmount:     realized,
		ElapsedWorkingDays: elapsed,
		TotalWorkingDays:   total,
		AveragePerDay:      avg,
		Forecast:           avg * total,
		AverageTicket:      &ticket,
		AverageInvoice:     &invoice,
	}, domain.ConditionNone, nil
}
