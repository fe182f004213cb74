package metrics

import (
	"sort"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

type salesAggregate struct {
	amount   float64
	quantity float64
	invoices stringSet
	clients  stringSet
}

type budgetAggregate struct {
	amount   float64
	quantity float64
}

// GoalAttainment compara o realizado de cada vendedor no mês com a meta cadastrada.
// Vendedores presentes em apenas um dos lados aparecem com zeros no outro.
// Quando não há meta para o período o relatório é nil e a condição explica o motivo.
func (e *Engine) GoalAttainment(month string, year int) (*domain.AttainmentReport, domain.Condition, error) {
	sales := e.sales
	if err := validateBudget(e.budget); err != nil {
		return nil, domain.ConditionNone, err
	}
	if err := validateSales(sales); err != nil {
		return nil, domain.ConditionNone, err
	}

	targets := map[string]*budgetAggregate{}
	targetSum := 0.0
	for _, b := range e.budget {
		if !b.InPeriod(month, year) {
			continue
		}
		agg, ok := targets[b.SalespersonID]
		if !ok {
			agg = &budgetAggregate{}
			targets[b.SalespersonID] = agg
		}
		agg.amount += b.Amount
		agg.quantity += b.Quantity
		targetSum += b.Amount
	}

	realized := map[string]*salesAggregate{}
	for _, s := range sales {
		if s.Year != year || !domain.SameMonth(s.Month, month) {
			continue
		}
		agg, ok := realized[s.SalespersonID]
		if !ok {
			agg = &salesAggregate{invoices: stringSet{}, clients: stringSet{}}
			realized[s.SalespersonID] = agg
		}
		agg.amount += s.Amount
		agg.quantity += s.Quantity
		agg.invoices.add(s.InvoiceID)
		agg.clients.add(s.ClientID)
	}

	if len(targets) == 0 || targetSum == 0 {
		if len(realized) > 0 {
			return nil, domain.ConditionBudgetMissing, nil
		}
		return nil, domain.ConditionNoData, nil
	}

	salespeople := make([]string, 0, len(targets)+len(realized))
	seen := stringSet{}
	for sp := range targets {
		seen.add(sp)
		salespeople = append(salespeople, sp)
	}
	for sp := range realized {
		if _, ok := seen[sp]; !ok {
			salespeople = append(salespeople, sp)
		}
	}
	sort.Strings(salespeople)

	report := &domain.AttainmentReport{
		Month: month,
		Year:  year,
		Rows:  make([]*domain.AttainmentRow, 0, len(salespeople)+1),
	}
	total := &domain.AttainmentRow{SalespersonID: domain.TotalRowLabel}

	for _, sp := range salespeople {
		row := &domain.AttainmentRow{SalespersonID: sp}
		if t, ok := targets[sp]; ok {
			row.TargetAmount = t.amount
			row.TargetQuantity = t.quantity
		}
		if r, ok := realized[sp]; ok {
			row.RealizedAmount = r.amount
			row.RealizedQuantity = r.quantity
			row.InvoiceCount = len(r.invoices)
			row.ClientCount = len(r.clients)
		}
		row.DeriveRatios()
		report.Rows = append(report.Rows, row)

		total.RealizedAmount += row.RealizedAmount
		total.TargetAmount += row.TargetAmount
		total.RealizedQuantity += row.RealizedQuantity
		total.TargetQuantity += row.TargetQuantity
		total.InvoiceCount += row.InvoiceCount
		total.ClientCount += row.ClientCount
	}

	total.DeriveRatios()
	report.Rows = append(report.Rows, total)

	return report, domain.ConditionNone, nil
}
