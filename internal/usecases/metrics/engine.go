// Package metrics calcula os indicadores de desempenho comercial a partir
// das tabelas de vendas e metas.
package metrics

import (
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// Engine mantém as tabelas de vendas e metas e o relógio usado nos cálculos.
// Todas as operações leem as tabelas recebidas em NewEngine sem alterá-las.
type Engine struct {
	sales  []*domain.SalesRecord
	budget []*domain.BudgetRecord
	clock  Clock
}

func NewEngine(sales []*domain.SalesRecord, budget []*domain.BudgetRecord, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}

	return &Engine{
		sales:  sales,
		budget: budget,
		clock:  clock,
	}
}

func validateSales(records []*domain.SalesRecord) error {
	for i, r := range records {
		if err := r.Validate(i); err != nil {
			return err
		}
	}
	return nil
}

func validateBudget(records []*domain.BudgetRecord) error {
	for i, r := range records {
		if err := r.Validate(i); err != nil {
			return err
		}
	}
	return nil
}

// stringSet conta valores distintos
type stringSet map[string]struct{}

func (s stringSet) add(v string) {
	s[v] = struct{}{}
}
