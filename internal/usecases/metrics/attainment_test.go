package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func TestEngine_GoalAttainment(t *testing.T) {
	jan := day(2024, 1, 10)

	tests := []struct {
		name      string
		sales     []*domain.SalesRecord
		budget    []*domain.BudgetRecord
		month     string
		year      int
		condition domain.Condition
		validate  func(t *testing.T, report *domain.AttainmentReport)
	}{
		{
			name:   "Deve calcular o cumprimento de um vendedor com meta e venda",
			sales:  []*domain.SalesRecord{sale("A", "C1", "F1", 600, 5, jan)},
			budget: []*domain.BudgetRecord{budget("A", "Enero", 2024, 1000, 10)},
			month:  "Enero",
			year:   2024,
			validate: func(t *testing.T, report *domain.AttainmentReport) {
				require.Len(t, report.Rows, 2)
				row := report.Rows[0]
				assert.Equal(t, "A", row.SalespersonID)
				assert.InDelta(t, 60.0, row.PercentAmount.Value, 1e-9)
				assert.InDelta(t, 50.0, row.PercentQuantity.Value, 1e-9)
				assert.InDelta(t, 600.0, row.AverageTicket.Value, 1e-9)
				assert.InDelta(t, 600.0, row.AverageInvoice.Value, 1e-9)
				assert.Equal(t, 1, row.InvoiceCount)
				assert.Equal(t, 1, row.ClientCount)
				assert.Equal(t, domain.TotalRowLabel, report.Total().SalespersonID)
			},
		},
		{
			name:      "Deve sinalizar vendas sem meta cadastrada",
			sales:     []*domain.SalesRecord{sale("A", "C1", "F1", 600, 5, day(2024, 3, 5))},
			budget:    []*domain.BudgetRecord{budget("A", "Enero", 2024, 1000, 10)},
			month:     "Marzo",
			year:      2024,
			condition: domain.ConditionBudgetMissing,
		},
		{
			name:      "Deve sinalizar ausência de dados",
			sales:     []*domain.SalesRecord{},
			budget:    []*domain.BudgetRecord{},
			month:     "Marzo",
			year:      2024,
			condition: domain.ConditionNoData,
		},
		{
			name:      "Deve tratar meta zerada como ausente",
			sales:     []*domain.SalesRecord{sale("A", "C1", "F1", 600, 5, jan)},
			budget:    []*domain.BudgetRecord{budget("A", "Enero", 2024, 0, 10)},
			month:     "Enero",
			year:      2024,
			condition: domain.ConditionBudgetMissing,
		},
		{
			name: "Deve incluir vendedores presentes em apenas um dos lados",
			sales: []*domain.SalesRecord{
				sale("B", "C1", "F1", 200, 2, jan),
			},
			budget: []*domain.BudgetRecord{
				budget("A", "Enero", 2024, 1000, 10),
			},
			month: "Enero",
			year:  2024,
			validate: func(t *testing.T, report *domain.AttainmentReport) {
				require.Len(t, report.Rows, 3)

				a, b := report.Rows[0], report.Rows[1]
				assert.Equal(t, "A", a.SalespersonID)
				assert.Equal(t, 0.0, a.RealizedAmount)
				assert.Equal(t, 1000.0, a.TargetAmount)
				assert.False(t, a.AverageTicket.Valid)

				assert.Equal(t, "B", b.SalespersonID)
				assert.Equal(t, 200.0, b.RealizedAmount)
				assert.Equal(t, 0.0, b.TargetAmount)
				assert.False(t, b.PercentAmount.Valid)
			},
		},
		{
			name: "Deve somar metas repetidas e calcular o TOTAL pelos somatórios",
			sales: []*domain.SalesRecord{
				sale("A", "C1", "F1", 100, 1, jan),
				sale("A", "C1", "F1", 100, 1, jan),
				sale("B", "C2", "F2", 900, 9, jan),
				sale("B", "C3", "F3", 0, 0, day(2024, 2, 1)),
			},
			budget: []*domain.BudgetRecord{
				budget("A", "Enero", 2024, 100, 2),
				budget("A", "Enero", 2024, 100, 2),
				budget("B", "Enero", 2024, 1800, 18),
				budget("B", "Febrero", 2024, 5000, 50),
			},
			month: "Enero",
			year:  2024,
			validate: func(t *testing.T, report *domain.AttainmentReport) {
				require.Len(t, report.Rows, 3)
				assert.Equal(t, 200.0, report.Rows[0].TargetAmount)
				assert.InDelta(t, 100.0, report.Rows[0].PercentAmount.Value, 1e-9)
				assert.InDelta(t, 50.0, report.Rows[1].PercentAmount.Value, 1e-9)

				total := report.Total()
				assert.Equal(t, 1100.0, total.RealizedAmount)
				assert.Equal(t, 2000.0, total.TargetAmount)
				assert.Equal(t, 2, total.InvoiceCount)
				assert.Equal(t, 2, total.ClientCount)
				// 1100 / 2000, e não a média de 100% e 50%
				assert.InDelta(t, 55.0, total.PercentAmount.Value, 1e-9)
				assert.InDelta(t, 550.0, total.AverageTicket.Value, 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(tt.sales, tt.budget, FixedClock{At: jan})

			report, condition, err := engine.GoalAttainment(tt.month, tt.year)

			assert.NoError(t, err)
			assert.Equal(t, tt.condition, condition)
			if tt.validate == nil {
				assert.Nil(t, report)
				return
			}
			require.NotNil(t, report)
			assert.Equal(t, tt.month, report.Month)
			assert.Equal(t, tt.year, report.Year)
			tt.validate(t, report)
		})
	}
}

func TestEngine_GoalAttainment_Monotonicidade(t *testing.T) {
	jan := day(2024, 1, 10)
	b := []*domain.BudgetRecord{budget("A", "Enero", 2024, 1000, 10)}

	previous := -1.0
	for _, amount := range []float64{0, 100, 250, 999, 1500} {
		engine := NewEngine([]*domain.SalesRecord{sale("A", "C1", "F1", amount, 1, jan)}, b, FixedClock{At: jan})
		report, _, err := engine.GoalAttainment("Enero", 2024)
		require.NoError(t, err)
		assert.Greater(t, report.Rows[0].PercentAmount.Value, previous)
		previous = report.Rows[0].PercentAmount.Value
	}
}

func TestEngine_GoalAttainment_CampoAusente(t *testing.T) {
	jan := day(2024, 1, 10)
	invalid := sale("", "C1", "F1", 100, 1, jan)
	engine := NewEngine([]*domain.SalesRecord{invalid}, []*domain.BudgetRecord{budget("A", "Enero", 2024, 1000, 10)}, FixedClock{At: jan})

	report, _, err := engine.GoalAttainment("Enero", 2024)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrMissingField)

	var fieldErr *domain.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, domain.SalesTable, fieldErr.Table)
	assert.Equal(t, "VDE", fieldErr.Field)
	assert.Equal(t, 0, fieldErr.Row)
}
