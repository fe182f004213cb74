package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func effortReport() *domain.AttainmentReport {
	total := &domain.AttainmentRow{
		SalespersonID:    domain.TotalRowLabel,
		RealizedAmount:   1300,
		TargetAmount:     2600,
		RealizedQuantity: 13,
		TargetQuantity:   26,
		InvoiceCount:     2,
		ClientCount:      1,
	}
	total.DeriveRatios()

	return &domain.AttainmentReport{Month: "Enero", Year: 2024, Rows: []*domain.AttainmentRow{total}}
}

func TestEngine_DailyEffort(t *testing.T) {
	t.Run("Deve calcular o esforço diário restante", func(t *testing.T) {
		engine := NewEngine(nil, nil, FixedClock{At: day(2024, 1, 15)})

		plan, condition := engine.DailyEffort(effortReport(), 25)

		assert.Equal(t, domain.ConditionNone, condition)
		require.NotNil(t, plan)
		assert.Equal(t, 25.0, plan.TotalWorkingDays)
		assert.Equal(t, 12.0, plan.ElapsedWorkingDays)
		assert.Equal(t, 13.0, plan.RemainingWorkingDays)

		assert.Equal(t, 625.0, plan.Target.Clients)
		assert.InDelta(t, 100.0, plan.Target.Ticket, 1e-9)
		assert.InDelta(t, 4.16, plan.Target.Invoice, 1e-9)

		assert.InDelta(t, 2.0/12.0, plan.Realized.ClientsPerDay, 1e-9)
		assert.InDelta(t, 100.0, plan.Realized.Ticket, 1e-9)
		assert.InDelta(t, 650.0, plan.Realized.Invoice, 1e-9)

		assert.InDelta(t, 100.0, plan.Required.AmountPerDay, 1e-9)
		assert.InDelta(t, 1.0, plan.Required.QuantityPerDay, 1e-9)
		assert.InDelta(t, 623.0/13.0, plan.Required.ClientsPerDay, 1e-9)
		assert.InDelta(t, 100.0, plan.Required.Ticket, 1e-9)
		assert.InDelta(t, 1300.0/623.0, plan.Required.Invoice, 1e-9)
	})

	t.Run("Deve zerar o faltante quando a meta já foi atingida", func(t *testing.T) {
		engine := NewEngine(nil, nil, FixedClock{At: day(2024, 1, 15)})
		report := effortReport()
		report.Total().RealizedAmount = 5000

		plan, _ := engine.DailyEffort(report, 25)

		require.NotNil(t, plan)
		assert.Equal(t, 0.0, plan.Required.MissingAmount)
		assert.Equal(t, 0.0, plan.Required.AmountPerDay)
		assert.Equal(t, 0.0, plan.Required.Ticket)
	})

	t.Run("Deve sinalizar mês encerrado no último dia", func(t *testing.T) {
		engine := NewEngine(nil, nil, FixedClock{At: day(2024, 1, 31)})

		plan, condition := engine.DailyEffort(effortReport(), 25)

		assert.Nil(t, plan)
		assert.Equal(t, domain.ConditionMonthClosed, condition)
	})
}
