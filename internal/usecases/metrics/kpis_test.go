package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func TestEngine_BasicKPIs(t *testing.T) {
	d := day(2024, 1, 10)
	t.Run("Deve calcular os indicadores básicos", func(t *testing.T) {
		sales := []*domain.SalesRecord{
			sale("A", "C1", "F1", 100, 1, d),
			sale("A", "C1", "F1", 50, 1, d),
			sale("A", "C1", "F2", 150, 2, d),
			sale("B", "C2", "F3", 300, 3, d),
		}

		engine := NewEngine(sales, nil, FixedClock{At: d})

		kpis, err := engine.BasicKPIs()

		require.NoError(t, err)
		assert.Equal(t, 2, kpis.UniqueClients)
		assert.Equal(t, 3, kpis.UniqueInvoices)
		assert.InDelta(t, 1.5, kpis.PurchaseFrequency.Value, 1e-9)
		assert.InDelta(t, 200.0, kpis.AverageTicket.Value, 1e-9)
		assert.InDelta(t, 300.0, kpis.AverageInvoice.Value, 1e-9)
	})

	t.Run("Deve retornar indicadores indefinidos para tabela vazia", func(t *testing.T) {
		engine := NewEngine([]*domain.SalesRecord{}, nil, FixedClock{At: d})

		kpis, err := engine.BasicKPIs()

		require.NoError(t, err)
		assert.Equal(t, 0, kpis.UniqueClients)
		assert.Equal(t, 0, kpis.UniqueInvoices)
		assert.False(t, kpis.PurchaseFrequency.Valid)
		assert.False(t, kpis.AverageTicket.Valid)
		assert.False(t, kpis.AverageInvoice.Valid)
	})
}
