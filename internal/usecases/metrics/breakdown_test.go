package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func withProduct(s *domain.SalesRecord, code, description, category, subcategory string) *domain.SalesRecord {
	s.ProductCode = code
	s.ProductDescription = description
	s.Category = category
	s.Subcategory = subcategory
	return s
}

func TestEngine_CategoryAttainment(t *testing.T) {
	d := day(2024, 1, 10)
	sales := []*domain.SalesRecord{
		withProduct(sale("A", "C1", "F1", 300, 3, d), "P1", "Filtro", "Repuestos", "Filtros"),
		withProduct(sale("A", "C1", "F1", 200, 2, d), "P2", "Aceite", "Lubricantes", "Aceites"),
		withProduct(sale("B", "C2", "F2", 100, 1, d), "P1", "Filtro", "Repuestos", "Filtros"),
		withProduct(sale("B", "C2", "F2", 50, 1, d), "P9", "Sin categoría", "", ""),
	}
	b := []*domain.BudgetRecord{
		{SalespersonID: "A", Month: "Enero", Year: 2024, Amount: 600, Category: "Repuestos", Subcategory: "Filtros"},
		{SalespersonID: "B", Month: "Enero", Year: 2024, Amount: 400, Category: "Repuestos", Subcategory: "Filtros"},
	}
	engine := NewEngine(sales, b, FixedClock{At: d})

	t.Run("Deve agrupar por categoria com metas ausentes indefinidas", func(t *testing.T) {
		rows, err := engine.CategoryAttainment(domain.LevelCategory)

		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "A", rows[0].SalespersonID)
		assert.Equal(t, "Lubricantes", rows[0].Category)
		assert.False(t, rows[0].Percent.Valid)

		assert.Equal(t, "Repuestos", rows[1].Category)
		assert.InDelta(t, 50.0, rows[1].Percent.Value, 1e-9)

		assert.Equal(t, "B", rows[2].SalespersonID)
		assert.InDelta(t, 25.0, rows[2].Percent.Value, 1e-9)
	})

	t.Run("Deve agrupar por subcategoria", func(t *testing.T) {
		rows, err := engine.CategoryAttainment(domain.LevelSubcategory)

		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Aceites", rows[0].Subcategory)
		assert.Equal(t, "Filtros", rows[1].Subcategory)
		assert.Equal(t, 600.0, rows[1].TargetAmount)
	})
}

func TestEngine_MonthlySalesPivot(t *testing.T) {
	sales := []*domain.SalesRecord{
		sale("B", "C1", "F1", 100, 1, day(2024, 3, 4)),
		sale("A", "C1", "F2", 50, 1, day(2024, 1, 4)),
		sale("A", "C1", "F3", 70, 1, day(2024, 3, 5)),
		sale("A", "C1", "F4", 30, 1, day(2024, 3, 6)),
	}
	engine := NewEngine(sales, nil, nil)

	pivot, err := engine.MonthlySalesPivot()

	require.NoError(t, err)
	assert.Equal(t, []string{"Enero", "Marzo"}, pivot.Months)
	require.Len(t, pivot.Rows, 2)
	assert.Equal(t, "A", pivot.Rows[0].SalespersonID)
	assert.Equal(t, []float64{50, 100}, pivot.Rows[0].Amounts)
	assert.Equal(t, 150.0, pivot.Rows[0].Total)
	assert.Equal(t, []float64{0, 100}, pivot.Rows[1].Amounts)
}

func TestEngine_TopProducts(t *testing.T) {
	d := day(2024, 1, 10)
	sales := []*domain.SalesRecord{
		withProduct(sale("A", "C1", "F1", 10, 1, d), "P1", "Filtro", "", ""),
		withProduct(sale("A", "C1", "F1", 40, 2, d), "P2", "Aceite", "", ""),
		withProduct(sale("A", "C1", "F2", 15, 1, d), "P1", "Filtro", "", ""),
		withProduct(sale("A", "C1", "F2", 5, 1, d), "P3", "Bujía", "", ""),
		withProduct(sale("B", "C2", "F3", 5, 1, d), "P3", "Bujía", "", ""),
	}
	engine := NewEngine(sales, nil, nil)

	result, err := engine.TopProducts(2)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "A", result[0].SalespersonID)
	require.Len(t, result[0].Products, 2)
	assert.Equal(t, "P2", result[0].Products[0].ProductCode)
	assert.Equal(t, "P1", result[0].Products[1].ProductCode)
	assert.Equal(t, 25.0, result[0].Products[1].Amount)
	assert.Equal(t, 2.0, result[0].Products[1].Quantity)
	assert.Len(t, result[1].Products, 1)
}
