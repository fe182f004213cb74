package sheets

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func TestParseSales(t *testing.T) {
	header := []string{"CODIGO", "CLIENTE", "Documento", "Fecha", "Total", "VDE", "COD_PROD", "Descripcion", "Cantidad", "CATEGORIA"}

	t.Run("Deve converter linhas e derivar campos de calendário", func(t *testing.T) {
		rows := [][]string{
			header,
			{"C1", "Ferretería Sur", "F-001", "2024-01-15", "1500.5", "VDE_1", "P10", "Tornillo", "3", "Fijaciones"},
		}

		records, err := ParseSales(rows)

		require.NoError(t, err)
		require.Len(t, records, 1)
		r := records[0]
		assert.Equal(t, "C1", r.ClientID)
		assert.Equal(t, "Ferretería Sur", r.ClientName)
		assert.Equal(t, "F-001", r.InvoiceID)
		assert.Equal(t, "VDE_1", r.SalespersonID)
		assert.Equal(t, "P10", r.ProductCode)
		assert.Equal(t, 1500.5, r.Amount)
		assert.Equal(t, 3.0, r.Quantity)
		assert.Equal(t, 2024, r.Year)
		assert.Equal(t, "Enero", r.Month)
		assert.Equal(t, 3, r.Week)
		assert.Equal(t, "Monday", r.Weekday)
		assert.Equal(t, "Fijaciones", r.Category)
	})

	t.Run("Deve descartar linhas com data ou valor inválidos", func(t *testing.T) {
		rows := [][]string{
			header,
			{"C1", "A", "F-1", "sin fecha", "100", "VDE_1", "", "", "", ""},
			{"C2", "B", "F-2", "2024-01-15", "abc", "VDE_1", "", "", "", ""},
			{"C3", "C", "F-3", "15/01/2024", "200", "VDE_2", "", "", "", ""},
			{"", "D", "F-4", "2024-01-15", "50", "VDE_2", "", "", "", ""},
		}

		records, err := ParseSales(rows)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "C3", records[0].ClientID)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), records[0].Date)
	})

	t.Run("Deve descartar valores não finitos", func(t *testing.T) {
		rows := [][]string{
			header,
			{"C1", "A", "F-1", "2024-01-15", "NaN", "VDE_1", "", "", "", ""},
			{"C2", "B", "F-2", "2024-01-15", "Inf", "VDE_1", "", "", "", ""},
			{"C3", "C", "F-3", "2024-01-15", "-infinity", "VDE_1", "", "", "", ""},
			{"C4", "D", "F-4", "2024-01-15", "75", "VDE_1", "", "", "NaN", ""},
		}

		records, err := ParseSales(rows)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "C4", records[0].ClientID)
		assert.Equal(t, 75.0, records[0].Amount)
		assert.Equal(t, 0.0, records[0].Quantity)
	})

	t.Run("Deve retornar FieldError quando falta uma coluna obrigatória", func(t *testing.T) {
		rows := [][]string{{"CODIGO", "CLIENTE", "Documento", "Fecha", "VDE"}}

		records, err := ParseSales(rows)

		assert.Nil(t, records)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrMissingField))

		var fieldErr *domain.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "Total", fieldErr.Field)
		assert.Equal(t, -1, fieldErr.Row)
	})

	t.Run("Deve aceitar cabeçalho com espaços", func(t *testing.T) {
		rows := [][]string{
			{" CODIGO", "CLIENTE ", "Documento", "Fecha", "Total", "VDE"},
			{"C1", "A", "F-1", "2024-02-01", "10", "VDE_1"},
		}

		records, err := ParseSales(rows)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Febrero", records[0].Month)
	})
}

func TestParseBudget(t *testing.T) {
	t.Run("Deve limpar o valor e traduzir o mês", func(t *testing.T) {
		rows := [][]string{
			{"VDE", "MONTO", "CANTIDAD", "MES", "ANO"},
			{"VDE_1", "$1,000,000", "50", "January", "2024"},
			{"VDE_2", "", "", "Febrero", "2024"},
		}

		records, err := ParseBudget(rows)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, 1000000.0, records[0].Amount)
		assert.Equal(t, 50.0, records[0].Quantity)
		assert.Equal(t, "Enero", records[0].Month)
		assert.Equal(t, 2024, records[0].Year)
		assert.Equal(t, 0.0, records[1].Amount)
		assert.Equal(t, "Febrero", records[1].Month)
	})

	t.Run("Deve obter o mês da data quando o mês é desconhecido", func(t *testing.T) {
		rows := [][]string{
			{"VDE", "MONTO", "MES", "Fecha"},
			{"VDE_1", "100", "", "2024-03-10"},
		}

		records, err := ParseBudget(rows)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Marzo", records[0].Month)
		assert.Equal(t, 2024, records[0].Year)
	})

	t.Run("Deve retornar FieldError sem a coluna MONTO", func(t *testing.T) {
		_, err := ParseBudget([][]string{{"VDE", "MES"}})

		var fieldErr *domain.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "MONTO", fieldErr.Field)
		assert.Equal(t, domain.BudgetTable, fieldErr.Table)
	})
}

func TestParseCalls(t *testing.T) {
	t.Run("Deve extrair a data do nome do arquivo", func(t *testing.T) {
		rows := [][]string{
			{"Vendedor", "Archivo", "Duración (seg)", "% Apego al guion", "% Sentimiento", "Evaluación Fluidez", "Transcripción completa"},
			{"VDE_1", "llamada_2024-05-20_cliente.mp3", "90", "80", "60", "Buena", "eh bueno este"},
			{"VDE_2", "sin_fecha.mp3", "30", "50", "40", "Malo", ""},
		}

		records, err := ParseCalls(rows)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), records[0].Date)
		assert.Equal(t, "Mayo", records[0].Month)
		assert.Equal(t, 90.0, records[0].DurationSeconds)
		assert.Equal(t, "Buena", records[0].FluencyRating)
		assert.True(t, records[1].Date.IsZero())
		assert.Empty(t, records[1].Month)
	})
}
