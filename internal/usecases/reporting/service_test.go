package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-performance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/metrics"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
)

func newSale(salesperson, client, invoice string, amount float64, date time.Time) *domain.SalesRecord {
	s := &domain.SalesRecord{
		ClientID:      client,
		ClientName:    "Cliente " + client,
		InvoiceID:     invoice,
		SalespersonID: salesperson,
		ProductCode:   "P1",
		Amount:        amount,
		Quantity:      1,
		Date:          date,
	}
	s.DeriveCalendarFields()
	return s
}

func setup(t *testing.T, now time.Time) (Reporter, *mocks.MockSalesRecordRepository, *mocks.MockBudgetRecordRepository) {
	ctrl := gomock.NewController(t)
	salesRepo := mocks.NewMockSalesRecordRepository(ctrl)
	budgetRepo := mocks.NewMockBudgetRecordRepository(ctrl)

	cfg := &config.Config{
		Reporting: config.Reporting{DailyClientsTarget: 25, TopProductsLimit: 60},
	}

	return NewService(cfg, salesRepo, budgetRepo, metrics.FixedClock{At: now}), salesRepo, budgetRepo
}

func TestGetGoalAttainment(t *testing.T) {
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	sales := []*domain.SalesRecord{
		newSale("A", "C1", "F1", 600, jan),
		newSale("B", "C2", "F2", 400, jan),
		newSale("A", "C3", "F3", 999, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)),
	}
	budget := []*domain.BudgetRecord{
		{SalespersonID: "A", Month: "Enero", Year: 2024, Amount: 1000},
		{SalespersonID: "B", Month: "Enero", Year: 2024, Amount: 1000},
	}

	t.Run("Deve calcular o cumprimento do mês filtrando o ano", func(t *testing.T) {
		service, salesRepo, budgetRepo := setup(t, jan)
		salesRepo.EXPECT().List(domain.Unrestricted()).Return(sales, nil)
		budgetRepo.EXPECT().List(domain.Unrestricted()).Return(budget, nil)

		report, condition, err := service.GetGoalAttainment(domain.Unrestricted(), domain.ReportFilters{Year: 2024, Month: "Enero"})

		require.NoError(t, err)
		assert.Equal(t, domain.ConditionNone, condition)
		require.Len(t, report.Rows, 3)
		total := report.Total()
		require.NotNil(t, total)
		assert.Equal(t, 1000.0, total.RealizedAmount)
		assert.InDelta(t, 50.0, total.PercentAmount.Value, 1e-9)
	})

	t.Run("Deve repassar o escopo do vendedor aos repositórios", func(t *testing.T) {
		scope := domain.ScopeFor("A")
		service, salesRepo, budgetRepo := setup(t, jan)
		salesRepo.EXPECT().List(scope).Return(sales[:1], nil)
		budgetRepo.EXPECT().List(scope).Return(budget[:1], nil)

		report, _, err := service.GetGoalAttainment(scope, domain.ReportFilters{Year: 2024, Month: "Enero"})

		require.NoError(t, err)
		require.Len(t, report.Salespeople(), 1)
		assert.Equal(t, "A", report.Salespeople()[0].SalespersonID)
	})

	t.Run("Deve retornar no_data sem vendas e sem metas", func(t *testing.T) {
		service, salesRepo, budgetRepo := setup(t, jan)
		salesRepo.EXPECT().List(gomock.Any()).Return([]*domain.SalesRecord{}, nil)
		budgetRepo.EXPECT().List(gomock.Any()).Return([]*domain.BudgetRecord{}, nil)

		report, condition, err := service.GetGoalAttainment(domain.Unrestricted(), domain.ReportFilters{Year: 2024, Month: "Enero"})

		require.NoError(t, err)
		assert.Nil(t, report)
		assert.Equal(t, domain.ConditionNoData, condition)
	})

	t.Run("Deve rejeitar mês inválido sem consultar o banco", func(t *testing.T) {
		service, _, _ := setup(t, jan)

		_, _, err := service.GetGoalAttainment(domain.Unrestricted(), domain.ReportFilters{Year: 2024, Month: "Smarch"})

		var reportErr *ReportError
		require.True(t, errors.As(err, &reportErr))
		assert.Equal(t, apiErrors.ErrInvalidPeriod, reportErr.Code)
		assert.True(t, errors.Is(err, ErrInvalidMonth))
	})

	t.Run("Deve retornar erro de banco quando a busca de vendas falha", func(t *testing.T) {
		service, salesRepo, _ := setup(t, jan)
		salesRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))

		_, _, err := service.GetGoalAttainment(domain.Unrestricted(), domain.ReportFilters{Year: 2024, Month: "Enero"})

		var reportErr *ReportError
		require.True(t, errors.As(err, &reportErr))
		assert.Equal(t, apiErrors.ErrDatabaseOperation, reportErr.Code)
		assert.True(t, errors.Is(err, ErrFetchSales))
	})

	t.Run("Deve converter registro malformado em erro de dados", func(t *testing.T) {
		broken := newSale("", "C1", "F1", 10, jan)
		service, salesRepo, budgetRepo := setup(t, jan)
		salesRepo.EXPECT().List(gomock.Any()).Return([]*domain.SalesRecord{broken}, nil)
		budgetRepo.EXPECT().List(gomock.Any()).Return(budget, nil)

		_, _, err := service.GetGoalAttainment(domain.Unrestricted(), domain.ReportFilters{Year: 2024, Month: "Enero"})

		var reportErr *ReportError
		require.True(t, errors.As(err, &reportErr))
		assert.Equal(t, apiErrors.ErrMalformedData, reportErr.Code)
	})
}

func TestGetDailyEffort(t *testing.T) {
	sales := []*domain.SalesRecord{
		newSale("A", "C1", "F1", 500, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
	}
	budget := []*domain.BudgetRecord{
		{SalespersonID: "A", Month: "Enero", Year: 2024, Amount: 1000, Quantity: 10},
	}

	t.Run("Deve montar o plano diário a partir da linha TOTAL", func(t *testing.T) {
		service, salesRepo, budgetRepo := setup(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
		salesRepo.EXPECT().List(gomock.Any()).Return(sales, nil)
		budgetRepo.EXPECT().List(gomock.Any()).Return(budget, nil)

		plan, condition, err := service.GetDailyEffort(domain.Unrestricted(), domain.ReportFilters{Year: 2024, Month: "Enero"})

		require.NoError(t, err)
		assert.Equal(t, domain.ConditionNone, condition)
		require.NotNil(t, plan)
		assert.Equal(t, 25.0, plan.TotalWorkingDays)
		assert.Equal(t, 13.0, plan.RemainingWorkingDays)
		assert.Equal(t, 500.0, plan.Required.MissingAmount)
		assert.Equal(t, 25.0, plan.Target.ClientsPerDay)
	})

	t.Run("Deve repassar a condição do cumprimento", func(t *testing.T) {
		service, salesRepo, budgetRepo := setup(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
		salesRepo.EXPECT().List(gomock.Any()).Return(sales, nil)
		budgetRepo.EXPECT().List(gomock.Any()).Return([]*domain.BudgetRecord{}, nil)

		plan, condition, err := service.GetDailyEffort(domain.Unrestricted(), domain.ReportFilters{Year: 2024, Month: "Enero"})

		require.NoError(t, err)
		assert.Nil(t, plan)
		assert.Equal(t, domain.ConditionBudgetMissing, condition)
	})
}

func TestProjections(t *testing.T) {
	monday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	sales := []*domain.SalesRecord{
		newSale("A", "C1", "F1", 100, monday),
		newSale("A", "C2", "F2", 200, tuesday),
	}

	t.Run("Deve projetar a semana sem consultar metas", func(t *testing.T) {
		service, salesRepo, _ := setup(t, time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC))
		salesRepo.EXPECT().List(gomock.Any()).Return(sales, nil)

		result, condition, err := service.GetWeeklyProjection(domain.Unrestricted(), domain.ReportFilters{Year: 2024}, 3)

		require.NoError(t, err)
		assert.Equal(t, domain.ConditionNone, condition)
		require.NotNil(t, result)
		assert.InDelta(t, 330.0, result.Forecast, 1e-9)
	})

	t.Run("Deve rejeitar semana fora do intervalo", func(t *testing.T) {
		service, _, _ := setup(t, monday)

		_, _, err := service.GetWeeklyProjection(domain.Unrestricted(), domain.ReportFilters{Year: 2024}, 54)

		assert.True(t, errors.Is(err, ErrInvalidWeek))
	})

	t.Run("Deve sinalizar ausência de dados quando o mês não tem vendas", func(t *testing.T) {
		service, salesRepo, _ := setup(t, monday)
		salesRepo.EXPECT().List(gomock.Any()).Return(sales, nil)

		result, condition, err := service.GetMonthlyProjection(domain.Unrestricted(), domain.ReportFilters{Year: 2024, Month: "Marzo"})

		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Equal(t, domain.ConditionNoData, condition)
	})

	t.Run("Deve sinalizar ausência de dados quando a semana não tem vendas", func(t *testing.T) {
		service, salesRepo, _ := setup(t, monday)
		salesRepo.EXPECT().List(gomock.Any()).Return(sales, nil)

		result, condition, err := service.GetWeeklyProjection(domain.Unrestricted(), domain.ReportFilters{Year: 2024}, 10)

		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Equal(t, domain.ConditionNoData, condition)
	})
}

func TestQuerySales(t *testing.T) {
	t.Run("Deve rejeitar agrupamento desconhecido", func(t *testing.T) {
		service, _, _ := setup(t, time.Now())

		_, err := service.QuerySales(domain.Unrestricted(), domain.SalesQuery{GroupBy: "product"})

		var reportErr *ReportError
		require.True(t, errors.As(err, &reportErr))
		assert.Equal(t, apiErrors.ErrInvalidRequest, reportErr.Code)
	})

	t.Run("Deve filtrar por cliente e agrupar por vendedor", func(t *testing.T) {
		day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		service, salesRepo, _ := setup(t, day)
		salesRepo.EXPECT().List(gomock.Any()).Return([]*domain.SalesRecord{
			newSale("A", "C1", "F1", 100, day),
			newSale("B", "C1", "F2", 50, day),
			newSale("B", "C2", "F3", 70, day),
		}, nil)

		result, err := service.QuerySales(domain.Unrestricted(), domain.SalesQuery{
			ClientName: "cliente c1",
			GroupBy:    domain.GroupSalesperson,
		})

		require.NoError(t, err)
		require.Len(t, result.Records, 2)
		require.Len(t, result.Groups, 2)
		assert.Equal(t, 150.0, result.Totals.Amount)
	})
}

func TestGetAvailablePeriods(t *testing.T) {
	t.Run("Deve retornar os períodos do repositório", func(t *testing.T) {
		service, salesRepo, _ := setup(t, time.Now())
		expected := &domain.AvailablePeriods{Years: []int{2024}, Months: []string{"Enero"}, Weeks: []int{2, 1}}
		salesRepo.EXPECT().GetAvailablePeriods(domain.Unrestricted()).Return(expected, nil)

		periods, err := service.GetAvailablePeriods(domain.Unrestricted())

		require.NoError(t, err)
		assert.Equal(t, expected, periods)
	})
}
