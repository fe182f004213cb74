// Package reporting carrega as vendas e metas visíveis ao usuário e executa os cálculos
// de desempenho comercial sobre elas.
package reporting

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/metrics"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
)

type Reporter interface {
	GetAvailablePeriods(scope domain.AccessScope) (*domain.AvailablePeriods, error)
	GetGoalAttainment(scope domain.AccessScope, filters domain.ReportFilters) (*domain.AttainmentReport, domain.Condition, error)
	GetDailyEffort(scope domain.AccessScope, filters domain.ReportFilters) (*domain.EffortPlan, domain.Condition, error)
	GetCategoryAttainment(scope domain.AccessScope, filters domain.ReportFilters, level domain.CategoryLevel) ([]*domain.CategoryAttainmentRow, error)
	GetBasicKPIs(scope domain.AccessScope, filters domain.ReportFilters) (*domain.BasicKPIs, error)
	GetWeeklyProjection(scope domain.AccessScope, filters domain.ReportFilters, week int) (*domain.ProjectionResult, domain.Condition, error)
	GetMonthlyProjection(scope domain.AccessScope, filters domain.ReportFilters) (*domain.ProjectionResult, domain.Condition, error)
	GetSalesPivot(scope domain.AccessScope, filters domain.ReportFilters) (*domain.SalesPivot, error)
	GetTopProducts(scope domain.AccessScope, filters domain.ReportFilters) ([]*domain.SalespersonProducts, error)
	QuerySales(scope domain.AccessScope, query domain.SalesQuery) (*domain.SalesQueryResult, error)
}

type Service struct {
	cfg        *config.Config
	salesRepo  repository.SalesRecordRepository
	budgetRepo repository.BudgetRecordRepository
	clock      metrics.Clock
}

func NewService(
	cfg *config.Config,
	salesRepo repository.SalesRecordRepository,
	budgetRepo repository.BudgetRecordRepository,
	clock metrics.Clock,
) Reporter {
	return &Service{
		cfg:        cfg,
		salesRepo:  salesRepo,
		budgetRepo: budgetRepo,
		clock:      clock,
	}
}

func (s *Service) GetAvailablePeriods(scope domain.AccessScope) (*domain.AvailablePeriods, error) {
	periods, err := s.salesRepo.GetAvailablePeriods(scope)
	if err != nil {
		logrus.WithError(err).Error("reporting: erro ao buscar períodos disponíveis")
		return nil, NewReportError(ErrFetchSales, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return periods, nil
}

func (s *Service) GetGoalAttainment(scope domain.AccessScope, filters domain.ReportFilters) (*domain.AttainmentReport, domain.Condition, error) {
	if err := validatePeriod(filters); err != nil {
		return nil, domain.ConditionNone, err
	}

	engine, err := s.load(scope, filters, true)
	if err != nil {
		return nil, domain.ConditionNone, err
	}

	report, condition, err := engine.GoalAttainment(filters.Month, filters.Year)
	if err != nil {
		return nil, domain.ConditionNone, calculationError(err)
	}

	return report, condition, nil
}

// GetDailyEffort parte da linha TOTAL do cumprimento do mês filtrado
func (s *Service) GetDailyEffort(scope domain.AccessScope, filters domain.ReportFilters) (*domain.EffortPlan, domain.Condition, error) {
	report, condition, err := s.GetGoalAttainment(scope, filters)
	if err != nil || condition != domain.ConditionNone {
		return nil, condition, err
	}

	engine := metrics.NewEngine(nil, nil, s.clock)
	plan, condition := engine.DailyEffort(report, s.cfg.Reporting.DailyClientsTarget)

	return plan, condition, nil
}

func (s *Service) GetCategoryAttainment(scope domain.AccessScope, filters domain.ReportFilters, level domain.CategoryLevel) ([]*domain.CategoryAttainmentRow, error) {
	if level != domain.LevelCategory && level != domain.LevelSubcategory {
		return nil, NewReportError(ErrInvalidGrouping, apiErrors.ErrInvalidRequest, string(level))
	}

	engine, err := s.load(scope, filters, true)
	if err != nil {
		return nil, err
	}

	rows, err := engine.CategoryAttainment(level)
	if err != nil {
		return nil, calculationError(err)
	}
	return rows, nil
}

func (s *Service) GetBasicKPIs(scope domain.AccessScope, filters domain.ReportFilters) (*domain.BasicKPIs, error) {
	engine, err := s.load(scope, filters, false)
	if err != nil {
		return nil, err
	}

	kpis, err := engine.BasicKPIs()
	if err != nil {
		return nil, calculationError(err)
	}
	return kpis, nil
}

func (s *Service) GetWeeklyProjection(scope domain.AccessScope, filters domain.ReportFilters, week int) (*domain.ProjectionResult, domain.Condition, error) {
	if week < 1 || week > 53 {
		return nil, domain.ConditionNone, NewReportError(ErrInvalidWeek, apiErrors.ErrInvalidPeriod, "a semana deve estar entre 1 e 53")
	}

	engine, err := s.load(scope, filters, false)
	if err != nil {
		return nil, domain.ConditionNone, err
	}

	result, condition, err := engine.WeeklyProjection(week)
	if err != nil {
		return nil, domain.ConditionNone, calculationError(err)
	}
	return result, condition, nil
}

func (s *Service) GetMonthlyProjection(scope domain.AccessScope, filters domain.ReportFilters) (*domain.ProjectionResult, domain.Condition, error) {
	if _, ok := domain.MonthNumber(filters.Month); !ok {
		return nil, domain.ConditionNone, NewReportError(ErrInvalidMonth, apiErrors.ErrInvalidPeriod, filters.Month)
	}

	engine, err := s.load(scope, filters, false)
	if err != nil {
		return nil, domain.ConditionNone, err
	}

	result, condition, err := engine.MonthlyProjection(filters.Month)
	if err != nil {
		return nil, domain.ConditionNone, calculationError(err)
	}
	return result, condition, nil
}

func (s *Service) GetSalesPivot(scope domain.AccessScope, filters domain.ReportFilters) (*domain.SalesPivot, error) {
	engine, err := s.load(scope, filters, false)
	if err != nil {
		return nil, err
	}

	pivot, err := engine.MonthlySalesPivot()
	if err != nil {
		return nil, calculationError(err)
	}
	return pivot, nil
}

func (s *Service) GetTopProducts(scope domain.AccessScope, filters domain.ReportFilters) ([]*domain.SalespersonProducts, error) {
	engine, err := s.load(scope, filters, false)
	if err != nil {
		return nil, err
	}

	products, err := engine.TopProducts(s.cfg.Reporting.TopProductsLimit)
	if err != nil {
		return nil, calculationError(err)
	}
	return products, nil
}

func (s *Service) QuerySales(scope domain.AccessScope, query domain.SalesQuery) (*domain.SalesQueryResult, error) {
	if !query.GroupBy.IsValid() {
		return nil, NewReportError(ErrInvalidGrouping, apiErrors.ErrInvalidRequest, string(query.GroupBy))
	}

	engine, err := s.load(scope, domain.ReportFilters{}, false)
	if err != nil {
		return nil, err
	}

	result, err := engine.QuerySales(query)
	if err != nil {
		return nil, calculationError(err)
	}
	return result, nil
}

// load busca as vendas do escopo, aplica os filtros e monta o motor de cálculo com elas.
// As metas só são buscadas quando o cálculo precisa delas.
func (s *Service) load(scope domain.AccessScope, filters domain.ReportFilters, withBudget bool) (*metrics.Engine, error) {
	sales, err := s.salesRepo.List(scope)
	if err != nil {
		logrus.WithError(err).Error("reporting: erro ao buscar vendas")
		return nil, NewReportError(ErrFetchSales, apiErrors.ErrDatabaseOperation, err.Error())
	}

	var budget []*domain.BudgetRecord
	if withBudget {
		budget, err = s.budgetRepo.List(scope)
		if err != nil {
			logrus.WithError(err).Error("reporting: erro ao buscar metas")
			return nil, NewReportError(ErrFetchBudget, apiErrors.ErrDatabaseOperation, err.Error())
		}
	}

	logrus.WithFields(logrus.Fields{
		"records_sales":  len(sales),
		"records_budget": len(budget),
		"salesperson":    scope.Salesperson,
	}).Debug("reporting: registros carregados")

	return metrics.NewEngine(filters.FilterSales(sales), budget, s.clock), nil
}

func validatePeriod(filters domain.ReportFilters) error {
	if filters.Year <= 0 {
		return NewReportError(ErrInvalidYear, apiErrors.ErrInvalidPeriod, "o ano é obrigatório")
	}
	if _, ok := domain.MonthNumber(filters.Month); !ok {
		return NewReportError(ErrInvalidMonth, apiErrors.ErrInvalidPeriod, filters.Month)
	}
	return nil
}

func calculationError(err error) error {
	var fieldErr *domain.FieldError
	if errors.As(err, &fieldErr) {
		return NewReportError(ErrMalformedData, apiErrors.ErrMalformedData, fieldErr.Error())
	}
	return NewReportError(err, apiErrors.ErrInternalServer, "")
}
