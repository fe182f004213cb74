package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
)

// GetAvailablePeriods retorna os anos, meses e semanas presentes nas vendas do usuário
func GetAvailablePeriods(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scope, ok := requestScope(w, r)
		if !ok {
			return
		}

		periods, err := service.GetAvailablePeriods(scope)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar períodos disponíveis")
			return
		}

		writeJSON(w, http.StatusOK, periods)
	}
}

// GetGoalAttainment retorna o cumprimento de metas por vendedor com a linha TOTAL
func GetGoalAttainment(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		scope, ok := requestScope(w, r)
		if !ok {
			return
		}

		report, condition, err := service.GetGoalAttainment(scope, filters)
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular o cumprimento de metas")
			return
		}

		writeReport(w, condition, filters, report)
	}
}

func GetDailyEffort(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		scope, ok := requestScope(w, r)
		if !ok {
			return
		}

		plan, condition, err := service.GetDailyEffort(scope, filters)
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular o esforço diário")
			return
		}

		writeReport(w, condition, filters, plan)
	}
}

func GetCategoryAttainment(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		level := domain.CategoryLevel(r.URL.Query().Get("level"))
		if level == "" {
			level = domain.LevelCategory
		}

		scope, ok := requestScope(w, r)
		if !ok {
			return
		}

		rows, err := service.GetCategoryAttainment(scope, filters, level)
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular o cumprimento por categoria")
			return
		}

		writeJSON(w, http.StatusOK, rows)
	}
}

// GetBasicKPIs retorna os indicadores básicos das vendas filtradas
func GetBasicKPIs(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		scope, ok := requestScope(w, r)
		if !ok {
			return
		}

		kpis, err := service.GetBasicKPIs(scope, filters)
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular os indicadores")
			return
		}

		writeJSON(w, http.StatusOK, kpis)
	}
}

// GetWeeklyProjection projeta o fechamento da semana ISO informada em ?week=
func GetWeeklyProjection(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		week, err := strconv.Atoi(r.URL.Query().Get("week"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Semana inválida ou não informada", nil)
			return
		}

		scope, ok := requestScope(w, r)
		if !ok {
			return
		}

		result, condition, err := service.GetWeeklyProjection(scope, filters, week)
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular a projeção semanal")
			return
		}

		writeConditional(w, condition, condition.PeriodMessage(fmt.Sprintf("la semana %d", week)), result)
	}
}

func GetMonthlyProjection(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		scope, ok := requestScope(w, r)
		if !ok {
			return
		}

		result, condition, err := service.GetMonthlyProjection(scope, filters)
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular a projeção mensal")
			return
		}

		writeConditional(w, condition, condition.PeriodMessage(filters.Month), result)
	}
}

func GetSalesPivot(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		scope, ok := requestScope(w, r)
		if !ok {
			return
		}

		pivot, err := service.GetSalesPivot(scope, filters)
		if err != nil {
			writeServiceError(w, err, "Erro ao montar a tabela de vendas mensais")
			return
		}

		writeJSON(w, http.StatusOK, pivot)
	}
}

func GetTopProducts(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		scope, ok := requestScope(w, r)
		if !ok {
			return
		}

		products, err := service.GetTopProducts(scope, filters)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar os produtos mais vendidos")
			return
		}

		writeJSON(w, http.StatusOK, products)
	}
}

// QuerySales consulta as vendas por produto, descrição ou cliente em um intervalo de datas
func QuerySales(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := parseSalesQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		scope, ok := requestScope(w, r)
		if !ok {
			return
		}

		result, err := service.QuerySales(scope, query)
		if err != nil {
			writeServiceError(w, err, "Erro ao consultar vendas")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
