package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

// parseReportFilters lê year, month e salespeople da query string.
// O mês aceita o nome em espanhol ou inglês e também o número de 1 a 12.
func parseReportFilters(r *http.Request) (domain.ReportFilters, error) {
	query := r.URL.Query()
	filters := domain.ReportFilters{
		Month:       parseMonth(query.Get("month")),
		Salespeople: parseList(query.Get("salespeople")),
	}

	if yearStr := query.Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return filters, fmt.Errorf("ano inválido: %s", yearStr)
		}
		filters.Year = year
	}

	return filters, nil
}

func parseMonth(value string) string {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		return domain.MonthName(time.Month(n))
	}
	return domain.NormalizeMonthName(value)
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseDateRange(r *http.Request) (*time.Time, *time.Time, error) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, nil, fmt.Errorf("data inicial inválida: %w", err)
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, nil, fmt.Errorf("data final inválida: %w", err)
	}

	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, nil, fmt.Errorf("a data final deve ser posterior à data inicial")
	}

	return startDate, endDate, nil
}

func parseSalesQuery(r *http.Request) (domain.SalesQuery, error) {
	query := r.URL.Query()
	startDate, endDate, err := parseDateRange(r)
	if err != nil {
		return domain.SalesQuery{}, err
	}

	return domain.SalesQuery{
		ProductCode: strings.TrimSpace(query.Get("product_code")),
		Description: strings.TrimSpace(query.Get("description")),
		ClientName:  strings.TrimSpace(query.Get("client")),
		StartDate:   startDate,
		EndDate:     endDate,
		Salespeople: parseList(query.Get("salespeople")),
		GroupBy:     domain.SalesGrouping(strings.ToLower(query.Get("group_by"))),
	}, nil
}

func parseCallFilters(r *http.Request) (domain.CallFilters, error) {
	startDate, endDate, err := parseDateRange(r)
	if err != nil {
		return domain.CallFilters{}, err
	}

	return domain.CallFilters{
		Salespeople: parseList(r.URL.Query().Get("salespeople")),
		StartDate:   startDate,
		EndDate:     endDate,
	}, nil
}
