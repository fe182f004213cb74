// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

const salesRecordsTable = "sales_records"

var salesRecordColumns = []string{
	"sync_id",
	"client_id",
	"client_name",
	"invoice_id",
	"salesperson_id",
	"product_code",
	"product_description",
	"category",
	"subcategory",
	"quantity",
	"amount",
	"date",
	"year",
	"month",
	"week",
	"weekday",
}

type SalesRecordRepository interface {
	List(scope domain.AccessScope) ([]*domain.SalesRecord, error)
	GetAvailablePeriods(scope domain.AccessScope) (*domain.AvailablePeriods, error)
}

type salesRecordRepository struct {
	conn *postgres.Connection
}

func NewSalesRecordRepository(conn *postgres.Connection) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

// replaceSalesRecords substitui todas as vendas pela carga atual dentro da transação q
func replaceSalesRecords(ctx context.Context, q postgres.Queryer, syncID string, records []*domain.SalesRecord) error {
	return replaceTable(ctx, q, salesRecordsTable, salesRecordColumns, len(records), func(i int) []interface{} {
		s := records[i]
		return []interface{}{
			syncID,
			s.ClientID,
			s.ClientName,
			s.InvoiceID,
			s.SalespersonID,
			s.ProductCode,
			s.ProductDescription,
			s.Category,
			s.Subcategory,
			s.Quantity,
			s.Amount,
			s.Date,
			s.Year,
			s.Month,
			s.Week,
			s.Weekday,
		}
	})
}

// scoped aplica o filtro de vendedor do escopo de acesso
func scoped(query squirrel.SelectBuilder, column string, scope domain.AccessScope) squirrel.SelectBuilder {
	if scope.IsRestricted() {
		return query.Where(squirrel.Eq{column: scope.Salesperson})
	}
	return query
}

func (r *salesRecordRepository) List(scope domain.AccessScope) ([]*domain.SalesRecord, error) {
	query := squirrel.
		Select(
			"client_id",
			"client_name",
			"invoice_id",
			"salesperson_id",
			"product_code",
			"product_description",
			"category",
			"subcategory",
			"quantity",
			"amount",
			"date",
			"year",
			"month",
			"week",
			"weekday",
		).
		From(salesRecordsTable).
		OrderBy("date ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := scoped(query, "salesperson_id", scope).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.SalesRecord, 0)
	for rows.Next() {
		s := &domain.SalesRecord{}
		err := rows.Scan(
			&s.ClientID,
			&s.ClientName,
			&s.InvoiceID,
			&s.SalespersonID,
			&s.ProductCode,
			&s.ProductDescription,
			&s.Category,
			&s.Subcategory,
			&s.Quantity,
			&s.Amount,
			&s.Date,
			&s.Year,
			&s.Month,
			&s.Week,
			&s.Weekday,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		records = append(records, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// GetAvailablePeriods retorna os anos, meses e semanas presentes nas vendas visíveis
func (r *salesRecordRepository) GetAvailablePeriods(scope domain.AccessScope) (*domain.AvailablePeriods, error) {
	query := squirrel.
		Select("DISTINCT year", "month", "week").
		From(salesRecordsTable).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := scoped(query, "salesperson_id", scope).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	years := map[int]struct{}{}
	months := map[string]struct{}{}
	weeks := map[int]struct{}{}
	for rows.Next() {
		var year, week int
		var month string
		if err := rows.Scan(&year, &month, &week); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		years[year] = struct{}{}
		months[month] = struct{}{}
		weeks[week] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return buildAvailablePeriods(years, months, weeks), nil
}

func buildAvailablePeriods(years map[int]struct{}, months map[string]struct{}, weeks map[int]struct{}) *domain.AvailablePeriods {
	periods := &domain.AvailablePeriods{
		Years:  make([]int, 0, len(years)),
		Months: make([]string, 0, len(months)),
		Weeks:  make([]int, 0, len(weeks)),
	}

	for y := range years {
		periods.Years = append(periods.Years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(periods.Years)))

	for _, name := range domain.MonthNames {
		if _, ok := months[name]; ok {
			periods.Months = append(periods.Months, name)
		}
	}

	for w := range weeks {
		periods.Weeks = append(periods.Weeks, w)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(periods.Weeks)))

	return periods
}
