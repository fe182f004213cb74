package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

const budgetRecordsTable = "budget_records"

type BudgetRecordRepository interface {
	List(scope domain.AccessScope) ([]*domain.BudgetRecord, error)
}

type budgetRecordRepository struct {
	conn *postgres.Connection
}

func NewBudgetRecordRepository(conn *postgres.Connection) BudgetRecordRepository {
	return &budgetRecordRepository{
		conn: conn,
	}
}

var budgetRecordColumns = []string{"sync_id", "salesperson_id", "amount", "quantity", "month", "year", "category", "subcategory"}

func replaceBudgetRecords(ctx context.Context, q postgres.Queryer, syncID string, records []*domain.BudgetRecord) error {
	return replaceTable(ctx, q, budgetRecordsTable, budgetRecordColumns, len(records), func(i int) []interface{} {
		b := records[i]
		return []interface{}{syncID, b.SalespersonID, b.Amount, b.Quantity, b.Month, b.Year, b.Category, b.Subcategory}
	})
}

func (r *budgetRecordRepository) List(scope domain.AccessScope) ([]*domain.BudgetRecord, error) {
	query := squirrel.
		Select("salesperson_id", "amount", "quantity", "month", "year", "category", "subcategory").
		From(budgetRecordsTable).
		OrderBy("year ASC", "salesperson_id ASC").
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

	records := make([]*domain.BudgetRecord, 0)
	for rows.Next() {
		b := &domain.BudgetRecord{}
		if err := rows.Scan(&b.SalespersonID, &b.Amount, &b.Quantity, &b.Month, &b.Year, &b.Category, &b.Subcategory); err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		records = append(records, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
