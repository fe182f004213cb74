package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

const callRecordsTable = "call_records"

type CallRecordRepository interface {
	List(scope domain.AccessScope, filters domain.CallFilters) ([]*domain.CallRecord, error)
}

type callRecordRepository struct {
	conn *postgres.Connection
}

func NewCallRecordRepository(conn *postgres.Connection) CallRecordRepository {
	return &callRecordRepository{
		conn: conn,
	}
}

var callRecordColumns = []string{
	"sync_id", "salesperson", "file", "date", "month", "duration_seconds",
	"script_adherence", "sentiment", "fluency_rating", "transcript",
}

func replaceCallRecords(ctx context.Context, q postgres.Queryer, syncID string, records []*domain.CallRecord) error {
	return replaceTable(ctx, q, callRecordsTable, callRecordColumns, len(records), func(i int) []interface{} {
		c := records[i]
		var date sql.NullTime
		if !c.Date.IsZero() {
			date = sql.NullTime{Time: c.Date, Valid: true}
		}
		return []interface{}{
			syncID, c.Salesperson, c.File, date, c.Month, c.DurationSeconds,
			c.ScriptAdherence, c.Sentiment, c.FluencyRating, c.Transcript,
		}
	})
}

// List retorna as ligações visíveis no escopo. Ligações sem data só aparecem
// quando nenhum intervalo é informado.
func (r *callRecordRepository) List(scope domain.AccessScope, filters domain.CallFilters) ([]*domain.CallRecord, error) {
	query := squirrel.
		Select(
			"salesperson", "file", "date", "month", "duration_seconds",
			"script_adherence", "sentiment", "fluency_rating", "transcript",
		).
		From(callRecordsTable).
		OrderBy("date ASC NULLS LAST", "file ASC").
		PlaceholderFormat(squirrel.Dollar)

	query = scoped(query, "salesperson", scope)
	if len(filters.Salespeople) > 0 {
		query = query.Where(squirrel.Eq{"salesperson": filters.Salespeople})
	}
	if filters.StartDate != nil {
		query = query.Where(squirrel.GtOrEq{"date": *filters.StartDate})
	}
	if filters.EndDate != nil {
		query = query.Where(squirrel.LtOrEq{"date": *filters.EndDate})
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.CallRecord, 0)
	for rows.Next() {
		c := &domain.CallRecord{}
		var date sql.NullTime
		err := rows.Scan(
			&c.Salesperson, &c.File, &date, &c.Month, &c.DurationSeconds,
			&c.ScriptAdherence, &c.Sentiment, &c.FluencyRating, &c.Transcript,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ligação: %w", err)
		}
		if date.Valid {
			c.Date = date.Time
		}
		records = append(records, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
