package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

const salespersonRankingTable = "salesperson_ranking sr"

var salespersonRankingColumns = []string{
	"sr.id",
	"sr.salesperson_id",
	"sr.period",
	"sr.realized_amount",
	"sr.target_amount",
	"sr.percent_amount",
	"sr.position",
	"sr.position_change",
	"sr.previous_position",
	"sr.created_at",
	"sr.updated_at",
}

type SalespersonRankingRepository interface {
	GetBySalesperson(salespersonID string, period string) (*domain.SalespersonRankingItem, error)
	GetRanking(period string) (*domain.SalespersonRankingResponse, error)
	SaveOrUpdate(rankings []*domain.SalespersonRankingItem) error
}

type salespersonRankingRepository struct {
	conn *postgres.Connection
}

func NewSalespersonRankingRepository(conn *postgres.Connection) SalespersonRankingRepository {
	return &salespersonRankingRepository{
		conn: conn,
	}
}

// GetRanking retorna o ranking do período (mm-yyyy) ordenado pela posição
func (r *salespersonRankingRepository) GetRanking(period string) (*domain.SalespersonRankingResponse, error) {
	sqlQuery, args, err := squirrel.
		Select(salespersonRankingColumns...).
		From(salespersonRankingTable).
		Where(squirrel.Eq{"sr.period": period}).
		OrderBy("sr.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]domain.SalespersonRankingItem, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item, err := scanRankingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		rankings = append(rankings, *item)

		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.SalespersonRankingResponse{
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *salespersonRankingRepository) GetBySalesperson(salespersonID string, period string) (*domain.SalespersonRankingItem, error) {
	query, args, err := squirrel.
		Select(salespersonRankingColumns...).
		From(salespersonRankingTable).
		Where(squirrel.Eq{"sr.salesperson_id": salespersonID, "sr.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ranking, err := scanRankingItem(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
	}
	return ranking, nil
}

func (r *salespersonRankingRepository) SaveOrUpdate(rankings []*domain.SalespersonRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("salesperson_ranking").
		Columns(
			"salesperson_id",
			"period",
			"realized_amount",
			"target_amount",
			"percent_amount",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		var percent sql.NullFloat64
		if ranking.PercentAmount.Valid {
			percent = sql.NullFloat64{Float64: ranking.PercentAmount.Value, Valid: true}
		}

		query = query.Values(
			ranking.SalespersonID,
			ranking.Period,
			ranking.RealizedAmount,
			ranking.TargetAmount,
			percent,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (salesperson_id, period) DO UPDATE SET
			realized_amount = EXCLUDED.realized_amount,
			target_amount = EXCLUDED.target_amount,
			percent_amount = EXCLUDED.percent_amount,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRankingItem(row rowScanner) (*domain.SalespersonRankingItem, error) {
	item := &domain.SalespersonRankingItem{}
	var percent sql.NullFloat64

	err := row.Scan(
		&item.ID,
		&item.SalespersonID,
		&item.Period,
		&item.RealizedAmount,
		&item.TargetAmount,
		&percent,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.PercentAmount = domain.Ratio{Value: percent.Float64, Valid: percent.Valid}
	return item, nil
}
