package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

type SnapshotRepository interface {
	Replace(ctx context.Context, syncID string, snapshot *domain.SheetsSnapshot) error
}

type snapshotRepository struct {
	conn postgres.Transactor
}

func NewSnapshotRepository(conn postgres.Transactor) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// Replace substitui vendas, metas e ligações numa única transação.
// Se qualquer tabela falhar, nenhuma delas é alterada.
func (r *snapshotRepository) Replace(ctx context.Context, syncID string, snapshot *domain.SheetsSnapshot) error {
	return r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		if err := replaceSalesRecords(ctx, tx, syncID, snapshot.Sales); err != nil {
			return fmt.Errorf("erro ao gravar vendas: %w", err)
		}
		if err := replaceBudgetRecords(ctx, tx, syncID, snapshot.Budget); err != nil {
			return fmt.Errorf("erro ao gravar metas: %w", err)
		}
		if err := replaceCallRecords(ctx, tx, syncID, snapshot.Calls); err != nil {
			return fmt.Errorf("erro ao gravar ligações: %w", err)
		}
		return nil
	})
}
