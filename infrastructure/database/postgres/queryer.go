package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito tanto por *sql.DB quanto por *sql.Tx
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Transactor executa um conjunto de escritas numa única transação
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(tx Queryer) error) error
}

var (
	_ Queryer    = (*sql.DB)(nil)
	_ Queryer    = (*sql.Tx)(nil)
	_ Transactor = (*Connection)(nil)
)
