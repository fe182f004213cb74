package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
)

// batchSize mantém o número de parâmetros abaixo do limite de 65535 do Postgres
const batchSize = 500

// replaceTable apaga todo o conteúdo da tabela e insere as linhas em lotes.
// rowAt retorna os valores da linha i na ordem de columns.
func replaceTable(ctx context.Context, q postgres.Queryer, table string, columns []string, total int, rowAt func(i int) []interface{}) error {
	if _, err := q.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("erro ao limpar a tabela %s: %w", table, err)
	}

	for start := 0; start < total; start += batchSize {
		end := start + batchSize
		if end > total {
			end = total
		}

		query := squirrel.Insert(table).Columns(columns...).PlaceholderFormat(squirrel.Dollar)
		for i := start; i < end; i++ {
			query = query.Values(rowAt(i)...)
		}

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao inserir lote em %s: %w", table, err)
		}
	}

	return nil
}
