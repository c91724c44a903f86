package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae la ejecución de statements: lo satisfacen *pgxpool.Pool,
// pgx.Tx y el mock de pgxmock, de modo que los repos funcionan igual dentro
// o fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB agrega a Querier la capacidad de abrir transacciones. Lo necesita el
// repositorio de clientes para sus unidades de trabajo multi-tabla.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}
