package store

import (
	"context"
	"database/sql"
)

// DBTX es lo que un repositorio necesita para consultar; lo satisfacen tanto
// *sql.DB como *sql.Tx, así el checkout puede correr los repos dentro de su
// propia transacción.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
