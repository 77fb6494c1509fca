package db

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database operations shared by *sql.DB and *sql.Tx.
// Repositories depend on this interface, so the same repository code runs
// against the plain connection or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
