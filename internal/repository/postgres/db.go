package postgres

import (
	"context"
	"database/sql"
)

// Querier abstracts *sql.DB and *sql.Tx so a repository can run its queries
// inside or outside a transaction. Team creation relies on this to insert
// the team row and its member rows atomically.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)
