package postgres

import (
	"context"
	"database/sql"
)

// Querier is the subset of *sql.DB the repositories need. It is satisfied by
// *sql.DB directly and by the circuit breaker wrapper in
// internal/resilience/circuitbreaker, so main can choose whether queries run
// guarded or bare.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
