// Package circuitbreaker provides circuit breaker implementations for
// the external dependencies of the browse service. This file wraps the
// session store database so a dead postgres fails browse requests fast
// instead of tying up connections.
package circuitbreaker

import (
	"context"
	"database/sql"
	"time"

	"github.com/sony/gobreaker"
)

// DBCircuitBreaker guards session and history store queries. When the
// circuit is open, queries return ErrOpenState immediately without
// touching the pool.
type DBCircuitBreaker struct {
	cb *CircuitBreaker
	db *sql.DB
}

// DBConfig trips after 5 consecutive failures and probes again after
// 30 seconds with up to 3 half-open requests.
func DBConfig() Config {
	return Config{
		Name:             "database",
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0,
		MinRequests:      5,
	}
}

// NewDBCircuitBreaker wraps db with the default database breaker.
func NewDBCircuitBreaker(db *sql.DB) *DBCircuitBreaker {
	return &DBCircuitBreaker{
		cb: New(DBConfig()),
		db: db,
	}
}

// NewDBCircuitBreakerWithConfig wraps db with a custom breaker config.
func NewDBCircuitBreakerWithConfig(db *sql.DB, cfg Config) *DBCircuitBreaker {
	return &DBCircuitBreaker{
		cb: New(cfg),
		db: db,
	}
}

// QueryContext runs a query under the breaker.
func (dcb *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*sql.Rows), nil
}

// ExecContext runs a statement under the breaker.
func (dcb *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(sql.Result), nil
}

// BeginTx opens a transaction under the breaker. Statements inside the
// transaction run directly; only acquiring the transaction counts
// toward the breaker, which is where an unreachable database shows up.
func (dcb *DBCircuitBreaker) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.BeginTx(ctx, opts)
	})
	if err != nil {
		return nil, err
	}
	return result.(*sql.Tx), nil
}

// QueryRowContext runs a single-row query. sql.Row defers its error to
// Scan, so this path bypasses the breaker.
func (dcb *DBCircuitBreaker) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return dcb.db.QueryRowContext(ctx, query, args...)
}

// State returns the current breaker state.
func (dcb *DBCircuitBreaker) State() gobreaker.State {
	return dcb.cb.State()
}

// IsOpen reports whether the breaker is open.
func (dcb *DBCircuitBreaker) IsOpen() bool {
	return dcb.cb.IsOpen()
}

// DB returns the wrapped connection for operations that should bypass
// the breaker, like pool stats collection.
func (dcb *DBCircuitBreaker) DB() *sql.DB {
	return dcb.db
}
