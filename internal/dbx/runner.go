package dbx

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Runner gives services a plain handle and a way to run a unit of work
// atomically, independent of the backing store.
type Runner interface {
	Conn() DBTX
	InTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

// SQLRunner implements Runner over *sql.DB. Transactions aborted by a
// serialization failure or deadlock are retried up to MaxAttempts times.
type SQLRunner struct {
	db          *sql.DB
	MaxAttempts int
}

func NewSQLRunner(db *sql.DB) *SQLRunner {
	return &SQLRunner{db: db, MaxAttempts: 3}
}

func (r *SQLRunner) Conn() DBTX { return r.db }

func (r *SQLRunner) InTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	var err error
	for attempt := 0; attempt < max(r.MaxAttempts, 1); attempt++ {
		err = WithTx(ctx, r.db, nil, fn)
		if !IsRetryable(err) {
			return err
		}
	}
	return err
}

// Postgres SQLSTATE codes we react to.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// IsRetryable reports whether err aborted a transaction that can safely be
// run again.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
