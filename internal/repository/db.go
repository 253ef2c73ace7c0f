package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("record violates a unique constraint")
	ErrForeignKey = errors.New("record references a missing row")
)

// DB is the subset of *pgxpool.Pool the repositories use. Every call
// acquires and releases its own pooled connection.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// classify maps constraint violations reported by Postgres onto repository errors
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrDuplicate
		case pgerrcode.ForeignKeyViolation:
			return ErrForeignKey
		}
	}
	return nil
}
