package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/srgjo27/venue_booking/internal/core/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// withTx runs fn in a transaction and commits when fn returns nil. Domain
// errors from fn are returned untouched; anything else is a storage failure.
func withTx(ctx context.Context, db *sql.DB, op string, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return domain.StorageError(op+": begin", err)
	}

	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return domain.StorageError(op, err)
	}

	if err := tx.Commit(); err != nil {
		return domain.StorageError(op+": commit", err)
	}

	return nil
}

// pqViolation returns the SQLSTATE code and constraint name of a driver error.
func pqViolation(err error) (code, constraint string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint
	}
	return "", ""
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
