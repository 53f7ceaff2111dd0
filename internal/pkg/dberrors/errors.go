package dberrors

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Code returns the SQLSTATE of a PostgreSQL error, or "" for anything else.
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == constraintName
}

// IsForeignKeyViolation reports a foreign_key_violation on the given constraint.
// An empty constraintName matches any constraint.
func IsForeignKeyViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.ForeignKeyViolation {
		return false
	}
	return constraintName == "" || pgErr.ConstraintName == constraintName
}

// IsCheckViolation reports a check_violation (e.g. an enum CHECK constraint).
func IsCheckViolation(err error) bool {
	return Code(err) == pgerrcode.CheckViolation
}
