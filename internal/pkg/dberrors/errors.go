package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// PostgreSQL error codes
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	return hasCode(err, uniqueViolation, constraintName)
}

// IsForeignKeyViolation checks if the error is a foreign key violation. An empty
// constraint name matches any foreign key.
func IsForeignKeyViolation(err error, constraintName string) bool {
	return hasCode(err, foreignKeyViolation, constraintName)
}

// IsCheckViolation checks if the error is a CHECK constraint violation
func IsCheckViolation(err error, constraintName string) bool {
	return hasCode(err, checkViolation, constraintName)
}

func hasCode(err error, code, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return false
	}
	return constraintName == "" || pgErr.ConstraintName == constraintName
}
