package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// isUniqueConstraintViolation recognises duplicate keys from GORM's translator,
// from pgx, and from SQLite's message text.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || pgCode(err) == pgUniqueViolation {
		return true
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) || pgCode(err) == pgForeignKeyViolation {
		return true
	}

	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if pgCode(err) == pgNotNullViolation {
		return true
	}

	return strings.Contains(err.Error(), "NOT NULL constraint failed")
}

// violatesConstraint reports whether a unique violation names the given constraint or column.
func violatesConstraint(err error, names ...string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		for _, n := range names {
			if strings.Contains(pgErr.ConstraintName, n) {
				return true
			}
		}

		return false
	}

	msg := err.Error()
	for _, n := range names {
		if strings.Contains(msg, n) {
			return true
		}
	}

	return false
}
