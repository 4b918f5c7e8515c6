package database

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation. Repositories translate these into conflict errors instead of
// surfacing a raw driver failure.
func IsUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == uniqueViolation
	}
	return false
}
