// Package pgerr translates PostgreSQL driver errors into the domain error types
// of internal/pkg/errs.
package pgerr

import (
	"errors"

	"forwarding/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// UniqueViolation is the SQLSTATE of a unique constraint violation.
const UniqueViolation pq.ErrorCode = "23505"

// IsUniqueViolation reports whether err is a unique constraint violation,
// whether it came straight from lib/pq or was translated by gorm.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == UniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// TranslateWrite maps unique violations on insert/update to
// errs.ObjectAlreadyExistsError. Other errors are returned as is.
func TranslateWrite(err error, paramName string, value any) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return errs.NewObjectAlreadyExistsErrorWithCause(paramName, value, err)
	}
	return err
}
