package employee

import (
	"errors"
	"strings"

	employeeerrors "go-employee/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation     = "23505"
	integrityViolations = "23"
	emailConstraint     = "uq_employee_email"
)

// mapRepositoryError translates storage errors into the API taxonomy. Errors
// it does not recognise are returned unchanged.
func mapRepositoryError(err error, id int64, email string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.NotFound(id)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == uniqueViolation && pgErr.ConstraintName == emailConstraint {
			return employeeerrors.EmailAlreadyInUse(email)
		}
		if strings.HasPrefix(pgErr.Code, integrityViolations) {
			return employeeerrors.IntegrityViolation(err)
		}
	}

	// only email is unique on employees
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return employeeerrors.EmailAlreadyInUse(email)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return employeeerrors.IntegrityViolation(err)
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, emailConstraint) ||
		strings.Contains(errMsg, "unique constraint failed: employees.email") ||
		strings.Contains(errMsg, "duplicate key value") {
		return employeeerrors.EmailAlreadyInUse(email)
	}
	if strings.Contains(errMsg, "constraint failed") || strings.Contains(errMsg, "violates") {
		return employeeerrors.IntegrityViolation(err)
	}

	return err
}
