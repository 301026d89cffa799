package employeeerrors

import (
	"go-employee/internal/shared/apperror"
)

const resource = "employee"

var (
	ErrInvalidEmployeeID  = apperror.InvalidField("id", "must be greater than 0")
	ErrIntegrityViolation = apperror.New(apperror.KindConflict, "Data integrity violation")
	ErrVersionRequired    = apperror.Validation(apperror.FieldError{
		Field:   "version",
		Message: "must not be null",
		Kind:    apperror.KindRequiredFieldMissing,
	})
)

// NotFound reports a missing employee by id.
func NotFound(id int64) *apperror.AppError {
	err := apperror.NotFound(resource, id)
	err.Title = "Employee Not Found"
	return err
}

func VersionMismatch(requested, actual int64) *apperror.AppError {
	return apperror.VersionConflict(requested, actual)
}

func EmailAlreadyInUse(email string) *apperror.AppError {
	return apperror.EmailConflict(email)
}

func IntegrityViolation(err error) *apperror.AppError {
	return apperror.Conflict("Data integrity violation", err)
}
