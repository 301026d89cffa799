package autherrors

import (
	"go-employee/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.Unauthenticated("Invalid email or password")
	ErrAccountDisabled    = apperror.Unauthenticated("Account is disabled")
	ErrInvalidToken       = apperror.Unauthenticated("Invalid token")
	ErrTokenExpired       = apperror.Unauthenticated("Token has expired")
	ErrTokenRevoked       = apperror.Unauthenticated("Token has been revoked")
	ErrUserNotFound       = apperror.Unauthenticated("User no longer exists")
)

// TokenGenerationFailed hides signing failures behind an Unexpected problem.
func TokenGenerationFailed(err error) *apperror.AppError {
	return apperror.Wrap(err, apperror.KindUnexpected, "Failed to issue access token")
}
