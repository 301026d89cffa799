package validation_test

import (
	"errors"
	"testing"

	"go-employee/internal/shared/apperror"
	"go-employee/internal/shared/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPredicates(t *testing.T) {
	assert.False(t, validation.NotBlank(nil))
	assert.False(t, validation.NotBlank(strPtr("")))
	assert.False(t, validation.NotBlank(strPtr("   ")))
	assert.True(t, validation.NotBlank(strPtr(" Jan ")))

	assert.True(t, validation.NullOrNotBlank(nil))
	assert.False(t, validation.NullOrNotBlank(strPtr(" \t")))
	assert.True(t, validation.NullOrNotBlank(strPtr("Kowalski")))

	assert.True(t, validation.ValidEmail("jan@x.pl"))
	assert.False(t, validation.ValidEmail("jan.x.pl"))
	assert.False(t, validation.ValidEmail(""))
	assert.True(t, validation.ValidEmail("  Jan@X.pl "))
	assert.False(t, validation.ValidEmail(" jan @x.pl"))
}

func TestRegister(t *testing.T) {
	v := validator.New()
	require.NoError(t, validation.Register(v))

	assert.NoError(t, v.Var(" jan@x.pl\t", "email"))
	assert.Error(t, v.Var("jan.x.pl", "email"))
	assert.Error(t, v.Var("  ", "notblank"))
	assert.Error(t, v.Var(strPtr(" "), "nullornotblank"))
}

type createRequest struct {
	FirstName string `json:"firstName" binding:"notblank"`
	LastName  string `json:"lastName" binding:"notblank"`
	Email     string `json:"email" binding:"notblank,email"`
	Version   *int64 `json:"version" binding:"required"`
}

type patchRequest struct {
	FirstName *string `json:"firstName" binding:"omitnil,nullornotblank"`
	Email     *string `json:"email" binding:"omitnil,nullornotblank,email"`
	Version   *int64  `json:"version" binding:"required"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, validation.Init())
	v := int64(1)

	t.Run("valid", func(t *testing.T) {
		err := validation.Struct(&createRequest{FirstName: "Jan", LastName: "Kowalski", Email: "jan@x.pl", Version: &v})
		assert.NoError(t, err)
	})

	t.Run("email with surrounding whitespace", func(t *testing.T) {
		err := validation.Struct(&createRequest{FirstName: "Jan", LastName: "Kowalski", Email: "  Jan@X.pl ", Version: &v})
		assert.NoError(t, err)

		assert.NoError(t, validation.Struct(&patchRequest{Email: strPtr(" new@x.pl"), Version: &v}))
	})

	t.Run("collects violations in field order", func(t *testing.T) {
		err := validation.Struct(&createRequest{FirstName: " ", LastName: "Kowalski", Email: "nope"})

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.KindRequiredFieldMissing, appErr.Kind)
		require.Len(t, appErr.Errors, 3)
		assert.Equal(t, "firstName", appErr.Errors[0].Field)
		assert.Equal(t, "must not be blank", appErr.Errors[0].Message)
		assert.Equal(t, "email", appErr.Errors[1].Field)
		assert.Equal(t, "must be a well-formed email address", appErr.Errors[1].Message)
		assert.Equal(t, "version", appErr.Errors[2].Field)
		assert.Equal(t, "must not be null", appErr.Errors[2].Message)
	})

	t.Run("patch accepts absent fields", func(t *testing.T) {
		assert.NoError(t, validation.Struct(&patchRequest{Version: &v}))
	})

	t.Run("patch rejects explicit blank", func(t *testing.T) {
		err := validation.Struct(&patchRequest{FirstName: strPtr("  "), Version: &v})

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		require.Len(t, appErr.Errors, 1)
		assert.Equal(t, "firstName", appErr.Errors[0].Field)
	})

	t.Run("patch validates email shape", func(t *testing.T) {
		err := validation.Struct(&patchRequest{Email: strPtr("not-an-email"), Version: &v})

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.KindInvalidFieldFormat, appErr.Kind)
		assert.Equal(t, "email", appErr.Errors[0].Field)
	})
}
