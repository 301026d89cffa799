package request_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-employee/internal/shared/apperror"
	"go-employee/internal/shared/request"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type target struct {
	FirstName string `json:"firstName" binding:"notblank"`
	Email     string `json:"email" binding:"notblank,email"`
	Version   *int64 `json:"version" binding:"required"`
}

func bind(t *testing.T, body string) (*target, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var out target
	err := request.BindJSON(c, &out)
	return &out, err
}

func asAppError(t *testing.T, err error) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr
}

func TestBindJSON(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		out, err := bind(t, `{"firstName":"Jan","email":"jan@x.pl","version":3}`)
		require.NoError(t, err)
		assert.Equal(t, "Jan", out.FirstName)
		assert.Equal(t, int64(3), *out.Version)
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := bind(t, "  ")
		assert.Equal(t, apperror.KindMissingBody, asAppError(t, err).Kind)
	})

	t.Run("json null", func(t *testing.T) {
		_, err := bind(t, "null")
		assert.Equal(t, apperror.KindMissingBody, asAppError(t, err).Kind)
	})

	t.Run("unknown fields sorted", func(t *testing.T) {
		_, err := bind(t, `{"firstName":"Jan","zeta":1,"alpha":2,"version":1}`)
		appErr := asAppError(t, err)
		assert.Equal(t, apperror.KindUnrecognizedField, appErr.Kind)
		require.Len(t, appErr.Errors, 2)
		assert.Equal(t, "alpha", appErr.Errors[0].Field)
		assert.Equal(t, "zeta", appErr.Errors[1].Field)
		assert.Equal(t, "Field is not allowed", appErr.Errors[0].Message)
	})

	t.Run("name match is exact", func(t *testing.T) {
		_, err := bind(t, `{"firstname":"Jan","email":"jan@x.pl","version":1}`)
		appErr := asAppError(t, err)
		assert.Equal(t, apperror.KindUnrecognizedField, appErr.Kind)
		assert.Equal(t, "firstname", appErr.Errors[0].Field)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := bind(t, `{"firstName":"Jan",`)
		appErr := asAppError(t, err)
		assert.Equal(t, apperror.KindMalformedInput, appErr.Kind)
		assert.Equal(t, "body", appErr.Errors[0].Field)
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := bind(t, `[1,2]`)
		assert.Equal(t, apperror.KindMalformedInput, asAppError(t, err).Kind)
	})

	t.Run("trailing data", func(t *testing.T) {
		_, err := bind(t, `{"firstName":"Jan","email":"jan@x.pl","version":1} {}`)
		assert.Equal(t, apperror.KindMalformedInput, asAppError(t, err).Kind)
	})

	t.Run("wrong field type", func(t *testing.T) {
		_, err := bind(t, `{"firstName":"Jan","email":"jan@x.pl","version":"one"}`)
		appErr := asAppError(t, err)
		assert.Equal(t, apperror.KindMalformedInput, appErr.Kind)
		assert.Equal(t, "Wrong field type", appErr.Title)
		assert.Equal(t, "version", appErr.Errors[0].Field)
		assert.Equal(t, "Expected type integer", appErr.Errors[0].Message)
	})

	t.Run("validation after decode", func(t *testing.T) {
		_, err := bind(t, `{"firstName":"","email":"jan@x.pl"}`)
		appErr := asAppError(t, err)
		require.Len(t, appErr.Errors, 2)
		assert.Equal(t, "firstName", appErr.Errors[0].Field)
		assert.Equal(t, "version", appErr.Errors[1].Field)
	})
}

func TestResolveClientType(t *testing.T) {
	assert.Equal(t, request.ClientWeb, request.ResolveClientType("WEB", ""))
	assert.Equal(t, request.ClientMobile, request.ResolveClientType("mobile", "Mozilla/5.0"))
	assert.Equal(t, request.ClientWeb, request.ResolveClientType("", "Mozilla/5.0 (X11)"))
	assert.Equal(t, request.ClientAPI, request.ResolveClientType("", "curl/8.0"))
	assert.False(t, request.IsWebClient("api", "Mozilla/5.0"))
}
