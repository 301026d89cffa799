package app_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-employee/internal/app"
	"go-employee/internal/config"
	"go-employee/internal/domain"
	"go-employee/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv: "test",
		DB: config.DBConfig{
			Driver:      config.DriverSQLite,
			Path:        "file::memory:",
			MaxRetries:  1,
			AutoMigrate: true,
		},
		Auth: config.AuthConfig{
			JWTSecret:      "e2e-secret",
			AccessTokenTTL: 15 * time.Minute,
			AdminEmail:     "admin@example.com",
			AdminPassword:  "admin-pass",
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:4200"},
			MaxAge:         time.Hour,
		},
	}
}

type client struct {
	t      *testing.T
	router *gin.Engine
}

func (c client) do(method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func (c client) login(email, password string) string {
	c.t.Helper()
	w := c.do(http.MethodPost, "/login", "", fmt.Sprintf(`{"email":%q,"password":%q}`, email, password))
	require.Equal(c.t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(c.t, res.AccessToken)
	return res.AccessToken
}

type employeeBody struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Version   int64  `json:"version"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func setup(t *testing.T) client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	a, err := app.BuildApp(router, testConfig())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	ctx := context.Background()
	require.NoError(t, a.Auth.EnsureAccount(ctx, "hr@example.com", "hr-pass", []string{domain.RoleHR}))
	require.NoError(t, a.Auth.EnsureAccount(ctx, "viewer@example.com", "viewer-pass", []string{domain.RoleViewer}))

	return client{t: t, router: router}
}

func TestEmployeeLifecycle(t *testing.T) {
	c := setup(t)
	hr := c.login("HR@example.com ", "hr-pass")
	viewer := c.login("viewer@example.com", "viewer-pass")
	admin := c.login("admin@example.com", "admin-pass")

	// create
	w := c.do(http.MethodPost, "/employee", hr, `{"firstName":"Jan","lastName":"Kowalski","email":" Jan.Kowalski@Example.com "}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[employeeBody](t, w)
	assert.Positive(t, created.ID)
	assert.Equal(t, int64(1), created.Version)
	assert.Equal(t, "jan.kowalski@example.com", created.Email)
	assert.Equal(t, fmt.Sprintf("/employee/%d", created.ID), w.Header().Get("Location"))
	path := fmt.Sprintf("/employee/%d", created.ID)

	// read back as viewer
	w = c.do(http.MethodGet, path, viewer, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode[employeeBody](t, w))

	// viewer cannot create
	w = c.do(http.MethodPost, "/employee", viewer, `{"firstName":"A","lastName":"B","email":"a@b.pl"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "auth", decode[apperror.Problem](t, w).Errors[0].Field)

	// duplicate email, case-insensitive
	w = c.do(http.MethodPost, "/employee", hr, `{"firstName":"Other","lastName":"Person","email":"JAN.KOWALSKI@example.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email", decode[apperror.Problem](t, w).Errors[0].Field)

	// two identical patches, each with the then-current version
	w = c.do(http.MethodPatch, path, hr, `{"firstName":"Janek","version":1}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(2), decode[employeeBody](t, w).Version)

	w = c.do(http.MethodPatch, path, hr, `{"firstName":"Janek","version":2}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	patched := decode[employeeBody](t, w)
	assert.Equal(t, int64(3), patched.Version)
	assert.Equal(t, "Janek", patched.FirstName)
	assert.Equal(t, "Kowalski", patched.LastName)

	// stale full update leaves the row unchanged
	w = c.do(http.MethodPut, path, hr, `{"firstName":"X","lastName":"Y","email":"x@y.pl","version":1}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "version", decode[apperror.Problem](t, w).Errors[0].Field)

	w = c.do(http.MethodGet, path, viewer, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, patched, decode[employeeBody](t, w))

	// filtered listing
	w = c.do(http.MethodPost, "/employee", hr, `{"firstName":"Anna","lastName":"Nowak","email":"anna@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = c.do(http.MethodGet, "/employee?firstName=JAN", viewer, "")
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[struct {
		Content       []employeeBody `json:"content"`
		TotalElements int64          `json:"totalElements"`
	}](t, w)
	assert.Equal(t, int64(1), page.TotalElements)
	require.Len(t, page.Content, 1)
	assert.Equal(t, created.ID, page.Content[0].ID)

	w = c.do(http.MethodGet, "/employee", viewer, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalElements":2`)

	// delete
	w = c.do(http.MethodDelete, path, admin, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "version", decode[apperror.Problem](t, w).Errors[0].Field)

	w = c.do(http.MethodDelete, path+"?version=3", hr, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = c.do(http.MethodDelete, path+"?version=2", admin, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = c.do(http.MethodDelete, path+"?version=3", admin, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = c.do(http.MethodGet, path, viewer, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Employee Not Found", decode[apperror.Problem](t, w).Title)
}

func TestSession(t *testing.T) {
	c := setup(t)

	w := c.do(http.MethodPost, "/login", "", `{"email":"hr@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperror.ProblemContentType, w.Header().Get("Content-Type"))

	token := c.login("hr@example.com", "hr-pass")

	w = c.do(http.MethodGet, "/auth/me", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":2,"email":"hr@example.com","roles":["HR"]}`, w.Body.String())

	w = c.do(http.MethodPost, "/logout", token, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = c.do(http.MethodGet, "/auth/me", token, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token has been revoked", decode[apperror.Problem](t, w).Detail)

	w = c.do(http.MethodGet, "/employee", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthAndUnknownRoute(t *testing.T) {
	c := setup(t)

	w := c.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = c.do(http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	p := decode[apperror.Problem](t, w)
	assert.Equal(t, "Not Found", p.Title)
	assert.Equal(t, "/nope", p.Instance)
}
