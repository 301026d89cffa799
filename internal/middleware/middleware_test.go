package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-employee/internal/domain"
	"go-employee/internal/middleware"
	"go-employee/internal/shared/apperror"
	"go-employee/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthenticator struct {
	AuthenticateFn func(ctx context.Context, token string) (domain.Principal, error)
}

func (f *fakeAuthenticator) Authenticate(ctx context.Context, token string) (domain.Principal, error) {
	return f.AuthenticateFn(ctx, token)
}

type fakeRBAC struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	return r
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) apperror.Problem {
	t.Helper()
	var p apperror.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func viewerAuth() *fakeAuthenticator {
	return &fakeAuthenticator{
		AuthenticateFn: func(ctx context.Context, token string) (domain.Principal, error) {
			if token != "good" {
				return domain.Principal{}, apperror.Unauthenticated("Invalid token")
			}
			return domain.Principal{ID: 7, Email: "v@x.pl", Roles: []string{domain.RoleViewer}}, nil
		},
	}
}

func TestRequestID(t *testing.T) {
	r := setupRouter()
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	t.Run("propagates header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "rid-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, "rid-1", w.Body.String())
		assert.Equal(t, "rid-1", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("generates when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestAuthMiddleware(t *testing.T) {
	r := setupRouter()
	r.GET("/me", middleware.AuthMiddleware(viewerAuth()), middleware.ContextLogger(nil), func(c *gin.Context) {
		p, ok := contextutil.GetPrincipal(c.Request.Context())
		require.True(t, ok)
		assert.Equal(t, "7", contextutil.GetUserID(c.Request.Context()))
		c.JSON(http.StatusOK, gin.H{"email": p.Email})
	})

	t.Run("bearer header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer good")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "v@x.pl")
	})

	t.Run("cookie fallback", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: "good"})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		p := decodeProblem(t, w)
		assert.Equal(t, "Unauthorized", p.Title)
		assert.Equal(t, "/me", p.Instance)
		require.Len(t, p.Errors, 1)
		assert.Equal(t, "auth", p.Errors[0].Field)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer bad")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("plain error is unauthenticated", func(t *testing.T) {
		r := setupRouter()
		authn := &fakeAuthenticator{AuthenticateFn: func(ctx context.Context, token string) (domain.Principal, error) {
			return domain.Principal{}, errors.New("boom")
		}}
		r.GET("/me", middleware.AuthMiddleware(authn), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer x")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRBACAuthorize(t *testing.T) {
	newRouter := func(rbac *fakeRBAC) *gin.Engine {
		r := setupRouter()
		r.POST("/employee",
			middleware.AuthMiddleware(viewerAuth()),
			middleware.RBACAuthorize(rbac, "employee", "create"),
			func(c *gin.Context) { c.Status(http.StatusCreated) },
		)
		return r
	}
	do := func(r *gin.Engine) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employee", nil)
		req.Header.Set("Authorization", "Bearer good")
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("allowed", func(t *testing.T) {
		rbac := &fakeRBAC{allowed: true}
		w := do(newRouter(rbac))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, []string{domain.RoleViewer}, rbac.got.Roles)
		assert.Equal(t, "employee", rbac.got.Resource)
		assert.Equal(t, "create", rbac.got.Action)
	})

	t.Run("denied", func(t *testing.T) {
		w := do(newRouter(&fakeRBAC{allowed: false}))

		assert.Equal(t, http.StatusForbidden, w.Code)
		p := decodeProblem(t, w)
		assert.Equal(t, "Forbidden", p.Title)
		assert.Equal(t, "auth", p.Errors[0].Field)
		assert.Equal(t, "Insufficient privileges", p.Errors[0].Message)
	})

	t.Run("enforcer error", func(t *testing.T) {
		w := do(newRouter(&fakeRBAC{err: errors.New("casbin down")}))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "casbin down")
	})

	t.Run("no principal", func(t *testing.T) {
		r := setupRouter()
		r.GET("/x", middleware.RBACAuthorize(&fakeRBAC{allowed: true}, "employee", "read"), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRecoveryAndNoRoute(t *testing.T) {
	r := setupRouter()
	r.Use(middleware.Recovery(nil))
	r.NoRoute(middleware.NoRoute())
	r.GET("/panic", func(c *gin.Context) { panic("secret detail") })

	t.Run("panic", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		p := decodeProblem(t, w)
		assert.Equal(t, "Internal Server Error", p.Title)
		assert.Equal(t, "server", p.Errors[0].Field)
		assert.NotContains(t, w.Body.String(), "secret detail")
	})

	t.Run("no route", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Not Found", decodeProblem(t, w).Title)
	})
}
