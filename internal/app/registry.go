package app

import (
	"context"
	"time"

	"go-employee/internal/auth"
	"go-employee/internal/bootstrap"
	"go-employee/internal/config"
	"go-employee/internal/domain"
	"go-employee/internal/employee"
	"go-employee/internal/rbac"
	"go-employee/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *gorm.DB,
	rdb *redis.Client,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) (auth.Service, error) {
	// --- Repositories ---
	authRepo := auth.NewRepository(db)
	employeeRepo := employee.NewRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	rbacService, err := rbac.NewService(enforcer, rbac.Permissions, logger)
	if err != nil {
		return nil, err
	}

	// --- Services ---
	tokenStore := auth.NewMemoryTokenStore()
	if rdb != nil {
		tokenStore = auth.NewRedisTokenStore(rdb)
	}
	authService := auth.NewService(authRepo, tokenStore, auth.TokenConfig{
		Secret: []byte(cfg.Auth.JWTSecret),
		TTL:    cfg.Auth.AccessTokenTTL,
	}, logger)
	employeeService := employee.NewService(db, employeeRepo, audit, logger)

	if err := seedAccounts(authRepo, authService, cfg.Auth); err != nil {
		return nil, err
	}

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.Auth.CookieSecure, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)

	// --- Routes Registration ---
	router.GET("/healthz", healthz(db))
	auth.RegisterRoutes(router, authHandler, authService, logger)
	employee.RegisterRoutes(router, employeeHandler, authService, rbacService, logger)

	return authService, nil
}

// seedAccounts makes sure every known role exists and creates the bootstrap
// admin when one is configured.
func seedAccounts(repo auth.Repository, service auth.Service, cfg config.AuthConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := repo.FindOrCreateRoles(ctx, domain.Roles); err != nil {
		return err
	}
	if cfg.AdminEmail == "" {
		return nil
	}
	return service.EnsureAccount(ctx, cfg.AdminEmail, cfg.AdminPassword, []string{domain.RoleAdmin})
}
