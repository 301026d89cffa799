package app

import (
	"go-employee/internal/auth"
	"go-employee/internal/bootstrap"
	"go-employee/internal/config"
	"go-employee/internal/employee"
	"go-employee/internal/middleware"
	"go-employee/internal/shared/connection"
	"go-employee/internal/shared/validation"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the infrastructure built for one router.
type App struct {
	DB    *gorm.DB
	Redis *redis.Client
	Auth  auth.Service
	Audit bootstrap.AuditLogger
}

func BuildApp(router *gin.Engine, cfg config.Config) (*App, error) {
	logger := zap.L()

	if err := validation.Init(); err != nil {
		return nil, err
	}

	// 1. Setup Infrastructure
	db, err := connection.ConnectGORMWithRetry(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established", zap.String("driver", cfg.DB.Driver))

	a := &App{DB: db, Audit: bootstrap.NewStdoutAuditLogger(logger)}

	if cfg.Redis.Addr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.Redis, cfg.DB.RetryDelay)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.Redis = rdb
		logger.Info("redis connection established", zap.String("addr", cfg.Redis.Addr))
	} else {
		logger.Warn("REDIS_ADDR not set, token revocation is kept in memory")
	}

	if cfg.DB.AutoMigrate {
		if err := migrate(db); err != nil {
			a.Close()
			return nil, err
		}
	}

	// 2. Global middleware
	router.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.AccessLog(logger),
		middleware.CORS(cfg.CORS.AllowedOrigins, cfg.CORS.MaxAge),
	)
	router.NoRoute(middleware.NoRoute())

	// 3. Register Modules & Routes
	authService, err := registerModules(router, cfg, db, a.Redis, a.Audit, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Auth = authService

	return a, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&employee.Employee{},
		&auth.Role{},
		&auth.UserAccount{},
	)
}

// Close releases the database and redis connections.
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			zap.L().Warn("close redis failed", zap.Error(err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				zap.L().Warn("close database failed", zap.Error(err))
			}
		}
	}
}
