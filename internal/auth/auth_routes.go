package auth

import (
	"go-employee/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r gin.IRouter, handler *Handler, authn middleware.Authenticator, logger *zap.Logger) {
	r.POST("/login", handler.Login)

	session := r.Group("")
	session.Use(middleware.AuthMiddleware(authn))
	session.Use(middleware.ContextLogger(logger))
	{
		session.POST("/logout", handler.Logout)
		session.GET("/auth/me", handler.Me)
	}
}
