package middleware

import (
	"go-employee/internal/domain"
	"go-employee/internal/shared/apperror"
	"go-employee/internal/shared/contextutil"
	"go-employee/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService adalah interface lokal.
// Apapun package yang punya method Enforce(domain.EnforceRequest) bisa masuk ke sini.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := contextutil.GetPrincipal(c.Request.Context())
		if !ok {
			response.Error(c, apperror.Unauthenticated("Missing auth context"))
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Roles:    principal.Roles,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.Error(c, apperror.Internal(err))
			return
		}

		if !allowed {
			response.Error(c, apperror.Forbidden())
			return
		}
		c.Next()
	}
}
