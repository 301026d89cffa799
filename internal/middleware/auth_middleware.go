package middleware

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go-employee/internal/domain"
	"go-employee/internal/shared/apperror"
	"go-employee/internal/shared/contextutil"
	"go-employee/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookie = "access_token"

// Authenticator resolves a bearer token into the calling principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Principal, error)
}

func AuthMiddleware(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := BearerToken(c)
		if tokenString == "" {
			response.Error(c, apperror.Unauthenticated("Token not found"))
			return
		}

		principal, err := authn.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			var appErr *apperror.AppError
			if !errors.As(err, &appErr) {
				err = apperror.Unauthenticated("Invalid token")
			}
			response.Error(c, err)
			return
		}

		ctx := contextutil.WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)
		c.Set("user_id", strconv.FormatInt(principal.ID, 10))
		c.Set("roles", principal.Roles)

		c.Next()
	}
}

// BearerToken reads the Authorization header, falling back to the cookie.
func BearerToken(c *gin.Context) string {
	tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if found {
		tokenString = strings.TrimSpace(tokenString)
	} else {
		tokenString = ""
	}

	if tokenString == "" {
		if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
			tokenString = cookie
		}
	}
	return tokenString
}
