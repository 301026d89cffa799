package auth

import (
	"net/http"

	"go-employee/internal/middleware"
	"go-employee/internal/shared/apperror"
	"go-employee/internal/shared/contextutil"
	"go-employee/internal/shared/request"
	"go-employee/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service      Service
	secureCookie bool
	logger       *zap.Logger
}

// NewHandler builds the auth endpoints. secureCookie marks the web session cookie Secure.
func NewHandler(s Service, secureCookie bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, secureCookie: secureCookie, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	problem := response.Error(c, err)
	if problem.Status >= http.StatusInternalServerError {
		h.logger.Error("auth request failed",
			zap.String("path", c.FullPath()),
			zap.Int("status", problem.Status),
			zap.Error(err),
		)
		return
	}
	h.logger.Info("auth request rejected",
		zap.String("path", c.FullPath()),
		zap.Int("status", problem.Status),
		zap.String("detail", problem.Detail),
	)
}

func (h *Handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := request.BindJSON(c, &req); err != nil {
		h.writeError(c, err)
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if request.IsWebClient(c.GetHeader(request.ClientTypeHeader), c.GetHeader("User-Agent")) {
		h.setSessionCookie(c, token.AccessToken, int(token.ExpiresIn))
	}

	response.Success(c, http.StatusOK, token)
}

func (h *Handler) Logout(c *gin.Context) {
	principal, ok := contextutil.GetPrincipal(c.Request.Context())
	if !ok {
		h.writeError(c, apperror.Unauthenticated("Token not found"))
		return
	}

	if err := h.service.Logout(c.Request.Context(), principal); err != nil {
		h.writeError(c, err)
		return
	}

	// harus sama dengan cookie saat login
	h.setSessionCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

func (h *Handler) Me(c *gin.Context) {
	principal, ok := contextutil.GetPrincipal(c.Request.Context())
	if !ok {
		h.writeError(c, apperror.Unauthenticated("Token not found"))
		return
	}

	me, err := h.service.Me(c.Request.Context(), principal)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, me)
}
