package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/ami-meeting-svc/errors"
	authdto "github.com/johnquangdev/ami-meeting-svc/internal/adapter/dto/auth"
	"github.com/johnquangdev/ami-meeting-svc/internal/adapter/presenter"
	"github.com/johnquangdev/ami-meeting-svc/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/ami-meeting-svc/internal/usecase/auth"
	"github.com/johnquangdev/ami-meeting-svc/pkg/config"
)

const accessTokenCookie = "access_token"

// Auth handles authentication HTTP requests
type Auth struct {
	authService auth.Service
	cfg         *config.Config
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService auth.Service, cfg *config.Config, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		cfg:         cfg,
		logger:      logger,
	}
}

// Login authenticates with username and password
// POST /v1/auth/login
func (h *Auth) Login(c echo.Context) error {
	var req authdto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload(err))
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	expiresIn := int(h.cfg.Auth.TokenExpiry.Seconds())
	h.setSessionCookie(c, token, expiresIn)

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToLoginResponse(token, expiresIn, user))
}

// Logout clears the session cookie
// POST /v1/auth/logout
func (h *Auth) Logout(c echo.Context) error {
	h.setSessionCookie(c, "", -1)
	return HandleSuccess(h.logger, c, http.StatusOK, map[string]interface{}{
		"message": "logged out",
	})
}

// Me returns the authenticated user
// GET /v1/auth/me
func (h *Auth) Me(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToUserResponse(user))
}

func (h *Auth) setSessionCookie(c echo.Context, value string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     accessTokenCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
