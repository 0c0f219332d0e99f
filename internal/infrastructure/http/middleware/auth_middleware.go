package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/ami-meeting-svc/internal/domain/entities"
	"github.com/johnquangdev/ami-meeting-svc/internal/usecase/auth"
)

const (
	// UserContextKey is the echo context key for the authenticated user
	UserContextKey = "user"
	// UserIDContextKey is the echo context key for the authenticated user's ID
	UserIDContextKey = "user_id"

	accessTokenCookie = "access_token"
)

// EchoAuth returns an Echo middleware that validates the session token and
// sets "user" (*entities.User) and "user_id" (uuid.UUID) into the context.
// The token is read from the Authorization header or the access_token cookie.
func EchoAuth(authService auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization token")
			}

			user, err := authService.ValidateSession(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(UserContextKey, user)
			c.Set(UserIDContextKey, user.ID)

			return next(c)
		}
	}
}

// UserFromContext retrieves the authenticated user set by EchoAuth
func UserFromContext(c echo.Context) (*entities.User, bool) {
	user, ok := c.Get(UserContextKey).(*entities.User)
	return user, ok
}

// UserIDFromContext retrieves the authenticated user's ID set by EchoAuth
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(UserIDContextKey).(uuid.UUID)
	return id, ok
}

func extractToken(c echo.Context) string {
	// Expected format: "Bearer <token>"
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	if cookie, err := c.Cookie(accessTokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}
