package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/meettrack-team/meettrack/internal/domain/entities"
	"github.com/meettrack-team/meettrack/internal/usecase/auth"
)

const (
	// UserContextKey is the Echo context key for the authenticated user
	UserContextKey = "user"
	// UserIDContextKey is the Echo context key for the authenticated user's ID
	UserIDContextKey = "user_id"
)

// EchoAuth returns an Echo middleware that validates JWT and sets
// "user_id" (uuid.UUID) and "user" (*entities.User) into Echo context
func EchoAuth(oauthService *auth.OAuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization token")
			}

			user, err := oauthService.ValidateSession(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(UserContextKey, user)
			c.Set(UserIDContextKey, user.ID)

			return next(c)
		}
	}
}

// RequireRole returns an Echo middleware that checks the authenticated user's
// role. It must run after EchoAuth.
func RequireRole(roles ...entities.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := GetUserFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}

			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
		}
	}
}

// GetUserFromContext retrieves the authenticated user from Echo context
func GetUserFromContext(c echo.Context) (*entities.User, bool) {
	user, ok := c.Get(UserContextKey).(*entities.User)
	return user, ok
}

func extractToken(c echo.Context) string {
	// Authorization header first, "Bearer <token>"
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	// Cookie as fallback
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie.Value
	}

	return ""
}
