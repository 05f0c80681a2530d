package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"shelf/internal/domain/entity"
	"shelf/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// SessionCookieName is the cookie carrying the session token.
	SessionCookieName = "auth"

	bearerPrefix = "Bearer "

	contextKeyUserID = "userID"
	contextKeyRole   = "role"
)

// AuthMiddleware guards routes behind a valid session token.
// The token is read from the `auth` cookie first, then from the
// Authorization header, so both browser and API clients work.
type AuthMiddleware struct {
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthMiddleware creates a new authentication middleware.
func NewAuthMiddleware(tokenService service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		logger:       logger,
	}
}

// Authenticate validates the session token and attaches the caller's identity
// to the request context. Missing, malformed and expired tokens all yield 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
		}

		claims, err := m.tokenService.ValidateToken(tokenString)
		if err != nil {
			m.logger.Debug("Session token rejected", slog.Any("error", err))

			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session token")
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRole, entity.RoleFromString(claims.Role))

		return next(c)
	}
}

// RequireRole returns a middleware that only admits callers with the given role.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			callerRole, ok := GetRole(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}
			if callerRole != role {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}

			return next(c)
		}
	}
}

// extractToken pulls the session token from the auth cookie or the
// Authorization header, in that order.
func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(authHeader, bearerPrefix) {
		return strings.TrimPrefix(authHeader, bearerPrefix)
	}

	return ""
}

// GetUserID returns the authenticated caller's user ID from the request context.
func GetUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("no authenticated user in context")
	}

	return userID, nil
}

// GetRole returns the authenticated caller's role from the request context.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(contextKeyRole).(entity.Role)

	return role, ok
}
