package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"loanflow-service/internal/domain/identity"
	"loanflow-service/internal/usecase/auth"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxAuthID = "auth_id"
	CtxRole   = "role"
)

// TokenParser validates a bearer token. Satisfied by the auth usecase.
type TokenParser interface {
	ParseToken(token string) (*auth.Claims, error)
}

// Auth requires a valid Bearer token and stores its identity in the request
// context.
func Auth(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			claims, err := parser.ParseToken(strings.TrimSpace(token))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			c.Set(CtxAuthID, claims.AuthID)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}

// RequireAdmin gates a route group to admin identities. Must run after Auth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role, _ := c.Get(CtxRole).(string); role != identity.RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin access required"})
			}
			return next(c)
		}
	}
}
