package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/items_api/internal/logging"
	"github.com/Skotchmaster/items_api/internal/tokens"
)

type Verifier interface {
	Verify(raw string) (*tokens.Claims, error)
}

type BearerAuth struct {
	Tokens Verifier
}

func NewBearerAuth(v Verifier) *BearerAuth {
	return &BearerAuth{Tokens: v}
}

func (m *BearerAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		l := logging.FromContext(c.Request().Context()).With("mw", "require_auth")

		claims, err := m.Tokens.Verify(bearerToken(c))
		if err != nil {
			switch {
			case errors.Is(err, tokens.ErrMissingToken):
				l.Warn("auth_failed", "status", 401, "reason", "no token")
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication token required.")
			case errors.Is(err, tokens.ErrTokenExpired):
				l.Warn("auth_failed", "status", 401, "reason", "token expired")
				return echo.NewHTTPError(http.StatusUnauthorized, "Token expired.")
			default:
				l.Warn("auth_failed", "status", 403, "reason", "invalid token", "error", err)
				return echo.NewHTTPError(http.StatusForbidden, "Invalid token.")
			}
		}

		setUserContext(c, claims)
		return next(c)
	}
}
