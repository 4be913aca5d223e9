package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/items_api/internal/tokens"
)

const (
	ctxUserID   = "user_id"
	ctxUsername = "username"
)

// bearerToken returns the second space-separated field of the Authorization header.
func bearerToken(c echo.Context) string {
	parts := strings.Split(c.Request().Header.Get(echo.HeaderAuthorization), " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func setUserContext(c echo.Context, claims *tokens.Claims) {
	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxUsername, claims.Username)
}

// UserID reports the caller id stored by RequireAuth.
func UserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(ctxUserID).(uint)
	return id, ok && id != 0
}

func Username(c echo.Context) string {
	name, _ := c.Get(ctxUsername).(string)
	return name
}
