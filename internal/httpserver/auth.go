package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/items_api/internal/logging"
	"github.com/Skotchmaster/items_api/internal/service"
	"github.com/Skotchmaster/items_api/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body.")
	}

	id, err := h.Svc.Register(ctx, req.Username, req.Password)
	if err != nil {
		if he, ok := badRequest(l, "register_failed", err); ok {
			return he
		}
		if errors.Is(err, service.ErrDuplicateUsername) {
			l.Warn("register_failed", "status", 409, "reason", "user_exists")
			return echo.NewHTTPError(http.StatusConflict, "Username already exists.")
		}
		return internalError(l, "register_failed", "Internal Server Error during registration.", err)
	}

	l.Info("register_success", "user_id", id)
	return c.JSON(http.StatusCreated, transport.RegisterResponse{
		Message: "User registered successfully.",
		UserID:  id,
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body.")
	}

	res, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		if he, ok := badRequest(l, "login_failed", err); ok {
			return he
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("login_failed", "status", 401, "reason", "invalid credentials")
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials.")
		}
		return internalError(l, "login_failed", "Internal Server Error during login.", err)
	}

	l.Info("login_success", "user_id", res.UserID)
	return c.JSON(http.StatusOK, transport.LoginResponse{Token: res.Token})
}
