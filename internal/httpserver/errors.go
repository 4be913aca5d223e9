package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/items_api/internal/service"
)

// badRequest renders the validator's message when err is a validation failure.
func badRequest(l *slog.Logger, event string, err error) (*echo.HTTPError, bool) {
	var ve *service.ValidationError
	if !errors.As(err, &ve) {
		return nil, false
	}
	l.Warn(event, "status", 400, "reason", ve.Msg)
	return echo.NewHTTPError(http.StatusBadRequest, ve.Msg), true
}

func internalError(l *slog.Logger, event, message string, err error) *echo.HTTPError {
	l.Error(event, "status", 500, "reason", message, "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, message)
}
