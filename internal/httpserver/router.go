package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/items_api/internal/db"
	"github.com/Skotchmaster/items_api/internal/logging"
	authmw "github.com/Skotchmaster/items_api/internal/middleware/auth"
)

type Deps struct {
	AuthHandler *AuthHTTP
	ItemHandler *ItemHTTP
	Auth        *authmw.BearerAuth
	DB          *gorm.DB
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context(), d.DB); err != nil {
			logging.FromContext(c.Request().Context()).Error("readiness_failed", "error", err)
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	})

	e.POST("/register", d.AuthHandler.Register)
	e.POST("/login", d.AuthHandler.Login)

	items := e.Group("/items", d.Auth.RequireAuth)
	items.POST("", d.ItemHandler.CreateItem)
	items.GET("", d.ItemHandler.ListItems)
	items.GET("/search", d.ItemHandler.SearchItems)
	items.GET("/:id", d.ItemHandler.GetItem)
	items.PUT("/:id", d.ItemHandler.UpdateItem)
	items.DELETE("/:id", d.ItemHandler.DeleteItem)
}
