package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/items_api/internal/logging"
	authmw "github.com/Skotchmaster/items_api/internal/middleware/auth"
	"github.com/Skotchmaster/items_api/internal/service"
	"github.com/Skotchmaster/items_api/internal/transport"
	"github.com/Skotchmaster/items_api/internal/util"
)

type ItemHTTP struct {
	Svc *service.ItemService
}

func callerID(c echo.Context) (uint, error) {
	id, ok := authmw.UserID(c)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "Authentication token required.")
	}
	return id, nil
}

func (h *ItemHTTP) CreateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "items.create")

	uid, err := callerID(c)
	if err != nil {
		return err
	}

	var req transport.ItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_item_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body.")
	}

	item, err := h.Svc.Create(ctx, uid, service.ItemInput{Name: req.Name, Description: req.Description})
	if err != nil {
		if he, ok := badRequest(l, "create_item_failed", err); ok {
			return he
		}
		return internalError(l, "create_item_failed", "Internal Server Error creating item.", err)
	}

	l.Info("create_item_success", "item_id", item.ID)
	return c.JSON(http.StatusCreated, transport.CreateItemResponse{
		Message: "Item created successfully",
		ID:      item.ID,
	})
}

func (h *ItemHTTP) ListItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "items.list")

	uid, err := callerID(c)
	if err != nil {
		return err
	}

	items, err := h.Svc.List(ctx, uid)
	if err != nil {
		return internalError(l, "list_items_failed", "Internal Server Error fetching items.", err)
	}

	return c.JSON(http.StatusOK, transport.NewItemList(items))
}

func (h *ItemHTTP) GetItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "items.get")

	uid, err := callerID(c)
	if err != nil {
		return err
	}

	item, err := h.Svc.Get(ctx, uid, c.Param("id"))
	if err != nil {
		if he, ok := badRequest(l, "get_item_failed", err); ok {
			return he
		}
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_item_failed", "status", 404, "reason", "absent or not owned")
			return echo.NewHTTPError(http.StatusNotFound, "Item not found or access denied.")
		}
		return internalError(l, "get_item_failed", "Internal Server Error fetching item.", err)
	}

	return c.JSON(http.StatusOK, transport.NewItemResponse(*item))
}

func (h *ItemHTTP) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "items.update")

	uid, err := callerID(c)
	if err != nil {
		return err
	}

	var req transport.ItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_item_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body.")
	}

	err = h.Svc.Update(ctx, uid, c.Param("id"), service.ItemInput{Name: req.Name, Description: req.Description})
	if err != nil {
		if he, ok := badRequest(l, "update_item_failed", err); ok {
			return he
		}
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_item_failed", "status", 404, "reason", "item not found")
			return echo.NewHTTPError(http.StatusNotFound, "Item not found.")
		case errors.Is(err, service.ErrForbidden):
			l.Warn("update_item_failed", "status", 403, "reason", "not the owner")
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden: You do not have permission to update this item.")
		}
		return internalError(l, "update_item_failed", "Internal Server Error updating item.", err)
	}

	l.Info("update_item_success", "item_id", c.Param("id"))
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Item updated successfully"})
}

func (h *ItemHTTP) DeleteItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "items.delete")

	uid, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, uid, c.Param("id")); err != nil {
		if he, ok := badRequest(l, "delete_item_failed", err); ok {
			return he
		}
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("delete_item_failed", "status", 404, "reason", "item not found")
			return echo.NewHTTPError(http.StatusNotFound, "Item not found.")
		case errors.Is(err, service.ErrForbidden):
			l.Warn("delete_item_failed", "status", 403, "reason", "not the owner")
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden: You do not have permission to delete this item.")
		}
		return internalError(l, "delete_item_failed", "Internal Server Error deleting item.", err)
	}

	l.Info("delete_item_success", "item_id", c.Param("id"))
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Item deleted successfully"})
}

func (h *ItemHTTP) SearchItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "items.search")

	uid, err := callerID(c)
	if err != nil {
		return err
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)

	res, err := h.Svc.Search(ctx, uid, c.QueryParam("q"), page, size)
	if err != nil {
		if he, ok := badRequest(l, "search_items_failed", err); ok {
			return he
		}
		return internalError(l, "search_items_failed", "Internal Server Error searching items.", err)
	}

	return c.JSON(http.StatusOK, transport.SearchResponse{
		Total: res.Total,
		Page:  res.Page,
		Size:  res.Size,
		Items: transport.NewItemList(res.Items),
	})
}
