package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/todo_books/pkg/logging"
	authmw "github.com/Skotchmaster/todo_books/pkg/middleware/auth"
	"github.com/Skotchmaster/todo_books/pkg/validate"
	"github.com/Skotchmaster/todo_books/services/todo/internal/service"
	"github.com/Skotchmaster/todo_books/services/todo/internal/transport"
)

const itemNotFound = "Item not in the To Do List"

type TodoHTTP struct {
	Svc *service.TodoService
}

// ownerID is the authenticated caller's id, or nil when the route runs without auth.
func ownerID(c echo.Context) *uint {
	if u, ok := authmw.CurrentUser(c); ok {
		id := u.ID
		return &id
	}
	return nil
}

func itemID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (h *TodoHTTP) ListTodos(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "todo.list").Logger()

	items, err := h.Svc.List(ctx, ownerID(c))
	if err != nil {
		l.Error().Int("status", 500).Str("reason", "cannot list items").Err(err).Msg("list_todos_failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list items")
	}
	return c.JSON(http.StatusOK, items)
}

// ListUserTodos always requires a caller and returns only that caller's items.
func (h *TodoHTTP) ListUserTodos(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "todo.list_user").Logger()

	owner := ownerID(c)
	if owner == nil {
		l.Warn().Int("status", 401).Str("reason", "no authenticated user").Msg("list_user_todos_failed")
		return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
	}

	items, err := h.Svc.List(ctx, owner)
	if err != nil {
		l.Error().Int("status", 500).Str("reason", "cannot list items").Err(err).Msg("list_user_todos_failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list items")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *TodoHTTP) GetTodo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "todo.get").Logger()

	id, err := itemID(c)
	if err != nil {
		l.Warn().Int("status", 400).Str("reason", "id is not an integer").Err(err).Msg("get_todo_failed")
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	item, err := h.Svc.Get(ctx, id, ownerID(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn().Int("status", 404).Str("reason", "item not found").Uint("item_id", id).Msg("get_todo_failed")
			return echo.NewHTTPError(http.StatusNotFound, itemNotFound)
		}
		l.Error().Int("status", 500).Str("reason", "cannot get item").Err(err).Msg("get_todo_failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get item")
	}
	return c.JSON(http.StatusOK, item)
}

func bindTodo(c echo.Context, op string) (transport.CreateTodoItem, error) {
	l := logging.FromContext(c.Request().Context())

	var req transport.CreateTodoItem
	if err := c.Bind(&req); err != nil {
		l.Warn().Int("status", 400).Str("reason", "invalid body").Err(err).Msg(op + "_failed")
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn().Int("status", 422).Str("reason", "validation failed").Err(err).Msg(op + "_failed")
		return req, validate.HTTPError(err)
	}
	return req, nil
}

func (h *TodoHTTP) CreateTodo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "todo.create").Logger()

	req, err := bindTodo(c, "create_todo")
	if err != nil {
		return err
	}

	item, err := h.Svc.Create(ctx, req, ownerID(c))
	if err != nil {
		l.Error().Int("status", 500).Str("reason", "cannot store item").Err(err).Msg("create_todo_failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot store item")
	}

	l.Info().Uint("item_id", item.ID).Msg("create_todo_success")
	resp := transport.Success(http.StatusCreated)
	resp.ID = &item.ID
	return c.JSON(http.StatusCreated, resp)
}

func (h *TodoHTTP) UpdateTodo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "todo.update").Logger()

	id, err := itemID(c)
	if err != nil {
		l.Warn().Int("status", 400).Str("reason", "id is not an integer").Err(err).Msg("update_todo_failed")
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	req, err := bindTodo(c, "update_todo")
	if err != nil {
		return err
	}

	if _, err := h.Svc.Update(ctx, id, req, ownerID(c)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn().Int("status", 404).Str("reason", "item not found").Uint("item_id", id).Msg("update_todo_failed")
			return echo.NewHTTPError(http.StatusNotFound, itemNotFound)
		}
		l.Error().Int("status", 500).Str("reason", "cannot update item").Err(err).Msg("update_todo_failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update item")
	}

	l.Info().Uint("item_id", id).Msg("update_todo_success")
	return c.JSON(http.StatusOK, transport.Success(http.StatusOK))
}

func (h *TodoHTTP) DeleteTodo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "todo.delete").Logger()

	id, err := itemID(c)
	if err != nil {
		l.Warn().Int("status", 400).Str("reason", "id is not an integer").Err(err).Msg("delete_todo_failed")
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	if err := h.Svc.Delete(ctx, id, ownerID(c)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn().Int("status", 404).Str("reason", "item not found").Uint("item_id", id).Msg("delete_todo_failed")
			return echo.NewHTTPError(http.StatusNotFound, itemNotFound)
		}
		l.Error().Int("status", 500).Str("reason", "cannot delete item").Err(err).Msg("delete_todo_failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete item")
	}

	l.Info().Uint("item_id", id).Msg("delete_todo_success")
	return c.JSON(http.StatusOK, transport.Success(http.StatusOK))
}
