package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/Skotchmaster/todo_books/pkg/middleware/auth"
)

type Deps struct {
	TodoHandler *TodoHTTP
	AuthHandler *AuthHTTP
	Tokens      authmw.TokenParser
	// RequireAuth scopes the item routes to the bearer token's user. /todo_list/user is always protected.
	RequireAuth bool
	Ready       func(ctx context.Context) error
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c.Request().Context()); err != nil {
				return c.NoContent(http.StatusServiceUnavailable)
			}
		}
		return c.NoContent(http.StatusOK)
	})

	e.POST("/create/user", d.AuthHandler.Register)
	e.POST("/token", d.AuthHandler.Token)

	authMW := authmw.RequireAuth(d.Tokens)
	e.GET("/todo_list/user", d.TodoHandler.ListUserTodos, authMW)

	var items []echo.MiddlewareFunc
	if d.RequireAuth {
		items = append(items, authMW)
	}
	e.GET("/", d.TodoHandler.ListTodos, items...)
	e.POST("/create_todo_item", d.TodoHandler.CreateTodo, items...)
	e.GET("/todo_item/:id", d.TodoHandler.GetTodo, items...)
	e.PUT("/todo_item/:id", d.TodoHandler.UpdateTodo, items...)
	e.DELETE("/todo_item/:id", d.TodoHandler.DeleteTodo, items...)
}
