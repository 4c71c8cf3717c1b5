package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	apiPrefix  = "/api/v1"
	todoPrefix = apiPrefix + "/todo"
)

type Deps struct {
	BooksURL string
	TodoURL  string
}

// Register mounts the book catalog under /api/v1/books and the ToDo API under /api/v1/todo.
func Register(e *echo.Echo, d *Deps) error {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	booksProxy, err := newProxy(d.BooksURL, apiPrefix)
	if err != nil {
		return err
	}

	todoProxy, err := newProxy(d.TodoURL, todoPrefix)
	if err != nil {
		return err
	}

	e.Any(apiPrefix+"/books", booksProxy)
	e.Any(apiPrefix+"/books/*", booksProxy)
	e.POST(apiPrefix+"/login/", booksProxy)

	e.Any(todoPrefix, todoProxy)
	e.Any(todoPrefix+"/*", todoProxy)

	return nil
}
