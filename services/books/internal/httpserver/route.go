package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	BooksHandler *BooksHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	books := e.Group("/books")
	books.GET("", d.BooksHandler.ListBooks)
	books.GET("/:id", d.BooksHandler.GetBook)
	books.POST("", d.BooksHandler.CreateBook)
	books.PUT("/:id", d.BooksHandler.UpdateBook)
	books.DELETE("/:id", d.BooksHandler.DeleteBook)

	e.POST("/login/", d.BooksHandler.Login)
}
