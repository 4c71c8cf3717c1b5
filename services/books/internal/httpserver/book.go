package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/todo_books/pkg/logging"
	"github.com/Skotchmaster/todo_books/pkg/validate"
	"github.com/Skotchmaster/todo_books/services/books/internal/service"
	"github.com/Skotchmaster/todo_books/services/books/internal/transport"
	"github.com/Skotchmaster/todo_books/services/books/internal/util"
)

type BooksHTTP struct {
	Svc *service.BookService
}

func notFound(id uuid.UUID) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Book with ID %s not found.", id))
}

func (h *BooksHTTP) ListBooks(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "books.list_books").Logger()

	minRating, err := util.ParseOptionalFloat(c.QueryParam("min_rating"))
	if err != nil {
		l.Warn().Int("status", 400).Str("reason", "min_rating is not a number").Err(err).Msg("list_books_failed")
		return echo.NewHTTPError(http.StatusBadRequest, "min_rating must be a number")
	}

	limit, err := util.ParseIntDefault(util.FirstNonEmpty(c.QueryParam("limit"), c.QueryParam("books_to_return")), 0)
	if err != nil {
		l.Warn().Int("status", 400).Str("reason", "limit is not an integer").Err(err).Msg("list_books_failed")
		return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
	}

	books, err := h.Svc.List(ctx, service.ListFilter{MinRating: minRating, Limit: limit})
	if err != nil {
		l.Error().Int("status", 500).Str("reason", "cannot list books").Err(err).Msg("list_books_failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list books")
	}

	return c.JSON(http.StatusOK, books)
}

func (h *BooksHTTP) GetBook(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "books.get_book").Logger()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn().Int("status", 400).Str("reason", "id is not a uuid").Err(err).Msg("get_book_failed")
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	book, err := h.Svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn().Int("status", 404).Str("reason", "book not found").Str("book_id", id.String()).Msg("get_book_failed")
			return notFound(id)
		}
		l.Error().Int("status", 500).Str("reason", "cannot get book").Err(err).Msg("get_book_failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get book")
	}

	return c.JSON(http.StatusOK, book)
}

func (h *BooksHTTP) bindBook(c echo.Context, op string) (transport.BookCreate, error) {
	l := logging.FromContext(c.Request().Context())

	var req transport.BookCreate
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

func (h *BooksHTTP) CreateBook(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "books.create_book").Logger()

	req, err := h.bindBook(c, "create_book")
	if err != nil {
		return err
	}

	book, err := h.Svc.Create(ctx, req)
	if err != nil {
		l.Error().Int("status", 500).Str("reason", "cannot store book").Err(err).Msg("create_book_failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot store book")
	}

	l.Info().Str("book_id", book.ID.String()).Msg("create_book_success")
	return c.JSON(http.StatusCreated, book)
}

func (h *BooksHTTP) UpdateBook(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "books.update_book").Logger()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn().Int("status", 400).Str("reason", "id is not a uuid").Err(err).Msg("update_book_failed")
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	req, err := h.bindBook(c, "update_book")
	if err != nil {
		return err
	}

	book, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn().Int("status", 404).Str("reason", "book not found").Str("book_id", id.String()).Msg("update_book_failed")
			return notFound(id)
		}
		l.Error().Int("status", 500).Str("reason", "cannot update book").Err(err).Msg("update_book_failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update book")
	}

	l.Info().Str("book_id", id.String()).Msg("update_book_success")
	return c.JSON(http.StatusOK, book)
}

func (h *BooksHTTP) DeleteBook(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "books.delete_book").Logger()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn().Int("status", 400).Str("reason", "id is not a uuid").Err(err).Msg("delete_book_failed")
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn().Int("status", 404).Str("reason", "book not found").Str("book_id", id.String()).Msg("delete_book_failed")
			return notFound(id)
		}
		l.Error().Int("status", 500).Str("reason", "cannot delete book").Err(err).Msg("delete_book_failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete book")
	}

	l.Info().Str("book_id", id.String()).Msg("delete_book_success")
	return c.JSON(http.StatusAccepted, transport.DeleteResponse{
		Message: fmt.Sprintf("Book with ID %s was deleted.", id),
	})
}

// Login serves the legacy positional lookup guarded by header credentials.
func (h *BooksHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "books.login").Logger()

	bookNumber, err := util.ParseIntDefault(c.QueryParam("book_number"), -1)
	if err != nil {
		l.Warn().Int("status", 400).Str("reason", "book_number is not an integer").Err(err).Msg("login_failed")
		return echo.NewHTTPError(http.StatusBadRequest, "book_number must be an integer")
	}

	username := c.Request().Header.Get("username")
	password := c.Request().Header.Get("password")

	book, err := h.Svc.Login(ctx, bookNumber, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			l.Warn().Int("status", 401).Str("reason", "invalid credentials").Msg("login_failed")
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
		case errors.Is(err, service.ErrNotFound):
			l.Warn().Int("status", 404).Str("reason", "book number out of range").Int("book_number", bookNumber).Msg("login_failed")
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Book number %d not found.", bookNumber))
		default:
			l.Error().Int("status", 500).Str("reason", "cannot look up book").Err(err).Msg("login_failed")
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot look up book")
		}
	}

	return c.JSON(http.StatusOK, book)
}
