package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/todo_books/pkg/validate"
	"github.com/Skotchmaster/todo_books/services/books/internal/models"
	"github.com/Skotchmaster/todo_books/services/books/internal/repo"
	"github.com/Skotchmaster/todo_books/services/books/internal/service"
)

const gatsbyID = "663b5300-df83-496d-ac2e-4838239a4811"

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	svc := &service.BookService{
		Repo:         repo.NewMemoryStore(),
		DemoUsername: "FastAPIUser",
		DemoPassword: "test1234",
	}
	require.NoError(t, svc.Seed(context.Background()))

	e := echo.New()
	e.Validator = validate.Validator{}
	Register(e, &Deps{BooksHandler: &BooksHTTP{Svc: svc}})
	return e
}

func do(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBooks(t *testing.T, rec *httptest.ResponseRecorder) []models.Book {
	t.Helper()
	var books []models.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &books))
	return books
}

func TestListBooks(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/books", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBooks(t, rec), 4)

	rec = do(e, http.MethodGet, "/books?min_rating=9.0", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	books := decodeBooks(t, rec)
	require.Len(t, books, 2)
	assert.Equal(t, "To Kill a Mockingbird", books[0].Title)
	assert.Equal(t, "1984", books[1].Title)

	rec = do(e, http.MethodGet, "/books?limit=1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBooks(t, rec), 1)

	rec = do(e, http.MethodGet, "/books?books_to_return=3", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBooks(t, rec), 3)

	rec = do(e, http.MethodGet, "/books?min_rating=10", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListBooks_BadQuery(t *testing.T) {
	e := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/books?min_rating=abc", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/books?limit=two", "", nil).Code)
}

func TestGetBook(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/books/"+gatsbyID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var book models.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &book))
	assert.Equal(t, "The Great Gatsby", book.Title)

	missing := uuid.New()
	rec = do(e, http.MethodGet, "/books/"+missing.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Book with ID "+missing.String()+" not found.")

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/books/not-a-uuid", "", nil).Code)
}

func TestCreateBook(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/books", `{"title":"Dune","author":"Frank Herbert","rating":9.1}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Dune", created.Title)
	assert.Nil(t, created.Description)

	rec = do(e, http.MethodGet, "/books/"+created.ID.String(), "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodGet, "/books", "", nil)
	assert.Len(t, decodeBooks(t, rec), 5)
}

func TestCreateBook_Validation(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "empty title", body: `{"title":"","author":"A","rating":1}`, field: "title"},
		{name: "long title", body: `{"title":"` + strings.Repeat("x", 101) + `","author":"A","rating":1}`, field: "title"},
		{name: "missing author", body: `{"title":"T","rating":1}`, field: "author"},
		{name: "short description", body: `{"title":"T","author":"A","description":"x","rating":1}`, field: "description"},
		{name: "missing rating", body: `{"title":"T","author":"A"}`, field: "rating"},
		{name: "rating above range", body: `{"title":"T","author":"A","rating":10.5}`, field: "rating"},
		{name: "negative rating", body: `{"title":"T","author":"A","rating":-1}`, field: "rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/books", tt.body, nil)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), `"`+tt.field+`"`)
		})
	}

	rec := do(e, http.MethodGet, "/books", "", nil)
	assert.Len(t, decodeBooks(t, rec), 4, "rejected bodies do not change the store")

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/books", `{"title":`, nil).Code)
}

func TestUpdateBook(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPut, "/books/"+gatsbyID, `{"title":"Gatsby","author":"Fitzgerald","description":"Updated.","rating":7}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var book models.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &book))
	assert.Equal(t, gatsbyID, book.ID.String())
	assert.Equal(t, "Gatsby", book.Title)
	assert.Equal(t, 7.0, book.Rating)

	rec = do(e, http.MethodPut, "/books/"+uuid.NewString(), `{"title":"T","author":"A","rating":1}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodPut, "/books/"+gatsbyID, `{"title":"T","author":"A","rating":11}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeleteBook(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodDelete, "/books/"+gatsbyID, "", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"message":"Book with ID `+gatsbyID+` was deleted."}`, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/books/"+gatsbyID, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodDelete, "/books/"+gatsbyID, "", nil).Code)
}

func TestLogin(t *testing.T) {
	e := newTestServer(t)
	creds := map[string]string{"username": "FastAPIUser", "password": "test1234"}

	rec := do(e, http.MethodPost, "/login/?book_number=1", "", creds)
	require.Equal(t, http.StatusOK, rec.Code)
	var book models.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &book))
	assert.Equal(t, "To Kill a Mockingbird", book.Title)

	rec = do(e, http.MethodPost, "/login/?book_number=1", "", map[string]string{"username": "FastAPIUser", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.Equal(t, http.StatusUnauthorized, do(e, http.MethodPost, "/login/?book_number=1", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodPost, "/login/?book_number=9", "", creds).Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodPost, "/login/?book_number=-1", "", creds).Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/login/?book_number=x", "", creds).Code)
}

func TestHealth(t *testing.T) {
	e := newTestServer(t)

	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/health/live", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/health/ready", "", nil).Code)
}
