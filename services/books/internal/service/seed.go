package service

import (
	"github.com/google/uuid"

	"github.com/Skotchmaster/todo_books/services/books/internal/models"
)

func strptr(s string) *string { return &s }

func SeedBooks() []models.Book {
	return []models.Book{
		{
			ID:          uuid.MustParse("663b5300-df83-496d-ac2e-4838239a4811"),
			Title:       "The Great Gatsby",
			Author:      "F. Scott Fitzgerald",
			Description: strptr("A novel about the American Dream."),
			Rating:      8.8,
		},
		{
			ID:          uuid.MustParse("90361a71-925c-487d-934c-60c61ce6c299"),
			Title:       "To Kill a Mockingbird",
			Author:      "Harper Lee",
			Description: strptr("A story of justice and innocence."),
			Rating:      9.3,
		},
		{
			ID:          uuid.MustParse("43ec1e74-a27d-458c-b996-31884023cacd"),
			Title:       "1984",
			Author:      "George Orwell",
			Description: strptr("A dystopian social science fiction novel."),
			Rating:      9.0,
		},
		{
			ID:          uuid.MustParse("2a6bf615-2425-4e55-a15a-0dde0533e7bb"),
			Title:       "The Catcher in the Rye",
			Author:      "J. D. Salinger",
			Description: strptr("A story about teenage angst and alienation."),
			Rating:      8.1,
		},
	}
}
