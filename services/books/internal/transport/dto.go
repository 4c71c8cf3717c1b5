package transport

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/Skotchmaster/todo_books/services/books/internal/models"
)

// BookCreate is the body of both create and full-replace update requests.
type BookCreate struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Description *string  `json:"description"`
	Rating      *float64 `json:"rating"`
}

func (r BookCreate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&r.Author, validation.Required, validation.RuneLength(1, 150)),
		validation.Field(&r.Description, validation.NilOrNotEmpty, validation.RuneLength(2, 500)),
		validation.Field(&r.Rating, validation.NotNil, validation.Min(0.0), validation.Max(10.0)),
	)
}

func (r BookCreate) ToBook(id uuid.UUID) models.Book {
	b := models.Book{
		ID:          id,
		Title:       r.Title,
		Author:      r.Author,
		Description: r.Description,
	}
	if r.Rating != nil {
		b.Rating = *r.Rating
	}
	return b
}

type DeleteResponse struct {
	Message string `json:"message"`
}
