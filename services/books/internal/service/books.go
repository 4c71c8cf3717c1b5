package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Skotchmaster/todo_books/pkg/logging"
	"github.com/Skotchmaster/todo_books/services/books/internal/models"
	"github.com/Skotchmaster/todo_books/services/books/internal/repo"
	"github.com/Skotchmaster/todo_books/services/books/internal/transport"
)

var (
	ErrNotFound           = repo.ErrNotFound
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type BookService struct {
	Repo repo.Store

	// DemoUsername and DemoPassword guard the positional lookup behind Login.
	DemoUsername string
	DemoPassword string

	NewID func() uuid.UUID
}

// ListFilter narrows List: MinRating keeps books rated at least that high,
// a positive Limit keeps only the first Limit matches.
type ListFilter struct {
	MinRating *float64
	Limit     int
}

func (s *BookService) newID() uuid.UUID {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.New()
}

func (s *BookService) List(ctx context.Context, f ListFilter) ([]models.Book, error) {
	books, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if f.MinRating != nil {
		filtered := books[:0]
		for _, b := range books {
			if b.Rating >= *f.MinRating {
				filtered = append(filtered, b)
			}
		}
		books = filtered
	}

	if f.Limit > 0 && f.Limit < len(books) {
		books = books[:f.Limit]
	}
	return books, nil
}

func (s *BookService) Get(ctx context.Context, id uuid.UUID) (models.Book, error) {
	return s.Repo.Get(ctx, id)
}

func (s *BookService) Create(ctx context.Context, req transport.BookCreate) (models.Book, error) {
	book := req.ToBook(s.newID())
	if err := s.Repo.Insert(ctx, book); err != nil {
		return models.Book{}, fmt.Errorf("insert book: %w", err)
	}
	return book, nil
}

// Update replaces every field of the book except its id.
func (s *BookService) Update(ctx context.Context, id uuid.UUID, req transport.BookCreate) (models.Book, error) {
	book := req.ToBook(id)
	if err := s.Repo.Replace(ctx, book); err != nil {
		return models.Book{}, err
	}
	return book, nil
}

func (s *BookService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.Repo.Delete(ctx, id)
}

// Login returns the book at position bookNumber for the demo credentials.
func (s *BookService) Login(ctx context.Context, bookNumber int, username, password string) (models.Book, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.DemoUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.DemoPassword)) == 1
	if s.DemoUsername == "" || !userOK || !passOK {
		return models.Book{}, ErrInvalidCredentials
	}
	return s.Repo.At(ctx, bookNumber)
}

// Seed loads the starter catalog when the store is empty.
func (s *BookService) Seed(ctx context.Context) error {
	l := logging.FromContext(ctx).With().Str("svc", "books.seed").Logger()

	seeded, err := s.Repo.SeedIfEmpty(ctx, SeedBooks())
	if err != nil {
		return fmt.Errorf("seed books: %w", err)
	}
	if seeded {
		l.Info().Msg("application startup: populating initial book data")
	}
	return nil
}

func (s *BookService) Clear(ctx context.Context) error {
	logging.FromContext(ctx).Info().Str("svc", "books.clear").Msg("application shutdown: clearing book data")
	return s.Repo.Clear(ctx)
}
