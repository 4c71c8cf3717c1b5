package repo

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/Skotchmaster/todo_books/services/books/internal/models"
)

var ErrNotFound = errors.New("book not found")

// Store keeps books in insertion order.
type Store interface {
	List(ctx context.Context) ([]models.Book, error)
	Get(ctx context.Context, id uuid.UUID) (models.Book, error)
	At(ctx context.Context, index int) (models.Book, error)
	Insert(ctx context.Context, book models.Book) error
	Replace(ctx context.Context, book models.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
	SeedIfEmpty(ctx context.Context, books []models.Book) (bool, error)
	Clear(ctx context.Context) error
}

// MemoryStore is a Store held in process memory. Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	books []models.Book
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) indexOf(id uuid.UUID) int {
	for i := range s.books {
		if s.books[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) List(ctx context.Context) ([]models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Book, len(s.books))
	copy(out, s.books)
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Book{}, ErrNotFound
	}
	return s.books[i], nil
}

func (s *MemoryStore) At(ctx context.Context, index int) (models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.books) {
		return models.Book{}, ErrNotFound
	}
	return s.books[index], nil
}

func (s *MemoryStore) Insert(ctx context.Context, book models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = append(s.books, book)
	return nil
}

func (s *MemoryStore) Replace(ctx context.Context, book models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(book.ID)
	if i < 0 {
		return ErrNotFound
	}
	s.books[i] = book
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.books = append(s.books[:i], s.books[i+1:]...)
	return nil
}

// SeedIfEmpty appends books only when the store holds nothing yet and reports whether it did.
func (s *MemoryStore) SeedIfEmpty(ctx context.Context, books []models.Book) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.books) > 0 {
		return false, nil
	}
	s.books = append(s.books, books...)
	return true, nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = nil
	return nil
}
