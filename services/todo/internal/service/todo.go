package service

import (
	"context"

	"github.com/Skotchmaster/todo_books/pkg/events"
	"github.com/Skotchmaster/todo_books/pkg/logging"
	"github.com/Skotchmaster/todo_books/services/todo/internal/models"
	"github.com/Skotchmaster/todo_books/services/todo/internal/repo"
	"github.com/Skotchmaster/todo_books/services/todo/internal/transport"
)

var ErrNotFound = repo.ErrNotFound

// TodoService manages to-do items. A nil ownerID means the caller is not
// authenticated and sees every item.
type TodoService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (s *TodoService) List(ctx context.Context, ownerID *uint) ([]models.TodoItem, error) {
	return s.Repo.ListTodos(ctx, ownerID)
}

func (s *TodoService) Get(ctx context.Context, id uint, ownerID *uint) (*models.TodoItem, error) {
	return s.Repo.GetTodo(ctx, id, ownerID)
}

func (s *TodoService) Create(ctx context.Context, req transport.CreateTodoItem, ownerID *uint) (*models.TodoItem, error) {
	l := logging.FromContext(ctx).With().Str("svc", "todo.create").Logger()

	item := req.ToModel(ownerID)
	if err := s.Repo.CreateTodo(ctx, &item); err != nil {
		l.Error().Err(err).Msg("create_todo_failed")
		return nil, err
	}

	publish(ctx, s.Events, events.TopicTodoEvents, ownerKey(ownerID), todoEvent(EventTodoCreated, &item))
	return &item, nil
}

func (s *TodoService) Update(ctx context.Context, id uint, req transport.CreateTodoItem, ownerID *uint) (*models.TodoItem, error) {
	item, err := s.Repo.UpdateTodo(ctx, id, ownerID, req.ToModel(ownerID))
	if err != nil {
		return nil, err
	}

	publish(ctx, s.Events, events.TopicTodoEvents, ownerKey(item.OwnerID), todoEvent(EventTodoUpdated, item))
	return item, nil
}

func (s *TodoService) Delete(ctx context.Context, id uint, ownerID *uint) error {
	item, err := s.Repo.DeleteTodo(ctx, id, ownerID)
	if err != nil {
		return err
	}

	publish(ctx, s.Events, events.TopicTodoEvents, ownerKey(item.OwnerID), todoEvent(EventTodoDeleted, item))
	return nil
}
