package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/todo_books/services/todo/internal/models"
)

// scoped restricts q to ownerID's items. A nil ownerID leaves q unscoped.
func scoped(q *gorm.DB, ownerID *uint) *gorm.DB {
	if ownerID == nil {
		return q
	}
	return q.Where("owner_id = ?", *ownerID)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (r *GormRepo) ListTodos(ctx context.Context, ownerID *uint) ([]models.TodoItem, error) {
	items := []models.TodoItem{}
	if err := scoped(r.DB.WithContext(ctx), ownerID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetTodo(ctx context.Context, id uint, ownerID *uint) (*models.TodoItem, error) {
	var item models.TodoItem
	if err := scoped(r.DB.WithContext(ctx), ownerID).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (r *GormRepo) CreateTodo(ctx context.Context, item *models.TodoItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

// UpdateTodo replaces title, description, priority and complete of an existing item.
// Lookup and write share one transaction.
func (r *GormRepo) UpdateTodo(ctx context.Context, id uint, ownerID *uint, fields models.TodoItem) (*models.TodoItem, error) {
	var item models.TodoItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := scoped(tx, ownerID).Where("id = ?", id).First(&item).Error; err != nil {
			return err
		}
		item.Title = fields.Title
		item.Description = fields.Description
		item.Priority = fields.Priority
		item.Complete = fields.Complete
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (r *GormRepo) DeleteTodo(ctx context.Context, id uint, ownerID *uint) (*models.TodoItem, error) {
	var item models.TodoItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := scoped(tx, ownerID).Where("id = ?", id).First(&item).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}
