package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/todo_books/services/todo/internal/models"
	"github.com/Skotchmaster/todo_books/services/todo/internal/repo"
	"github.com/Skotchmaster/todo_books/services/todo/internal/testutil"
)

func ownerPtr(v uint) *uint { return &v }

func mustUser(t *testing.T, r *repo.GormRepo, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, FirstName: username, HashedPassword: "hash", IsActive: true}
	require.NoError(t, r.CreateUser(context.Background(), u))
	require.NotZero(t, u.ID)
	return u
}

func TestTodoCRUD(t *testing.T) {
	r := testutil.NewRepo(t)
	ctx := context.Background()

	item := &models.TodoItem{Title: "write tests", Priority: 2}
	require.NoError(t, r.CreateTodo(ctx, item))
	require.NotZero(t, item.ID)

	got, err := r.GetTodo(ctx, item.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "write tests", got.Title)
	assert.False(t, got.Complete)

	desc := "all of them"
	updated, err := r.UpdateTodo(ctx, item.ID, nil, models.TodoItem{Title: "write more tests", Description: &desc, Priority: 5, Complete: true})
	require.NoError(t, err)
	assert.Equal(t, item.ID, updated.ID)

	got, err = r.GetTodo(ctx, item.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "write more tests", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, desc, *got.Description)
	assert.Equal(t, 5, got.Priority)
	assert.True(t, got.Complete)

	deleted, err := r.DeleteTodo(ctx, item.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, item.ID, deleted.ID)

	_, err = r.GetTodo(ctx, item.ID, nil)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	_, err = r.DeleteTodo(ctx, item.ID, nil)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	_, err = r.UpdateTodo(ctx, item.ID, nil, models.TodoItem{Title: "x", Priority: 1})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestListTodos_Empty(t *testing.T) {
	r := testutil.NewRepo(t)

	items, err := r.ListTodos(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestTodos_OwnerScoped(t *testing.T) {
	r := testutil.NewRepo(t)
	ctx := context.Background()

	alice := mustUser(t, r, "alice")
	bob := mustUser(t, r, "bob")

	aliceItem := &models.TodoItem{Title: "alice task", Priority: 1, OwnerID: ownerPtr(alice.ID)}
	bobItem := &models.TodoItem{Title: "bob task", Priority: 1, OwnerID: ownerPtr(bob.ID)}
	require.NoError(t, r.CreateTodo(ctx, aliceItem))
	require.NoError(t, r.CreateTodo(ctx, bobItem))

	items, err := r.ListTodos(ctx, ownerPtr(alice.ID))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "alice task", items[0].Title)

	all, err := r.ListTodos(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = r.GetTodo(ctx, bobItem.ID, ownerPtr(alice.ID))
	assert.ErrorIs(t, err, repo.ErrNotFound)
	_, err = r.UpdateTodo(ctx, bobItem.ID, ownerPtr(alice.ID), models.TodoItem{Title: "hijack", Priority: 1})
	assert.ErrorIs(t, err, repo.ErrNotFound)
	_, err = r.DeleteTodo(ctx, bobItem.ID, ownerPtr(alice.ID))
	assert.ErrorIs(t, err, repo.ErrNotFound)

	got, err := r.GetTodo(ctx, bobItem.ID, ownerPtr(bob.ID))
	require.NoError(t, err)
	assert.Equal(t, "bob task", got.Title)
}

func TestCreateUser_Duplicate(t *testing.T) {
	r := testutil.NewRepo(t)
	ctx := context.Background()

	email := "alice@example.com"
	require.NoError(t, r.CreateUser(ctx, &models.User{Username: "alice", Email: &email, FirstName: "A", HashedPassword: "h", IsActive: true}))

	err := r.CreateUser(ctx, &models.User{Username: "alice", FirstName: "B", HashedPassword: "h"})
	assert.ErrorIs(t, err, repo.ErrUserAlreadyExists)

	err = r.CreateUser(ctx, &models.User{Username: "other", Email: &email, FirstName: "B", HashedPassword: "h"})
	assert.ErrorIs(t, err, repo.ErrUserAlreadyExists)

	require.NoError(t, r.CreateUser(ctx, &models.User{Username: "carol", FirstName: "C", HashedPassword: "h"}))
	require.NoError(t, r.CreateUser(ctx, &models.User{Username: "dave", FirstName: "D", HashedPassword: "h"}), "users without email do not collide")
}

func TestCreateUser_LostRaceIsConflict(t *testing.T) {
	r := testutil.NewRepo(t)
	ctx := context.Background()

	// A competing registration lands between the availability check and the insert.
	raced := false
	require.NoError(t, r.DB.Callback().Create().Before("gorm:create").Register("test:race", func(tx *gorm.DB) {
		u, ok := tx.Statement.Dest.(*models.User)
		if !ok || raced {
			return
		}
		raced = true
		tx.AddError(tx.Session(&gorm.Session{NewDB: true}).
			Exec("INSERT INTO users (username, first_name, hashed_password, is_active) VALUES (?, ?, ?, ?)",
				u.Username, "Other", "h", true).Error)
	}))

	err := r.CreateUser(ctx, &models.User{Username: "alice", FirstName: "A", HashedPassword: "h"})
	assert.ErrorIs(t, err, repo.ErrUserAlreadyExists)
}

func TestGetUser(t *testing.T) {
	r := testutil.NewRepo(t)
	ctx := context.Background()

	alice := mustUser(t, r, "alice")

	got, err := r.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)
	assert.True(t, got.IsActive)

	got, err = r.GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = r.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repo.ErrUserNotFound)
	_, err = r.GetUserByID(ctx, 999)
	assert.ErrorIs(t, err, repo.ErrUserNotFound)
}
