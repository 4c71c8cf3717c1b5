package service

import (
	"context"
	"strconv"
	"time"

	"github.com/Skotchmaster/todo_books/pkg/events"
	"github.com/Skotchmaster/todo_books/pkg/logging"
	"github.com/Skotchmaster/todo_books/services/todo/internal/models"
)

const (
	EventTodoCreated    = "todo_created"
	EventTodoUpdated    = "todo_updated"
	EventTodoDeleted    = "todo_deleted"
	EventUserRegistered = "user_registered"
)

type TodoEvent struct {
	Type     string    `json:"type"`
	ItemID   uint      `json:"item_id"`
	OwnerID  *uint     `json:"owner_id,omitempty"`
	Title    string    `json:"title"`
	Priority int       `json:"priority"`
	Complete bool      `json:"complete"`
	At       time.Time `json:"at"`
}

type UserEvent struct {
	Type     string    `json:"type"`
	UserID   uint      `json:"user_id"`
	Username string    `json:"username"`
	At       time.Time `json:"at"`
}

func todoEvent(kind string, item *models.TodoItem) TodoEvent {
	return TodoEvent{
		Type:     kind,
		ItemID:   item.ID,
		OwnerID:  item.OwnerID,
		Title:    item.Title,
		Priority: item.Priority,
		Complete: item.Complete,
		At:       time.Now().UTC(),
	}
}

func ownerKey(ownerID *uint) string {
	if ownerID == nil {
		return "anonymous"
	}
	return strconv.FormatUint(uint64(*ownerID), 10)
}

// publish delivers the event best effort: a broker failure is logged and never fails the request.
func publish(ctx context.Context, p events.Publisher, topic, key string, event any) {
	if p == nil {
		return
	}
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Warn().
			Str("topic", topic).
			Str("key", key).
			Err(err).
			Msg("publish_event_failed")
	}
}
