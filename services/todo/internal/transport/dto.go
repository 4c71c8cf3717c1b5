package transport

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/Skotchmaster/todo_books/services/todo/internal/models"
)

const (
	MinPriority = 1
	MaxPriority = 10

	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72
)

func maxBytes(n int) validation.RuleFunc {
	return func(value any) error {
		if s, _ := value.(string); len(s) > n {
			return fmt.Errorf("must be at most %d bytes long", n)
		}
		return nil
	}
}

// CreateTodoItem is the body of both create and full-replace update requests.
type CreateTodoItem struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Priority    int     `json:"priority"`
	Complete    bool    `json:"complete"`
}

func (r CreateTodoItem) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Priority, validation.Required.Error("must be between 1 and 10"), validation.Min(MinPriority), validation.Max(MaxPriority)),
	)
}

func (r CreateTodoItem) ToModel(ownerID *uint) models.TodoItem {
	return models.TodoItem{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Complete:    r.Complete,
		OwnerID:     ownerID,
	}
}

type CreateUser struct {
	Username  string  `json:"username"`
	Email     *string `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  string  `json:"password"`
}

func (r CreateUser) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.EmailFormat),
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.Password, validation.Required, validation.By(maxBytes(MaxPasswordBytes))),
	)
}

// TransactionResponse acknowledges a write to the to-do list.
type TransactionResponse struct {
	StatusCode  int    `json:"status_code"`
	Transaction string `json:"transaction"`
	ID          *uint  `json:"id,omitempty"`
}

func Success(status int) TransactionResponse {
	return TransactionResponse{StatusCode: status, Transaction: "Success"}
}

type RegisterResponse struct {
	Email *string `json:"email"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TokenRequest is the form-encoded body of the token endpoint.
type TokenRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (r TokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}
