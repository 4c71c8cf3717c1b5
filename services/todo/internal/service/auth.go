package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Skotchmaster/todo_books/pkg/events"
	pkg_hash "github.com/Skotchmaster/todo_books/pkg/hash"
	"github.com/Skotchmaster/todo_books/pkg/logging"
	"github.com/Skotchmaster/todo_books/pkg/tokens"
	"github.com/Skotchmaster/todo_books/services/todo/internal/models"
	"github.com/Skotchmaster/todo_books/services/todo/internal/repo"
	"github.com/Skotchmaster/todo_books/services/todo/internal/transport"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserAlreadyExists  = repo.ErrUserAlreadyExists
)

type AuthService struct {
	Repo   *repo.GormRepo
	Tokens *tokens.Manager
	Events events.Publisher
}

type LoginResult struct {
	AccessToken string
	AccessExp   time.Time
	User        *models.User
}

// Register stores a new active user with a bcrypt hash of the password.
func (s *AuthService) Register(ctx context.Context, req transport.CreateUser) (*models.User, error) {
	l := logging.FromContext(ctx).With().Str("svc", "auth.register").Str("username", req.Username).Logger()

	pwHash, err := pkg_hash.HashPassword(req.Password)
	if err != nil {
		l.Error().Int("status", 500).Str("reason", "cannot hash the password").Err(err).Msg("register_failed")
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:       req.Username,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		HashedPassword: pwHash,
		IsActive:       true,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExists) {
			l.Warn().Int("status", 409).Str("reason", "user already exists").Msg("register_failed")
			return nil, ErrUserAlreadyExists
		}
		l.Error().Int("status", 500).Str("reason", "cannot store user").Err(err).Msg("register_failed")
		return nil, err
	}

	publish(ctx, s.Events, events.TopicUserEvents, strconv.FormatUint(uint64(user.ID), 10), UserEvent{
		Type:     EventUserRegistered,
		UserID:   user.ID,
		Username: user.Username,
		At:       time.Now().UTC(),
	})
	l.Info().Uint("user_id", user.ID).Msg("register_success")
	return &user, nil
}

// Authenticate returns the user only for an existing, active account whose password matches.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !pkg_hash.CheckPassword(user.HashedPassword, password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With().Str("svc", "auth.login").Str("username", username).Logger()

	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			l.Warn().Int("status", 401).Str("reason", "invalid username or password").Msg("login_failed")
			return nil, err
		}
		l.Error().Int("status", 500).Err(err).Msg("login_failed")
		return nil, err
	}

	accessToken, accessExp, err := s.Tokens.Issue(user.Username, user.ID, 0)
	if err != nil {
		l.Error().Int("status", 500).Str("reason", "cannot sign token").Err(err).Msg("login_failed")
		return nil, err
	}

	return &LoginResult{
		AccessToken: accessToken,
		AccessExp:   accessExp,
		User:        user,
	}, nil
}
