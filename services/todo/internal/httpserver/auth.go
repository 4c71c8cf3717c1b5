package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/todo_books/pkg/logging"
	"github.com/Skotchmaster/todo_books/pkg/validate"
	"github.com/Skotchmaster/todo_books/services/todo/internal/service"
	"github.com/Skotchmaster/todo_books/services/todo/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "auth.register").Logger()

	var req transport.CreateUser
	if err := c.Bind(&req); err != nil {
		l.Warn().Int("status", 400).Str("reason", "invalid body").Err(err).Msg("register_failed")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn().Int("status", 422).Str("reason", "validation failed").Err(err).Msg("register_failed")
		return validate.HTTPError(err)
	}

	user, err := h.Svc.Register(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			return echo.NewHTTPError(http.StatusConflict, "user already exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot register user")
	}

	return c.JSON(http.StatusCreated, transport.RegisterResponse{Email: user.Email})
}

// Token exchanges form-encoded credentials for a bearer access token.
func (h *AuthHTTP) Token(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "auth.token").Logger()

	var req transport.TokenRequest
	if err := c.Bind(&req); err != nil {
		l.Warn().Int("status", 400).Str("reason", "invalid form").Err(err).Msg("token_failed")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn().Int("status", 422).Str("reason", "validation failed").Err(err).Msg("token_failed")
		return validate.HTTPError(err)
	}

	res, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot issue token")
	}

	l.Info().Uint("user_id", res.User.ID).Msg("token_issued")
	return c.JSON(http.StatusOK, transport.TokenResponse{
		AccessToken: res.AccessToken,
		TokenType:   "bearer",
	})
}
