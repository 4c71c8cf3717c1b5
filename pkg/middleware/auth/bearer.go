package authmw

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/todo_books/pkg/logging"
	"github.com/Skotchmaster/todo_books/pkg/tokens"
)

const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	ctxClaims   = "access_claims"
)

const unauthorizedMessage = "could not validate credentials"

type TokenParser interface {
	Parse(token string) (*tokens.AccessClaims, error)
}

// Identity is the caller resolved from a verified access token.
type Identity struct {
	ID       uint
	Username string
}

// RequireAuth validates the "Authorization: Bearer <token>" header on every request
// and rejects the request with 401 when the token is missing, invalid or expired.
func RequireAuth(parser TokenParser) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: ctxClaims,
		ParseTokenFunc: func(c echo.Context, auth string) (any, error) {
			return parser.Parse(auth)
		},
		SuccessHandler: func(c echo.Context) {
			claims, ok := c.Get(ctxClaims).(*tokens.AccessClaims)
			if !ok {
				return
			}
			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxUsername, claims.Subject)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logging.FromContext(c.Request().Context()).Warn().
				Int("status", http.StatusUnauthorized).
				Str("reason", "invalid or missing access token").
				Err(err).
				Msg("auth_failed")
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
		},
	})
}

func CurrentUser(c echo.Context) (Identity, bool) {
	id, ok := c.Get(CtxUserID).(uint)
	if !ok || id == 0 {
		return Identity{}, false
	}
	username, _ := c.Get(CtxUsername).(string)
	return Identity{ID: id, Username: username}, true
}
