package loggingmw

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Skotchmaster/todo_books/pkg/logging"
)

// RequestLogger attaches a request-scoped logger to the request context and
// writes one line per completed request.
func RequestLogger(base zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			lc := base.With().
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("url", c.Request().URL.Path).
				Str("remote_ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent())
			if rid != "" {
				lc = lc.Str("request_id", rid)
				c.Response().Header().Set(echo.HeaderXRequestID, rid)
			}
			l := lc.Logger()

			req := c.Request().WithContext(logging.IntoContext(c.Request().Context(), l))
			c.SetRequest(req)

			start := time.Now()
			err := next(c)
			dur := time.Since(start)

			if err != nil {
				c.Error(err)
			}
			status := c.Response().Status

			switch {
			case status >= 500:
				l.Error().Int("status", status).Int64("duration_ms", dur.Milliseconds()).Err(err).Msg("request completed")
			case status >= 400:
				l.Warn().Int("status", status).Int64("duration_ms", dur.Milliseconds()).Msg("request completed")
			default:
				l.Info().Int("status", status).Int64("duration_ms", dur.Milliseconds()).Int64("bytes", c.Response().Size).Msg("request completed")
			}
			return nil
		}
	}
}
