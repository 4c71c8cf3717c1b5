package httpserver

import (
	"fmt"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	echo "github.com/labstack/echo/v4"

	"github.com/Skotchmaster/todo_books/pkg/logging"
)

// trimPrefix removes stripPrefix from a path the director already joined with the upstream base path.
func trimPrefix(path, base, stripPrefix string) string {
	if stripPrefix == "" {
		return path
	}
	rest := strings.TrimPrefix(path, strings.TrimSuffix(base, "/"))
	if !strings.HasPrefix(rest, stripPrefix) {
		return path
	}
	rest = strings.TrimPrefix(rest, stripPrefix)
	if !strings.HasPrefix(rest, "/") {
		rest = "/" + rest
	}
	return strings.TrimSuffix(base, "/") + rest
}

// newProxy forwards requests to target, dropping stripPrefix from the path and
// recording the original host and scheme in X-Forwarded-* headers.
func newProxy(target, stripPrefix string) (echo.HandlerFunc, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("parse upstream %q: %w", target, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("upstream %q must be an absolute URL", target)
	}

	baseTransport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 60 * time.Second,
		}).DialContext,
		MaxIdleConns:          200,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	p := httputil.NewSingleHostReverseProxy(u)
	p.Transport = baseTransport

	origDirector := p.Director
	p.Director = func(req *http.Request) {
		originalHost := req.Host
		originalProto := "http"
		if req.TLS != nil {
			originalProto = "https"
		} else if xf := req.Header.Get("X-Forwarded-Proto"); xf != "" {
			originalProto = xf
		}

		origDirector(req)

		req.URL.Path = trimPrefix(req.URL.Path, u.Path, stripPrefix)
		if req.URL.RawPath != "" {
			req.URL.RawPath = trimPrefix(req.URL.RawPath, u.Path, stripPrefix)
		}

		if req.Header.Get("X-Forwarded-Proto") == "" {
			req.Header.Set("X-Forwarded-Proto", originalProto)
		}
		if req.Header.Get("X-Forwarded-Host") == "" && originalHost != "" {
			req.Header.Set("X-Forwarded-Host", originalHost)
		}
	}

	p.FlushInterval = 100 * time.Millisecond
	p.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logging.FromContext(r.Context()).Error().
			Int("status", http.StatusBadGateway).
			Str("upstream", u.Host).
			Err(err).
			Msg("proxy_failed")
		w.WriteHeader(http.StatusBadGateway)
	}

	return func(c echo.Context) error {
		p.ServeHTTP(c.Response(), c.Request())
		return nil
	}, nil
}
