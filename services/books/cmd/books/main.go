package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Skotchmaster/todo_books/pkg/logging"
	loggingmw "github.com/Skotchmaster/todo_books/pkg/middleware/logging"
	"github.com/Skotchmaster/todo_books/pkg/validate"

	bookscfg "github.com/Skotchmaster/todo_books/services/books/internal/config"
	"github.com/Skotchmaster/todo_books/services/books/internal/httpserver"
	"github.com/Skotchmaster/todo_books/services/books/internal/repo"
	"github.com/Skotchmaster/todo_books/services/books/internal/service"
)

func main() {
	cfg, err := bookscfg.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger := logging.New(cfg.LogLevel).With().Str("service", cfg.ServiceName).Logger()
	logging.SetDefault(logger)
	ctx := logging.IntoContext(context.Background(), logger)

	svc := &service.BookService{
		Repo:         repo.NewMemoryStore(),
		DemoUsername: cfg.DemoUsername,
		DemoPassword: cfg.DemoPassword,
	}
	if cfg.Seed {
		if err := svc.Seed(ctx); err != nil {
			logger.Fatal().Err(err).Msg("seed books")
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validate.Validator{}
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		BooksHandler: &httpserver.BooksHTTP{Svc: svc},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("books listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	if err := svc.Clear(ctx); err != nil {
		logger.Error().Err(err).Msg("clear books")
	}

	logger.Info().Msg("books stopped")
}
