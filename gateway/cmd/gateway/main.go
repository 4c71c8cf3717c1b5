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
	"github.com/rs/zerolog/log"

	"github.com/Skotchmaster/todo_books/gateway/internal/config"
	"github.com/Skotchmaster/todo_books/gateway/internal/httpserver"
	"github.com/Skotchmaster/todo_books/gateway/internal/middleware"
	"github.com/Skotchmaster/todo_books/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger := logging.New(cfg.LogLevel).With().Str("service", cfg.ServiceName).Logger()
	logging.SetDefault(logger)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second
	e.Use(middleware.Common(logger)...)

	if err := httpserver.Register(e, &httpserver.Deps{
		BooksURL: cfg.BooksURL,
		TodoURL:  cfg.TodoURL,
	}); err != nil {
		logger.Fatal().Err(err).Msg("register routes")
	}

	go func() {
		logger.Info().Str("addr", cfg.Addr()).Msg("gateway listening")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}
