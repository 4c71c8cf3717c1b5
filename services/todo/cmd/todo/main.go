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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	pkgdb "github.com/Skotchmaster/todo_books/pkg/db"
	"github.com/Skotchmaster/todo_books/pkg/events"
	"github.com/Skotchmaster/todo_books/pkg/logging"
	loggingmw "github.com/Skotchmaster/todo_books/pkg/middleware/logging"
	"github.com/Skotchmaster/todo_books/pkg/tokens"
	"github.com/Skotchmaster/todo_books/pkg/validate"

	todocfg "github.com/Skotchmaster/todo_books/services/todo/internal/config"
	"github.com/Skotchmaster/todo_books/services/todo/internal/httpserver"
	"github.com/Skotchmaster/todo_books/services/todo/internal/repo"
	"github.com/Skotchmaster/todo_books/services/todo/internal/service"
)

func newPublisher(brokers []string, logger zerolog.Logger) (events.Publisher, error) {
	if len(brokers) == 0 {
		return events.Nop{}, nil
	}
	return events.NewProducer(brokers, logger.With().Str("component", "kafka").Logger())
}

func main() {
	cfg, err := todocfg.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger := logging.New(cfg.LogLevel).With().Str("service", cfg.ServiceName).Logger()
	logging.SetDefault(logger)
	ctx := logging.IntoContext(context.Background(), logger)

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	db, err := pkgdb.Open(initCtx, cfg.DBDriver, cfg.DatabaseURL)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("db open")
	}

	gormRepo := &repo.GormRepo{DB: db}
	if err := gormRepo.Migrate(ctx); err != nil {
		logger.Fatal().Err(err).Msg("db migrate")
	}

	publisher, err := newPublisher(cfg.KafkaBrokers, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("kafka producer")
	}

	tokenManager := tokens.NewManager([]byte(cfg.JWTSecret), cfg.AccessTokenTTL)

	todoSvc := &service.TodoService{Repo: gormRepo, Events: publisher}
	authSvc := &service.AuthService{Repo: gormRepo, Tokens: tokenManager, Events: publisher}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validate.Validator{}
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		TodoHandler: &httpserver.TodoHTTP{Svc: todoSvc},
		AuthHandler: &httpserver.AuthHTTP{Svc: authSvc},
		Tokens:      tokenManager,
		RequireAuth: cfg.RequireAuth,
		Ready: func(ctx context.Context) error {
			return pkgdb.Ping(ctx, db)
		},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Bool("require_auth", cfg.RequireAuth).Msg("todo listening")
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
	if err := publisher.Close(); err != nil {
		logger.Error().Err(err).Msg("close kafka producer")
	}
	if err := pkgdb.Close(db); err != nil {
		logger.Error().Err(err).Msg("close db")
	}

	logger.Info().Msg("todo stopped")
}
