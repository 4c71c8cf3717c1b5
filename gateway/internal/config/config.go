package config

import (
	"github.com/Skotchmaster/todo_books/pkg/config"
)

type Config struct {
	config.Base
	BooksURL string `env:"BOOKS_URL"`
	TodoURL  string `env:"TODO_URL"`
}

func Load() (Config, error) {
	config.LoadDotEnv("gateway/.env")
	return Parse(nil)
}

// Parse reads the config from environ, or from the process environment when environ is nil.
// Both upstream URLs are required.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := config.Parse(&cfg, environ); err != nil {
		return Config{}, err
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "gateway"
	}
	if err := config.MustNonEmpty(cfg.BooksURL, "BOOKS_URL"); err != nil {
		return Config{}, err
	}
	if err := config.MustNonEmpty(cfg.TodoURL, "TODO_URL"); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
