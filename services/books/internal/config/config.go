package config

import (
	"github.com/Skotchmaster/todo_books/pkg/config"
)

type Config struct {
	config.Base
	Seed         bool   `env:"BOOKS_SEED" envDefault:"true"`
	DemoUsername string `env:"BOOKS_DEMO_USERNAME" envDefault:"FastAPIUser"`
	DemoPassword string `env:"BOOKS_DEMO_PASSWORD" envDefault:"test1234"`
}

func Load() (Config, error) {
	config.LoadDotEnv("services/books/.env")
	return Parse(nil)
}

func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := config.Parse(&cfg, environ); err != nil {
		return Config{}, err
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "books"
	}
	return cfg, nil
}
