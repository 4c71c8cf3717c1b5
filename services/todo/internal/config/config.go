package config

import (
	"time"

	"github.com/Skotchmaster/todo_books/pkg/config"
)

const defaultPort = 8081

type Config struct {
	config.Base
	DBDriver       string        `env:"DB_DRIVER" envDefault:"postgres"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	JWTSecret      string        `env:"JWT_SECRET"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
	RequireAuth    bool          `env:"TODO_REQUIRE_AUTH" envDefault:"true"`
	KafkaBrokers   []string      `env:"KAFKA_BROKERS" envSeparator:","`
}

func Load() (Config, error) {
	config.LoadDotEnv("services/todo/.env")
	return Parse(nil)
}

// Parse reads the config from environ, or from the process environment when environ is nil.
// DATABASE_URL and JWT_SECRET are required.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := config.Parse(&cfg, environ); err != nil {
		return Config{}, err
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "todo"
	}
	if _, ok := config.Lookup(environ, "SERVER_PORT"); !ok {
		cfg.ServerPort = defaultPort
	}

	if err := config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL"); err != nil {
		return Config{}, err
	}
	if err := config.MustNonEmpty(cfg.JWTSecret, "JWT_SECRET"); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
