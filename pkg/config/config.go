package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Base holds the settings every service reads.
type Base struct {
	ServiceName string `env:"SERVICE_NAME"`
	ServerPort  int    `env:"SERVER_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

func (b Base) Addr() string {
	return fmt.Sprintf(":%d", b.ServerPort)
}

// LoadDotEnv loads the given .env files into the process environment.
// A missing file is not an error: the system environment is used instead.
func LoadDotEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		log.Printf("notice: .env not loaded: %v, using system environment variables", err)
	}
}

// Parse fills cfg from environ, or from the process environment when environ is nil.
func Parse(cfg any, environ map[string]string) error {
	opts := env.Options{Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env config: %w", err)
	}
	return nil
}
