package config

import (
	"fmt"
	"os"
)

func MustNonEmpty(value, envName string) error {
	if value == "" {
		return fmt.Errorf("missing required env %s", envName)
	}
	return nil
}

// Lookup reads key from environ, or from the process environment when environ is nil.
func Lookup(environ map[string]string, key string) (string, bool) {
	if environ == nil {
		return os.LookupEnv(key)
	}
	v, ok := environ[key]
	return v, ok
}
