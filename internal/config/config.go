// Package config resolves runtime settings from an optional .env file and the
// environment. Command-line flags override what Load returns.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/roach88/smartstock/internal/store"
)

// Environment variable names.
const (
	EnvDB        = "SMARTSTOCK_DB"
	EnvBackend   = "SMARTSTOCK_BACKEND"
	EnvTZ        = "SMARTSTOCK_TZ"
	EnvLogFile   = "SMARTSTOCK_LOG_FILE"
	EnvLogFormat = "SMARTSTOCK_LOG_FORMAT"
)

// Defaults applied when a variable is unset or empty.
const (
	DefaultDB        = "smartstock.db"
	DefaultTZ        = "Local"
	DefaultLogFormat = LogFormatText
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all settings for the application.
type Config struct {
	DB        string // database file path
	Backend   string // store.BackendSQLite | store.BackendBolt
	TZ        string // IANA zone name used for calendar totals
	LogFile   string // empty logs to stderr
	LogFormat string // "text" | "json"
}

// Load reads the given .env files (".env" when none are named), then the
// environment. Missing .env files are not an error; variables already set in
// the environment win over the file. Callers apply their overrides and then
// call Validate.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{
		DB:        getEnv(EnvDB, DefaultDB),
		Backend:   getEnv(EnvBackend, store.BackendSQLite),
		TZ:        getEnv(EnvTZ, DefaultTZ),
		LogFile:   getEnv(EnvLogFile, ""),
		LogFormat: strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
	}
	return cfg, nil
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	if c.DB == "" {
		return errors.New("database path must not be empty")
	}
	if !slices.Contains(store.ValidBackends, c.Backend) {
		return fmt.Errorf("invalid backend %q: must be one of %v", c.Backend, store.ValidBackends)
	}
	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("invalid log format %q: must be text or json", c.LogFormat)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves TZ.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TZ)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", c.TZ, err)
	}
	return loc, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
