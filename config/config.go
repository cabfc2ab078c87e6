// Package config loads client settings from defaults, an optional YAML file
// and BRASILAPI_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/bodrovis/brasilapi/client"
	"github.com/bodrovis/brasilapi/internal/logging"
	"github.com/bodrovis/brasilapi/utils"
)

// EnvPrefix marks the environment variables Load reads.
const EnvPrefix = "BRASILAPI_"

// DefaultTimeout bounds a whole request, body included.
const DefaultTimeout = 30 * time.Second

// Config is the root configuration structure.
type Config struct {
	BaseURL   string        `koanf:"base_url"   validate:"required,http_url"`
	UserAgent string        `koanf:"user_agent" validate:"required"`
	Timeout   time.Duration `koanf:"timeout"    validate:"min=0"`
	Tracing   bool          `koanf:"tracing"`
	Log       LogConfig     `koanf:"log"        validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `koanf:"level"  validate:"required,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"required,oneof=json text pretty"`
}

func defaults() map[string]any {
	return map[string]any{
		"base_url":   client.DefaultBaseURL,
		"user_agent": client.DefaultUserAgent,
		"timeout":    DefaultTimeout.String(),
		"tracing":    false,
		"log.level":  "info",
		"log.format": "json",
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (BRASILAPI_ prefix), including a .env file
//  2. The YAML file at path, when path is not empty
//  3. Default values
//
// The result is validated before it is returned.
func Load(path string) (*Config, error) {
	if err := utils.LoadDotEnv(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %q: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps BRASILAPI_LOG_LEVEL to log.level and BRASILAPI_BASE_URL to
// base_url. Only the log section is nested.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + rest
	}
	return key
}

// Logger builds the slog logger described by c.Log.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return logging.New(logging.Config{Level: c.Log.Level, Format: c.Log.Format}, w)
}

// NewClient builds a client from c, logging to stderr. opts are applied
// after the configured ones and win on conflict.
func (c *Config) NewClient(opts ...client.Option) (*client.Client, error) {
	base := []client.Option{client.WithLogger(c.Logger(os.Stderr))}
	if c.Tracing {
		base = append(base, client.WithTracing())
	}

	return client.NewClient(client.Config{
		BaseURL:   c.BaseURL,
		UserAgent: c.UserAgent,
		Timeout:   c.Timeout,
	}, append(base, opts...)...)
}
