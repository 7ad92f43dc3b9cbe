// Package config loads server and CLI settings from defaults, an optional YAML
// file, and SOLARWISE_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvListenAddr           = "SOLARWISE_LISTEN_ADDR"
	EnvDatasetPath          = "SOLARWISE_DATASET_PATH"
	EnvLogLevel             = "SOLARWISE_LOG_LEVEL"
	EnvLogFormat            = "SOLARWISE_LOG_FORMAT"
	EnvCORSAllowedOrigins   = "SOLARWISE_CORS_ALLOWED_ORIGINS"
	EnvCORSAllowCredentials = "SOLARWISE_CORS_ALLOW_CREDENTIALS"
	EnvCORSMaxAge           = "SOLARWISE_CORS_MAX_AGE"
)

const (
	defaultListenAddr      = ":8080"
	defaultShutdownTimeout = 10 * time.Second
	defaultCORSMaxAge      = 86400
)

// ErrWildcardWithCredentials rejects a CORS setup that would let any origin
// send credentialed requests.
var ErrWildcardWithCredentials = errors.New("cannot enable credentials with wildcard origin (*)")

// Config holds all runtime settings.
type Config struct {
	// ListenAddr is the HTTP listen address.
	ListenAddr string `yaml:"listen_addr"`

	// DatasetPath overrides the bundled emission factor dataset when set.
	DatasetPath string `yaml:"dataset_path"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	Logging LoggingConfig `yaml:"logging"`
	CORS    CORSConfig    `yaml:"cors"`
}

// LoggingConfig selects the log level and output format ("console" or "json").
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// CORSConfig controls cross-origin access to the API.
type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ListenAddr:      defaultListenAddr,
		ShutdownTimeout: defaultShutdownTimeout,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
			MaxAge:         defaultCORSMaxAge,
		},
	}
}

// Load returns Default overlaid with the YAML file at path.
// An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables found through lookup.
// Invalid numeric or boolean values are logged and ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool), logger zerolog.Logger) {
	if v, ok := lookup(EnvListenAddr); ok && v != "" {
		c.ListenAddr = v
	}
	if v, ok := lookup(EnvDatasetPath); ok && v != "" {
		c.DatasetPath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}

	if v, ok := lookup(EnvCORSAllowedOrigins); ok && v != "" {
		c.CORS.AllowedOrigins = splitOrigins(v)
		if c.CORS.HasWildcardOrigin() {
			logger.Warn().Msg("CORS wildcard origin (*) is insecure; use specific origins in production")
		}
	}

	if v, ok := lookup(EnvCORSAllowCredentials); ok && v != "" {
		allow, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn().Str("value", v).Msgf("invalid %s, ignoring", EnvCORSAllowCredentials)
		} else {
			c.CORS.AllowCredentials = allow
		}
	}

	if v, ok := lookup(EnvCORSMaxAge); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.CORS.MaxAge = parsed
		} else {
			logger.Warn().Str("value", v).Msgf("invalid %s, using default", EnvCORSMaxAge)
		}
	}
}

func splitOrigins(v string) []string {
	var origins []string
	for _, o := range strings.Split(v, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// HasWildcardOrigin reports whether any origin is allowed.
func (c CORSConfig) HasWildcardOrigin() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// Validate checks settings that cannot be fixed by falling back to a default.
func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return errors.New("listen address is required")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	if c.CORS.MaxAge < 0 {
		return fmt.Errorf("cors max age must be >= 0, got %d", c.CORS.MaxAge)
	}
	if c.CORS.HasWildcardOrigin() && c.CORS.AllowCredentials {
		return ErrWildcardWithCredentials
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}
