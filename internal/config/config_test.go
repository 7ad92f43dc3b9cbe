package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Empty(t, cfg.DatasetPath, "empty path selects the bundled dataset")
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 86400, cfg.CORS.MaxAge)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("yaml overlay", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "solarwise.yaml")
		content := `
listen_addr: "127.0.0.1:9000"
dataset_path: /data/owid.json
shutdown_timeout: 3s
logging:
  level: debug
  format: json
cors:
  allowed_origins: ["https://solarwise.example"]
  allow_credentials: true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
		assert.Equal(t, "/data/owid.json", cfg.DatasetPath)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, LoggingConfig{Level: "debug", Format: "json"}, cfg.Logging)
		assert.Equal(t, []string{"https://solarwise.example"}, cfg.CORS.AllowedOrigins)
		assert.True(t, cfg.CORS.AllowCredentials)
		assert.Equal(t, 86400, cfg.CORS.MaxAge, "unset fields keep defaults")
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("listen_addr: [unterminated"), 0o600))
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestApplyEnv(t *testing.T) {
	logger := zerolog.New(zerolog.NewConsoleWriter())

	tests := []struct {
		name     string
		env      map[string]string
		validate func(t *testing.T, cfg Config)
	}{
		{
			name: "no env keeps defaults",
			env:  nil,
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "scalar overrides",
			env: map[string]string{
				EnvListenAddr:  ":9999",
				EnvDatasetPath: "/tmp/data.json",
				EnvLogLevel:    "warn",
				EnvLogFormat:   "json",
			},
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, ":9999", cfg.ListenAddr)
				assert.Equal(t, "/tmp/data.json", cfg.DatasetPath)
				assert.Equal(t, "warn", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name: "allowed origins are trimmed",
			env: map[string]string{
				EnvCORSAllowedOrigins: "http://localhost:3000, https://app.example.com ,",
			},
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORS.AllowedOrigins)
				assert.False(t, cfg.CORS.HasWildcardOrigin())
			},
		},
		{
			name: "allow credentials",
			env: map[string]string{
				EnvCORSAllowedOrigins:   "https://app.example.com",
				EnvCORSAllowCredentials: "true",
			},
			validate: func(t *testing.T, cfg Config) {
				assert.True(t, cfg.CORS.AllowCredentials)
				assert.NoError(t, cfg.Validate())
			},
		},
		{
			name: "invalid credentials flag ignored",
			env: map[string]string{
				EnvCORSAllowCredentials: "maybe",
			},
			validate: func(t *testing.T, cfg Config) {
				assert.False(t, cfg.CORS.AllowCredentials)
			},
		},
		{
			name: "max age",
			env: map[string]string{
				EnvCORSMaxAge: "600",
			},
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, 600, cfg.CORS.MaxAge)
			},
		},
		{
			name: "invalid max age keeps default",
			env: map[string]string{
				EnvCORSMaxAge: "-5",
			},
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, 86400, cfg.CORS.MaxAge)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.ApplyEnv(envLookup(tt.env), logger)
			tt.validate(t, cfg)
		})
	}
}

func TestApplyEnv_WarnsOnWildcard(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	cfg := Default()
	cfg.ApplyEnv(envLookup(map[string]string{EnvCORSAllowedOrigins: "foo.com, *"}), logger)

	assert.True(t, cfg.CORS.HasWildcardOrigin())
	assert.Contains(t, buf.String(), "wildcard")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name: "wildcard with credentials",
			mutate: func(c *Config) {
				c.CORS.AllowedOrigins = []string{"*"}
				c.CORS.AllowCredentials = true
			},
			wantErr: ErrWildcardWithCredentials,
		},
		{
			name:   "empty listen address",
			mutate: func(c *Config) { c.ListenAddr = "" },
		},
		{
			name:   "zero shutdown timeout",
			mutate: func(c *Config) { c.ShutdownTimeout = 0 },
		},
		{
			name:   "unknown log format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggingConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Str("iso_code", "BRA").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"iso_code":"BRA"`)
	assert.Contains(t, out, `"level":"warn"`)

	buf.Reset()
	fallback := NewLogger(LoggingConfig{Level: "loud"}, &buf)
	assert.Equal(t, zerolog.InfoLevel, fallback.GetLevel())
}
