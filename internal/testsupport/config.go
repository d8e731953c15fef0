package testsupport

import (
	"path/filepath"
	"testing"

	"chksum/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CacheDir = filepath.Join(base, "cache")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Cache.Path = filepath.Join(base, "cache", "sums.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithCacheDisabled turns off the digest cache on the test config.
func WithCacheDisabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Cache.Enabled = false
	}
}

// WithOutputFormat sets the default output format on the test config.
func WithOutputFormat(format string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Output.Format = format
	}
}
