package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultLogDir       = "~/.local/share/chksum/logs"
	defaultCacheFile    = "sums.db"
	defaultOutputFormat = "plain"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CacheDir: defaultCacheDir(),
			LogDir:   defaultLogDir,
		},
		Cache: Cache{
			Enabled: true,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultCacheDir() string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "chksum")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.cache/chksum"
	}
	return filepath.Join(home, ".cache", "chksum")
}
