package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"chksum/internal/config"
	"chksum/internal/logging"
	"chksum/internal/sumdb"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// loggerValue returns the invocation logger, tagged with a run ID so one
// CLI run's lines can be grepped out of a shared log file. Logging is a
// best-effort concern; failures degrade to a no-op logger.
func (c *commandContext) loggerValue() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))
	})
	return c.logger
}

// openStore opens the digest cache when configuration allows it. A nil
// store (with nil error) means caching is off.
func (c *commandContext) openStore(noCache bool) (*sumdb.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if noCache || !cfg.Cache.Enabled {
		return nil, nil
	}
	return sumdb.Open(cfg)
}
