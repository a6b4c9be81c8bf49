package main

import (
	"log/slog"
	"strings"
	"sync"

	"soundhaus/internal/config"
	"soundhaus/internal/diffengine"
	"soundhaus/internal/logging"
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

func (c *commandContext) loggerValue() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// engineOptions maps the loaded configuration onto engine options.
func (c *commandContext) engineOptions(allowNameFallback bool) diffengine.Options {
	opts := diffengine.Options{
		AllowTrackNameFallback: allowNameFallback,
		Logger:                 c.loggerValue(),
	}
	if cfg, err := c.ensureConfig(); err == nil {
		opts.MaxDecompressedBytes = cfg.MaxDecompressedBytes()
		opts.MaxTreeDepth = cfg.Limits.MaxTreeDepth
	}
	return opts
}
