package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeCache(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeLimits()
	return nil
}

func (c *Config) normalizeCache() error {
	if strings.TrimSpace(c.Cache.Path) == "" {
		c.Cache.Path = defaultCachePath
	}
	expanded, err := expandPath(c.Cache.Path)
	if err != nil {
		return fmt.Errorf("cache.path: %w", err)
	}
	c.Cache.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeLimits() {
	if c.Limits.MaxDecompressedMiB <= 0 {
		c.Limits.MaxDecompressedMiB = defaultMaxDecompressedMiB
	}
	if c.Limits.MaxTreeDepth <= 0 {
		c.Limits.MaxTreeDepth = defaultMaxTreeDepth
	}
}
