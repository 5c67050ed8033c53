package config

import (
	"fmt"
	"os"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.DataFile == "" {
		return fmt.Errorf("paths.data_file must be set")
	}
	if info, err := os.Stat(c.Paths.DataFile); err == nil && info.IsDir() {
		return fmt.Errorf("paths.data_file %s is a directory", c.Paths.DataFile)
	}
	if c.Paths.MovesFile != "" {
		if info, err := os.Stat(c.Paths.MovesFile); err == nil && info.IsDir() {
			return fmt.Errorf("paths.moves_file %s is a directory", c.Paths.MovesFile)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}
