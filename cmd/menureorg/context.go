package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/jisub-lee-0906/Auto-Menu-App/internal/config"
	"github.com/jisub-lee-0906/Auto-Menu-App/internal/logging"
)

type commandContext struct {
	configFlag *string
	dataFlag   *string
	movesFlag  *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag, dataFlag, movesFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		dataFlag:   dataFlag,
		movesFlag:  movesFlag,
	}
}

// ensureConfig loads the config once and applies --data and --moves on top.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, resolved, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if exists {
			c.configPath = resolved
		}
		if data := flagValue(c.dataFlag); data != "" {
			if cfg.Paths.DataFile, err = config.ExpandPath(data); err != nil {
				c.configErr = fmt.Errorf("resolve --data: %w", err)
				return
			}
		}
		if movesPath := flagValue(c.movesFlag); movesPath != "" {
			if cfg.Paths.MovesFile, err = config.ExpandPath(movesPath); err != nil {
				c.configErr = fmt.Errorf("resolve --moves: %w", err)
				return
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger builds a logger writing to w. When the config cannot be loaded a
// default console logger is returned so failures can still be reported.
func (c *commandContext) logger(w io.Writer) *slog.Logger {
	cfg, _ := c.ensureConfig()
	logger, err := logging.NewFromConfig(cfg, w)
	if err != nil {
		logger, _ = logging.NewFromConfig(nil, w)
	}
	return logger
}

func flagValue(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
