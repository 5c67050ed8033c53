package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/jisub-lee-0906/Auto-Menu-App/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// WithMovesFile points the config at an external move table.
func WithMovesFile(path string) ConfigOption {
	return func(c *config.Config) {
		c.Paths.MovesFile = path
	}
}

// WithLogFormat overrides the log format.
func WithLogFormat(format string) ConfigOption {
	return func(c *config.Config) {
		c.Logging.Format = format
	}
}

// WriteConfig writes a TOML config whose data_file is dataPath and returns
// the config file path.
func WriteConfig(t testing.TB, dataPath string, opts ...ConfigOption) string {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.DataFile = dataPath
	for _, opt := range opts {
		opt(&cfg)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	return WriteFile(t, filepath.Join(t.TempDir(), "config.toml"), string(data))
}
