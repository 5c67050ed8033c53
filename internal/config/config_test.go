package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/jisub-lee-0906/Auto-Menu-App/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvDataFile, "")
	t.Setenv(config.EnvMovesFile, "")
	work := t.TempDir()
	t.Chdir(work)
	return work
}

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	work := isolate(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if !strings.HasSuffix(resolved, filepath.Join(".config", "menureorg", "config.toml")) {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if !strings.HasSuffix(cfg.Paths.DataFile, filepath.Join(filepath.Base(work), "data", "menu_db.json")) {
		t.Fatalf("expected data file under working directory, got %q", cfg.Paths.DataFile)
	}
	if !filepath.IsAbs(cfg.Paths.DataFile) {
		t.Fatalf("expected absolute default data file, got %q", cfg.Paths.DataFile)
	}
	if cfg.Paths.MovesFile != "" {
		t.Fatalf("expected built-in move table by default, got %q", cfg.Paths.MovesFile)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadProjectFile(t *testing.T) {
	work := isolate(t)

	content := "[paths]\ndata_file = \"menus/db.json\"\n\n[logging]\nformat = \"JSON\"\nlevel = \"Warning\"\n"
	if err := os.WriteFile(filepath.Join(work, "menureorg.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "menureorg.toml" {
		t.Fatalf("expected project config to be used, got %q (exists=%v)", resolved, exists)
	}
	if !strings.HasSuffix(cfg.Paths.DataFile, filepath.Join("menus", "db.json")) {
		t.Fatalf("unexpected data file: %q", cfg.Paths.DataFile)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "warn" {
		t.Fatalf("expected normalized logging values, got %+v", cfg.Logging)
	}
}

func TestLoadExplicitPathExpandsTilde(t *testing.T) {
	isolate(t)
	home := os.Getenv("HOME")

	cfgPath := filepath.Join(t.TempDir(), "custom.toml")
	data, err := toml.Marshal(config.Config{
		Paths:   config.Paths{DataFile: "~/menu.json", MovesFile: "~/moves.toml"},
		Logging: config.Logging{Format: "console", Level: "debug"},
	})
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(cfgPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != cfgPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Paths.DataFile != filepath.Join(home, "menu.json") {
		t.Fatalf("unexpected data file: %q", cfg.Paths.DataFile)
	}
	if cfg.Paths.MovesFile != filepath.Join(home, "moves.toml") {
		t.Fatalf("unexpected moves file: %q", cfg.Paths.MovesFile)
	}
}

func TestLoadExplicitMissingPathFails(t *testing.T) {
	isolate(t)
	if _, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	dataPath := filepath.Join(t.TempDir(), "env_menu.json")
	movesPath := filepath.Join(t.TempDir(), "env_moves.toml")
	t.Setenv(config.EnvDataFile, dataPath)
	t.Setenv(config.EnvMovesFile, movesPath)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.DataFile != dataPath {
		t.Fatalf("expected env data file, got %q", cfg.Paths.DataFile)
	}
	if cfg.Paths.MovesFile != movesPath {
		t.Fatalf("expected env moves file, got %q", cfg.Paths.MovesFile)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown format", content: "[logging]\nformat = \"xml\"\n"},
		{name: "unknown level", content: "[logging]\nlevel = \"loud\"\n"},
		{name: "unknown key", content: "[paths]\ndata = \"x.json\"\n"},
		{name: "malformed", content: "[paths\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected Load to fail")
			}
		})
	}
}

func TestValidateRejectsDirectoryDataFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.DataFile = t.TempDir()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected directory data file to be rejected")
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if filepath.Base(cfg.Paths.DataFile) != "menu_db.json" {
		t.Fatalf("unexpected sample data file: %q", cfg.Paths.DataFile)
	}
}
