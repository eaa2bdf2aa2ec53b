package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvFile, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvTheme, "")
	t.Setenv(EnvLog, "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	wd, _ := os.Getwd()
	if cfg.DataFile != filepath.Join(wd, "shoplist.json") {
		t.Fatalf("unexpected default data file %q", cfg.DataFile)
	}
	if cfg.LogLevel != "info" || cfg.Theme != "classic" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.LogFile != "" {
		t.Fatalf("empty %s should disable logging, got %q", EnvLog, cfg.LogFile)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvFile, filepath.Join(dir, "list.json"))
	t.Setenv(EnvLog, filepath.Join(dir, "x.log"))
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvTheme, "Mono")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.DataFile != filepath.Join(dir, "list.json") || cfg.LogFile != filepath.Join(dir, "x.log") {
		t.Fatalf("paths not taken from env: %+v", cfg)
	}
	if cfg.LogLevel != "debug" || cfg.Theme != "mono" {
		t.Fatalf("expected lowercased level/theme, got %+v", cfg)
	}
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	if err := loadDotenv(filepath.Join(dir, ".env")); err != nil {
		t.Fatalf("missing .env should be ignored, got %v", err)
	}

	good := filepath.Join(dir, "good.env")
	if err := os.WriteFile(good, []byte("SHOPLIST_DOTENV_VALUE=from-file\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("SHOPLIST_DOTENV_VALUE", "")
	os.Unsetenv("SHOPLIST_DOTENV_VALUE")
	if err := loadDotenv(good); err != nil {
		t.Fatalf("loadDotenv: %v", err)
	}
	if got := os.Getenv("SHOPLIST_DOTENV_VALUE"); got != "from-file" {
		t.Fatalf("expected value from .env, got %q", got)
	}

	// A directory in place of the file opens but cannot be read.
	unreadable := filepath.Join(dir, "dir.env")
	if err := os.Mkdir(unreadable, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	if err := loadDotenv(unreadable); err == nil {
		t.Fatalf("expected error for unreadable .env")
	}
}
