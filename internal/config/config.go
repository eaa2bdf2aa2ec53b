package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/idilsaglam/shoplist/internal/store/jsonstore"
)

// Environment variables read by FromEnv.
const (
	EnvFile     = "SHOPLIST_FILE"
	EnvLog      = "SHOPLIST_LOG"
	EnvLogLevel = "SHOPLIST_LOG_LEVEL"
	EnvTheme    = "SHOPLIST_THEME"
)

// Config is the resolved runtime configuration. Root flags override it.
type Config struct {
	DataFile string // list file
	LogFile  string // empty disables logging
	LogLevel string
	Theme    string
}

// Load reads an optional .env from the working directory, then the
// environment. A missing .env is not an error; an unreadable one is.
func Load() (Config, error) {
	if err := loadDotenv(".env"); err != nil {
		return Config{}, err
	}
	return FromEnv()
}

func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// FromEnv builds a Config from the process environment and defaults.
func FromEnv() (Config, error) {
	cfg := Config{
		DataFile: strings.TrimSpace(os.Getenv(EnvFile)),
		LogLevel: "info",
		Theme:    "classic",
	}
	if cfg.DataFile == "" {
		p, err := jsonstore.DefaultPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DataFile = p
	}

	if v, ok := os.LookupEnv(EnvLog); ok {
		cfg.LogFile = strings.TrimSpace(v)
	} else {
		cfg.LogFile = defaultLogPath()
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.Theme = strings.ToLower(v)
	}
	return cfg, nil
}

// defaultLogPath is shoplist/shoplist.log under the user config dir, or
// empty when there is no such dir.
func defaultLogPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "shoplist", "shoplist.log")
}
