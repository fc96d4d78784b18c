// Package config resolves user settings from defaults, an optional TOML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/faizmokh/todo/internal/files"
)

const (
	// EnvConfig points at an explicit config file.
	EnvConfig = "TODO_CONFIG"
	// EnvLogLevel overrides log_level.
	EnvLogLevel = "TODO_LOG_LEVEL"

	configDirName  = "todo"
	configFileName = "config.toml"
)

// Config holds the settings the CLI honours.
type Config struct {
	// File is the todo document. TODO_FILE still wins over it; see files.ResolvePath.
	File string `toml:"file"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		File:     files.DefaultFileName,
		LogLevel: "warn",
	}
}

// Load applies, in order: defaults, the config file (when present), then the
// environment.
func Load() (Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		if err := LoadFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	if level, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(level) != "" {
		cfg.LogLevel = strings.TrimSpace(level)
	}

	return cfg, nil
}

// Path returns the config file location: TODO_CONFIG when set, otherwise
// <user config dir>/todo/config.toml. An empty result means there is no usable
// location, which is not an error.
func Path() (string, error) {
	if override := strings.TrimSpace(os.Getenv(EnvConfig)); override != "" {
		return files.NormalizePath(override)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", nil
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

// LoadFile decodes path over cfg. A missing file leaves cfg unchanged; unknown
// keys are rejected so typos do not go unnoticed.
func LoadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}
