package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultFileName is the store used when nothing else is configured,
	// relative to the working directory.
	DefaultFileName = "todo.json"

	// EnvFile overrides every other source for the store location.
	EnvFile = "TODO_FILE"
)

// ResolvePath determines which JSON document backs the list. TODO_FILE wins,
// then the configured path (usually from the config file), then todo.json in
// the working directory.
func ResolvePath(configured string) (string, error) {
	if override, ok := os.LookupEnv(EnvFile); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return NormalizePath(override)
		}
	}

	configured = strings.TrimSpace(configured)
	if configured != "" {
		return NormalizePath(configured)
	}
	return DefaultFileName, nil
}

// NormalizePath expands a leading ~ to the user's home directory.
func NormalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
