// Package config provides configuration path utilities.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// Dir returns the lanewatch configuration directory.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lanewatch"
	}
	return filepath.Join(home, ".config", "lanewatch")
}

// DefaultDatabasePath returns the default snapshot database location.
func DefaultDatabasePath() string {
	return filepath.Join(Dir(), "lanewatch.db")
}
