package config

import (
	"os"
	"path/filepath"
)

var (
	homeDir string
)

func init() {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		homeDir = "~"
	}
}

// Dir returns the spin-hub config directory path
// ~/.config/spin-hub/
func Dir() string {
	return filepath.Join(homeDir, ".config", "spin-hub")
}

// ConfigPath returns the config.yaml file path
// ~/.config/spin-hub/config.yaml
func ConfigPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// LogPath returns the debug log file path
// ~/.config/spin-hub/debug.log
func LogPath() string {
	return filepath.Join(Dir(), "debug.log")
}

// CachePath returns the persisted hub index cache path
// ~/.config/spin-hub/hub-cache.json
func CachePath() string {
	return filepath.Join(Dir(), "hub-cache.json")
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
