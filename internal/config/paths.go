package config

import (
	"os"
	"path/filepath"
)

const appDir = "taskpad"

// Dir is where the config file and custom themes live, honoring
// XDG_CONFIG_HOME and falling back to ~/.config.
func Dir() string {
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		return filepath.Join(x, appDir)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appDir)
}

// ThemesDir is where custom palettes are picked up.
func ThemesDir() string {
	return filepath.Join(Dir(), "themes")
}

// DefaultDataFile is where tasks are saved unless configured otherwise,
// honoring XDG_DATA_HOME and falling back to ~/.local/share.
func DefaultDataFile() string {
	if x := os.Getenv("XDG_DATA_HOME"); x != "" {
		return filepath.Join(x, appDir, "tasks.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", appDir, "tasks.json")
}
