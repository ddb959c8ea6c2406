// Package config provides the global configuration directory for verbs.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the verbs configuration directory.
//
// Resolution:
//   - $VERBS_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/verbs if set (respects XDG on any platform)
//   - %AppData%/verbs on Windows
//   - ~/.config/verbs on macOS and Linux
func Dir() string {
	if dir := os.Getenv("VERBS_CONFIG_HOME"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "verbs")
	}
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "verbs")
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "verbs")
}

// TemplatesDir returns the global template library directory.
func TemplatesDir() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "templates")
}
