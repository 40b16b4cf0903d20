// Package config provides the global configuration directory and env file loading for ballast.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the ballast configuration directory. Two environment
// overrides are honored before falling back to the platform default:
// BALLAST_CONFIG_HOME is used verbatim, and XDG_CONFIG_HOME gets a
// "ballast" subdirectory appended.
func Dir() string {
	if dir := os.Getenv("BALLAST_CONFIG_HOME"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ballast")
	}
	return platformDir()
}

// platformDir picks the conventional per-OS location: %AppData%\ballast
// on Windows, ~/.config/ballast everywhere else. Returns "" when the
// home directory cannot be determined.
func platformDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "ballast")
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ballast")
}
