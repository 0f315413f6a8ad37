// Package config provides settings for the pwademo router and CLI.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the pwademo configuration directory.
//
// Resolution:
//   - $PWADEMO_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/pwademo if set (respects XDG on any platform)
//   - %AppData%/pwademo on Windows
//   - ~/.config/pwademo on macOS and Linux
func Dir() string {
	if dir := os.Getenv("PWADEMO_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pwademo")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "pwademo")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pwademo")
}
