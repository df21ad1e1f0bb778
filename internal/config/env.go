package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName is the folder under the user's config directory.
	DefaultDirName = "hari"
)

// ResolveDir determines where hari reads config.yaml from. HARI_HOME wins,
// then $XDG_CONFIG_HOME/hari, then ~/.config/hari.
func ResolveDir() (string, error) {
	if override, ok := os.LookupEnv("HARI_HOME"); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return normalizePath(override)
		}
	}

	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, DefaultDirName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", DefaultDirName), nil
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
