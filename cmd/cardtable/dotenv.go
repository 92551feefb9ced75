// ABOUTME: Minimal .env file loader that reads KEY=VALUE pairs into the process environment.
// ABOUTME: Existing environment variables are never overwritten (no-clobber semantics).
package main

import (
	"os"
	"path/filepath"
	"strings"
)

// loadDotEnv reads a .env file and sets any variables that aren't already in
// the environment. Missing files are silently ignored. Lines starting with #
// and blank lines are skipped. Values may be wrapped in single or double
// quotes, which are stripped.
func loadDotEnv(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if len(value) >= 2 {
			first, last := value[0], value[len(value)-1]
			if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
				value = value[1 : len(value)-1]
			}
		}
		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			os.Setenv(key, value)
		}
	}
}

// loadDotEnvAuto loads configuration from the standard locations: the user
// config file first, then .env in the working directory. The no-clobber rule
// means earlier files and the live environment always win.
func loadDotEnvAuto() {
	if dir := userConfigDir(); dir != "" {
		loadDotEnv(filepath.Join(dir, "cardtable", "config.env"))
	}
	loadDotEnv(".env")
}

// userConfigDir resolves $XDG_CONFIG_HOME with the ~/.config fallback.
func userConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}
