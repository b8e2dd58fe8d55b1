package config

import (
	"os"
	"path/filepath"
	"strings"

	"tilemux/internal/logger"
)

// fileReadable reports whether path exists and can be opened for reading.
func fileReadable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// FindConfigPath returns the first existing, readable config file from the
// fixed search list. $CONFIG_HOME is $XDG_CONFIG_HOME when set — a set but
// empty value keeps the empty prefix — otherwise $HOME/.config; missing
// environment variables are treated as empty strings. When no listed
// candidate matches, each colon-separated entry of $XDG_CONFIG_DIRS is tried
// with /sway/config appended, in listed order.
func FindConfigPath() (string, error) {
	home := os.Getenv("HOME")
	confHome, confSet := os.LookupEnv("XDG_CONFIG_HOME")
	if !confSet && home != "" {
		confHome = home + "/.config"
	}

	candidates := []string{
		home + "/.sway/config",
		confHome + "/sway/config",
		"/etc/sway/config",
		home + "/.i3/config",
		confHome + "/.i3/config",
		"/etc/i3/config",
	}
	for _, path := range candidates {
		logger.Debug("Checking for config", "path", path)
		if fileReadable(path) {
			return path, nil
		}
	}

	logger.Debug("Trying to find config in XDG_CONFIG_DIRS")
	if dirs := os.Getenv("XDG_CONFIG_DIRS"); dirs != "" {
		for _, dir := range strings.Split(dirs, ":") {
			path := dir + "/sway/config"
			if fileReadable(path) {
				return path, nil
			}
		}
	}

	return "", ErrNoConfigFile
}

// envFilePath returns the path of the optional dotenv-style environment file
// that may sit beside a config file.
func envFilePath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), "env")
}
