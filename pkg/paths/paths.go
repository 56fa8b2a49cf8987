package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dokv/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for dokv
	EnvConfigDir = "DOKV_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for dokv
	EnvStateDir = "DOKV_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under each XDG base
	AppDirName = "dokv"

	// ConfigFileName is the user config file inside ConfigDir
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file inside StateDir
	LogFileName = "dokv.log"
)

// ConfigDir returns the directory holding the user config file.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the path of the user config file. It may not exist.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the directory for logs and other runtime state.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFile returns the path of the log file.
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ResolveStorePath expands a leading ~ and returns an absolute, cleaned path.
func ResolveStorePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "store path is empty")
	}
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve store path %s", path).
			WithDetail("path", path)
	}
	return abs, nil
}

// ExpandHome replaces a leading ~ or ~/ with the user's home directory.
// Other ~user forms are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
