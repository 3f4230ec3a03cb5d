// Package paths resolves configuration and data directory locations.
//
// Defaults are CWD-relative so a plan database lives next to the project
// that owns it, the same way a .git directory does. Flags and environment
// variables override per the precedence documented on each resolver.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative directory names.
const (
	DefaultConfigDirName = ".dripstand"
	DefaultDataDirName   = ".dripstand-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "DRIPSTAND_CONFIG_DIR"
	EnvDataDir   = "DRIPSTAND_DATA_DIR"
)

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > DRIPSTAND_CONFIG_DIR env > $(CWD)/.dripstand.
// Relative overrides are made absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return cwdJoin(DefaultConfigDirName)
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configYAMLValue > DRIPSTAND_DATA_DIR env > $(CWD)/.dripstand-db.
// Relative overrides are made absolute.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return cwdJoin(DefaultDataDirName)
}

func cwdJoin(name string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, name), nil
}
