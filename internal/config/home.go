package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeDirName is the per-curriculum state directory holding config, logs and locks
const HomeDirName = ".algo"

// GetAlgoHome returns the algo home directory
// Priority order:
//  1. ALGO_HOME environment variable (if set)
//  2. .algo under the given curriculum directory
//
// The directory is created if it doesn't exist
func GetAlgoHome(dir string) (string, error) {
	if home := os.Getenv("ALGO_HOME"); home != "" {
		if err := os.MkdirAll(home, 0755); err != nil {
			return "", fmt.Errorf("create algo home directory: %w", err)
		}
		return home, nil
	}

	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = cwd
	}

	home := filepath.Join(dir, HomeDirName)
	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("create algo home directory: %w", err)
	}

	return home, nil
}

// GetWatchLockPath returns the lock file guarding a single watch session
func GetWatchLockPath(dir string) (string, error) {
	home, err := GetAlgoHome(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "watch.lock"), nil
}

// ResolveLogDir returns an absolute log directory.
// Relative log dirs are resolved against the curriculum directory,
// the default .algo/logs is placed under ALGO_HOME when that is set.
func (c *Config) ResolveLogDir(dir string) (string, error) {
	if filepath.IsAbs(c.LogDir) {
		return c.LogDir, nil
	}
	if c.LogDir == filepath.Join(HomeDirName, "logs") {
		home, err := GetAlgoHome(dir)
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "logs"), nil
	}
	return filepath.Join(dir, c.LogDir), nil
}
