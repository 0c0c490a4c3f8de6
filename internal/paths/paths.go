// Package paths resolves the well-known file locations used by retro.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// GlobalConfigFile returns the path of the user-wide config file.
func GlobalConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "retrotodo", "config.toml"), nil
}

// ProjectConfigFile returns the path of the per-directory config file.
func ProjectConfigFile(dir string) string {
	return filepath.Join(dir, "retrotodo.toml")
}
