package litetable

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	litetableDir = ".litetable"

	// HomeEnv overrides the directory holding litetable-mrunit.conf and recorded runs.
	HomeEnv = "LITETABLE_HOME"
)

// Dir returns $LITETABLE_HOME when it is set, otherwise ~/.litetable. The directory is not
// created.
func Dir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return filepath.Clean(dir), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, litetableDir), nil
}
