package repository

import (
	"fmt"
	"os"
)

// CheckDataDir verifies the data directory exists and is a directory.
// Used by the readiness probe.
func CheckDataDir(dataDir string) error {
	info, err := os.Stat(dataDir)
	if err != nil {
		return fmt.Errorf("data directory %q unavailable: %w", dataDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data path %q is not a directory", dataDir)
	}
	return nil
}
