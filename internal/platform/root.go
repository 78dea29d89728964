package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// Root indicators.
const (
	SystemDir  = ".jotter"
	ConfigFile = "jotter.yaml"
)

// FindRoot walks upwards from startDir looking for a .jotter directory or a
// jotter.yaml file and returns the absolute path of the first match.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, SystemDir) || hasFile(dir, ConfigFile) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("root not found")
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
