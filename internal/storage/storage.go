// Package storage provides atomic file writes for files under
// ~/.config/onboard/.
package storage

import (
	"os"
	"path/filepath"
)

// WriteFile atomically writes data to path with the given permissions.
// It ensures the parent directory exists, writes to a temp file,
// then renames to the final path so readers never see a partial file.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, data, perm); err != nil {
		return err
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return err
	}
	return nil
}
