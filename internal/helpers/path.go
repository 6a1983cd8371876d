package helpers

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the parent directories of the given file path if
// they do not exist yet.
//
// Parameters:
//   - path: the path to the database file
//
// Returns:
//   - error: an error if the operation failed
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	return nil
}
