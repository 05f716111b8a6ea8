// Package filex holds small filesystem helpers shared by the CLI.
package filex

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// EnsureDir creates dir on fs if needed and returns its absolute form.
// Relative paths are resolved against the working directory.
func EnsureDir(fs afero.Fs, dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := fs.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// WriteFile stores data as dir/name, creating dir first, and returns the
// path written.
func WriteFile(fs afero.Fs, dir, name string, data []byte) (string, error) {
	dir, err := EnsureDir(fs, dir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
