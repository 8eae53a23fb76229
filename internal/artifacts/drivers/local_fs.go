package drivers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalFSDriver implements artifact storage on a local persistent disk.
type LocalFSDriver struct {
	BaseDir string
}

// NewLocalFSDriver creates a LocalFSDriver rooted at baseDir and ensures
// baseDir and the given subdirectories exist. Creation is idempotent.
func NewLocalFSDriver(baseDir string, subdirs ...string) (*LocalFSDriver, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	for _, sub := range subdirs {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s directory: %w", sub, err)
		}
	}
	return &LocalFSDriver{BaseDir: baseDir}, nil
}

func (d *LocalFSDriver) Save(ctx context.Context, key string, body io.Reader) error {
	fullPath := d.Location(key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", key, err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(file, body); err != nil {
		file.Close()
		os.Remove(fullPath)
		return fmt.Errorf("failed to write file content: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(fullPath)
		return fmt.Errorf("failed to flush file: %w", err)
	}
	return nil
}

// Open returns the file's contents. A missing key surfaces as an
// *os.PathError wrapping fs.ErrNotExist.
func (d *LocalFSDriver) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return os.Open(d.Location(key))
}

func (d *LocalFSDriver) Location(key string) string {
	return filepath.Join(d.BaseDir, filepath.FromSlash(key))
}
