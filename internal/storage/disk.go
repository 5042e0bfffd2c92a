package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Disk stores blobs under a local base directory, served back under /uploads.
type Disk struct {
	baseDir string
}

func NewDisk(baseDir string) (*Disk, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Disk{baseDir: baseDir}, nil
}

func (d *Disk) Save(ctx context.Context, key, contentType string, r io.Reader, size int64) error {
	path, err := d.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (d *Disk) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	path, err := d.resolve(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

func (d *Disk) URL(key string) string {
	return "/uploads/" + key
}

// resolve guards against keys escaping the base directory.
func (d *Disk) resolve(key string) (string, error) {
	path := filepath.Join(d.baseDir, filepath.FromSlash(key))
	base, err := filepath.Abs(d.baseDir)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(abs, base+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return path, nil
}
