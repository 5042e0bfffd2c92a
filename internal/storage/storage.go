package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"regexp"
	"time"
)

// Storage persists uploaded file blobs. Save returns the key under which the
// blob was stored; URL maps a key to the location clients download it from.
type Storage interface {
	Save(ctx context.Context, key, contentType string, r io.Reader, size int64) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	URL(key string) string
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// NewKey builds a collision-resistant storage key:
// <dir>/<epoch ms>-<random>-<sanitized original name>.
func NewKey(dir, filename string) string {
	name := unsafeChars.ReplaceAllString(filepath.Base(filename), "_")
	return fmt.Sprintf("%s/%d-%x-%s", dir, time.Now().UnixMilli(), rand.Int63(), name) //nolint:gosec // name uniqueness, not secrecy
}
