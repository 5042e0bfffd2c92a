package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
)

// FileStore abstracts the blob backend (local disk or S3).
type FileStore interface {
	Save(ctx context.Context, key, contentType string, r io.Reader, size int64) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	URL(key string) string
}

const maxUploadSize = 20 << 20

var allowedContentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/zip":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/vnd.ms-powerpoint":                                           {},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},
	"text/plain":      {},
	"text/markdown":   {},
	"text/x-python":   {},
	"text/x-go":       {},
	"image/png":       {},
	"image/jpeg":      {},
	"image/gif":       {},
	"video/mp4":       {},
	"application/json": {},
}

var allowedExtensions = map[string]struct{}{
	".pdf": {}, ".zip": {}, ".doc": {}, ".docx": {}, ".ppt": {}, ".pptx": {},
	".txt": {}, ".md": {}, ".py": {}, ".go": {}, ".js": {}, ".ts": {},
	".java": {}, ".c": {}, ".cpp": {}, ".png": {}, ".jpg": {}, ".jpeg": {},
	".gif": {}, ".mp4": {}, ".json": {}, ".csv": {},
}

// validateUpload enforces the upload limits before anything touches storage.
func validateUpload(file *model.FileUpload) error {
	if file == nil || file.Reader == nil || file.Filename == "" {
		return errdefs.ErrValidation
	}
	if file.Size <= 0 || file.Size > maxUploadSize {
		return fmt.Errorf("%w: file exceeds %d bytes", errdefs.ErrValidation, maxUploadSize)
	}
	contentType := file.ContentType
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.TrimSpace(strings.ToLower(contentType))
	if _, ok := allowedContentTypes[contentType]; ok {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedExtensions[ext]; ok {
		return nil
	}
	return fmt.Errorf("%w: unsupported file type %q", errdefs.ErrValidation, file.ContentType)
}

func humanSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
