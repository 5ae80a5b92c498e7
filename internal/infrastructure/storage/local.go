// Package storage saves uploaded product images on local disk.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/web-dev-boy/Nexteria/internal/domain"
	"github.com/web-dev-boy/Nexteria/pkg/config"
)

// allowedExtensions for product images. Anything else is rejected before the
// file touches disk.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// LocalImageStore writes images under a public uploads directory and hands
// back the URL path they will be served from.
type LocalImageStore struct {
	dir      string
	maxBytes int64
}

// NewLocalImageStore creates the uploads directory if needed.
func NewLocalImageStore(cfg config.UploadConfig) (*LocalImageStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalImageStore{
		dir:      cfg.Dir,
		maxBytes: int64(cfg.MaxSizeMB) * 1024 * 1024,
	}, nil
}

// Save validates extension and size, stores the file under a unique name and
// returns its public path ("/uploads/<name>").
func (s *LocalImageStore) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: only jpeg, jpg, png and gif images are allowed", domain.ErrInvalidInput)
	}
	if file.Size > s.maxBytes {
		return "", fmt.Errorf("%w: image exceeds %d bytes", domain.ErrInvalidInput, s.maxBytes)
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.New().String()[:8], ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}
	return "/uploads/" + name, nil
}

// Dir returns the directory images are stored in, for static file serving.
func (s *LocalImageStore) Dir() string { return s.dir }
