// Package storage persists uploaded files. Files are addressed by the generated name
// handed out by Save; that name is what food items record as their image path.
package storage

import (
	"antopolis/config"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidName = errors.New("invalid file name")
)

type File struct {
	io.ReadCloser
	Size        int64
	ContentType string
}

type FileStore interface {
	Save(ctx context.Context, prefix, originalName string, r io.Reader, size int64) (string, error)
	Open(ctx context.Context, name string) (*File, error)
	Delete(ctx context.Context, name string) error
}

// Files is the process-wide file store, set up by InitStorage.
var Files FileStore

func InitStorage(ctx context.Context, cfg *config.Config) error {
	switch cfg.UploadBackend {
	case config.UploadBackendMinio:
		s, err := NewMinioStore(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket)
		if err != nil {
			return fmt.Errorf("minio storage: %w", err)
		}
		Files = s
	default:
		s, err := NewLocalStore(cfg.UploadDir)
		if err != nil {
			return fmt.Errorf("local storage: %w", err)
		}
		Files = s
	}
	return nil
}

// newName keeps the original extension and nothing else of the client supplied name.
func newName(prefix, originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	return fmt.Sprintf("%s-%d-%s%s", prefix, time.Now().UnixNano(), uuid.NewString()[:8], ext)
}

// checkName accepts only a single path segment.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return ErrInvalidName
	}
	return nil
}

func ContentType(name string) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); t != "" {
		return t
	}
	return "application/octet-stream"
}
