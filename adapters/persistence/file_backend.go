package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sameer-B786/portfolio/pkg/apperror"
)

// FileBackend stores one JSON document per key under a data directory.
// Writes go through a temp file and a rename so a crash mid-write can never
// leave a partially written document behind.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir failed: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *FileBackend) Read(_ context.Context, key string) ([]byte, error) {
	payload, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, apperror.NewStorageFailure("read document failed", err)
	}
	return payload, nil
}

func (b *FileBackend) Write(_ context.Context, key string, payload []byte) error {
	tmp, err := os.CreateTemp(b.dir, key+".*.tmp")
	if err != nil {
		return apperror.NewStorageFailure("create temp document failed", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperror.NewStorageFailure("write temp document failed", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperror.NewStorageFailure("sync temp document failed", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperror.NewStorageFailure("close temp document failed", err)
	}

	if err := os.Rename(tmpName, b.path(key)); err != nil {
		os.Remove(tmpName)
		return apperror.NewStorageFailure("replace document failed", err)
	}
	return nil
}

func (b *FileBackend) Delete(_ context.Context, key string) error {
	if err := os.Remove(b.path(key)); err != nil && !os.IsNotExist(err) {
		return apperror.NewStorageFailure("delete document failed", err)
	}
	return nil
}
