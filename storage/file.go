package storage

import (
	"context"
	"os"
	"path/filepath"
)

// FileStore writes objects into a local directory, one file per key.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (f *FileStore) Put(ctx context.Context, key string, data []byte) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(f.Dir, key), data, 0o644)
}
