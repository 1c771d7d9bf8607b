package kv

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps each collection in <dir>/<collection>.json.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(c Collection) string {
	return filepath.Join(s.dir, string(c)+".json")
}

func (s *FileStore) Read(ctx context.Context, c Collection) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, ioError("read", c, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path(c))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, ioError("read", c, err)
	}
	return data, nil
}

// Write replaces the collection atomically via a temp file and rename.
func (s *FileStore) Write(ctx context.Context, c Collection, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return ioError("write", c, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return ioError("create dir for", c, err)
	}
	target := s.path(c)
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, payload) {
		return nil
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(target)+".tmp")
	if err != nil {
		return ioError("create temp file for", c, err)
	}
	name := tmp.Name()
	_, err = tmp.Write(payload)
	if closeErr := tmp.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(name)
		return ioError("write", c, err)
	}
	if err := os.Rename(name, target); err != nil {
		_ = os.Remove(name)
		return ioError("rename", c, err)
	}
	return nil
}

func (s *FileStore) Remove(ctx context.Context, c Collection) error {
	if err := ctx.Err(); err != nil {
		return ioError("remove", c, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(c)); err != nil && !os.IsNotExist(err) {
		return ioError("remove", c, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
