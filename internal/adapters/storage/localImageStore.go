package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalImageStore writes uploaded images to a directory on disk and
// serves them through the HTTP static route mounted on baseURL.
type LocalImageStore struct {
	Dir     string
	BaseURL string
}

func NewLocalImageStore(dir, baseURL string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &LocalImageStore{Dir: dir, BaseURL: baseURL}, nil
}

func (s *LocalImageStore) Save(ctx context.Context, fileName string, content []byte) (string, error) {
	path := filepath.Join(s.Dir, filepath.Base(fileName))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return s.BaseURL + "/" + filepath.Base(fileName), nil
}
