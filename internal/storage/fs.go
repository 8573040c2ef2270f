package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FSStore keeps uploaded objects on the local filesystem. The server
// exposes the directory under baseURL.
type FSStore struct {
	dir     string
	baseURL string
}

func NewFSStore(dir string, baseURL string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Put writes the object to disk. The contentType is unused here; blob
// backends need it to set the object metadata.
func (s *FSStore) Put(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return s.baseURL + "/" + key, nil
}
