package storage

import (
	"context"
	"io"
)

// Store persists uploaded objects. Put writes the object under the
// given key and returns its public URL.
type Store interface {
	Put(ctx context.Context, key string, contentType string, r io.Reader) (string, error)
}
