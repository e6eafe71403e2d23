package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist. It aliases
// os.ErrNotExist so local file errors match without translation.
var ErrNotFound = os.ErrNotExist

// NotFoundError names the missing blob. It matches ErrNotFound.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string { return "blob " + e.Name + ": not found" }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// BlobStore stores named blobs.
type BlobStore interface {
	// Get opens a blob for reading. The caller must close it.
	Get(ctx context.Context, name string) (io.ReadCloser, error)
	// Put writes a blob, replacing any existing one.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the names starting with prefix in ascending order.
	List(ctx context.Context, prefix string) ([]string, error)
}

// ReadAll reads a whole blob.
func ReadAll(ctx context.Context, s BlobStore, name string) ([]byte, error) {
	rc, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	return io.ReadAll(rc)
}
