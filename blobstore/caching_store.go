package blobstore

import (
	"bytes"
	"context"
	"io"

	"golang.org/x/sync/errgroup"
)

// CachingStore wraps a BlobStore with a read-through cache held in another
// BlobStore, typically a LocalStore in front of a remote bucket.
//
// Writes go to both stores; reads are served from the cache when present.
type CachingStore struct {
	inner BlobStore
	cache BlobStore
}

// NewCachingStore creates a new CachingStore.
func NewCachingStore(inner, cache BlobStore) *CachingStore {
	return &CachingStore{
		inner: inner,
		cache: cache,
	}
}

// Get returns the cached copy, fetching and caching it on a miss.
func (s *CachingStore) Get(ctx context.Context, name string) (io.ReadCloser, error) {
	if rc, err := s.cache.Get(ctx, name); err == nil {
		return rc, nil
	}

	data, err := ReadAll(ctx, s.inner, name)
	if err != nil {
		return nil, err
	}

	// A failed cache fill only costs a refetch next time.
	_ = s.cache.Put(ctx, name, data)

	return io.NopCloser(bytes.NewReader(data)), nil
}

// Put writes to the inner store and the cache concurrently.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.inner.Put(ctx, name, data) })
	g.Go(func() error { return s.cache.Put(ctx, name, data) })
	return g.Wait()
}

// Delete removes the blob from both stores.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	if err := s.cache.Delete(ctx, name); err != nil {
		return err
	}
	return s.inner.Delete(ctx, name)
}

// List lists the inner store, which is authoritative.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}
