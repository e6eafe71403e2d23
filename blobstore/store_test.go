package blobstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBlobStore runs the behaviour every BlobStore must share.
func testBlobStore(t *testing.T, store BlobStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing.csv")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "foods.csv", []byte("1,Apple")))
	require.NoError(t, store.Put(ctx, "backup/foods.json", []byte("[]")))
	require.NoError(t, store.Put(ctx, "foods.csv", []byte("1,Apple\r\n2,Bacon")))

	data, err := ReadAll(ctx, store, "foods.csv")
	require.NoError(t, err)
	assert.Equal(t, "1,Apple\r\n2,Bacon", string(data))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"backup/foods.json", "foods.csv"}, names)

	names, err = store.List(ctx, "backup/")
	require.NoError(t, err)
	assert.Equal(t, []string{"backup/foods.json"}, names)

	require.NoError(t, store.Delete(ctx, "foods.csv"))
	require.NoError(t, store.Delete(ctx, "foods.csv"))

	_, err = store.Get(ctx, "foods.csv")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore(t *testing.T) {
	testBlobStore(t, NewLocalStore(t.TempDir()))
}

func TestLocalStoreMissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "does-not-exist"))

	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLocalStoreCanceled(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.Put(ctx, "a", nil), context.Canceled)
	_, err := store.Get(ctx, "a")
	require.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStore(t *testing.T) {
	testBlobStore(t, NewMemoryStore())
}

func TestMemoryStoreCopiesInput(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte("abc")
	require.NoError(t, store.Put(ctx, "x", data))
	data[0] = 'z'

	got, err := ReadAll(ctx, store, "x")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
	assert.Equal(t, 1, store.Len())
}

func TestCachingStore(t *testing.T) {
	testBlobStore(t, NewCachingStore(NewMemoryStore(), NewMemoryStore()))
}

func TestCachingStoreReadThrough(t *testing.T) {
	ctx := context.Background()
	remote := NewMemoryStore()
	cache := NewLocalStore(t.TempDir())
	store := NewCachingStore(remote, cache)

	require.NoError(t, remote.Put(ctx, "foods.csv", []byte("v1")))

	got, err := ReadAll(ctx, store, "foods.csv")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got))

	cached, err := ReadAll(ctx, cache, "foods.csv")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(cached))

	// Served from the cache once filled.
	require.NoError(t, remote.Delete(ctx, "foods.csv"))
	got, err = ReadAll(ctx, store, "foods.csv")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got))

	_, err = store.Get(ctx, "other.csv")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNotFoundError(t *testing.T) {
	_, err := NewMemoryStore().Get(context.Background(), "foods.csv")

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "foods.csv", nf.Name)
	assert.EqualError(t, err, "blob foods.csv: not found")
}
