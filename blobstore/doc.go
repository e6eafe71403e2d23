// Package blobstore abstracts where record files live.
//
// BlobStore is the interface for reading and writing named record files.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: a directory on the local file system
//   - MemoryStore: in-memory, for tests
//   - CachingStore: read-through cache in front of a remote store
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and other S3-compatible storage
//
// Names are slash-separated regardless of the backend.
package blobstore
