// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.NewFromDefaultConfig(ctx, "my-bucket", "foods/")
//	report, err := dataset.Load(ctx, store, db, "foods.csv")
//
// # Features
//
//   - Multipart uploads via the SDK upload manager
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
