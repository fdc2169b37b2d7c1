// Package storage provides an abstraction layer for the bucket holding bird images.
//
// It wraps the MinIO Go client, which supports both AWS S3 and self-hosted MinIO.
// The API never serves image bytes itself (the frontend loads them by filepath),
// so the interface is limited to the lookups the integrity checks need.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
//   - BucketExists: Verifies access to the target bucket.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - StatObject: Checks a single object.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "birds")
package storage
