package checks

import (
	"context"
	"fmt"
	"path"
	"strings"

	"bird-herd/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectKey maps an image filepath to its key in the bucket.
func ObjectKey(prefix, filepath string) string {
	filepath = strings.TrimLeft(filepath, "/")
	if prefix == "" {
		return filepath
	}
	return path.Join(strings.Trim(prefix, "/"), filepath)
}

// CheckBucket verifies that the bucket exists and holds at least one object
// under prefix. It returns false when the bucket is empty there.
func CheckBucket(ctx context.Context, client storage.Client, bucket, prefix string) (bool, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return false, fmt.Errorf("bucket %s does not exist", bucket)
	}

	folder := strings.Trim(prefix, "/")
	if folder != "" {
		folder += "/"
	}
	opts := minio.ListObjectsOptions{
		Prefix:    folder,
		Recursive: true,
		MaxKeys:   1,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return false, fmt.Errorf("failed to list bucket %s: %w", bucket, obj.Err)
		}
		return true, nil
	}
	return false, nil
}
