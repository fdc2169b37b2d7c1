package checks

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"bird-herd/core/storage"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds the concurrent StatObject calls of FindMissingObjects.
const DefaultWorkers = 16

// FindMissingObjects returns the filepaths whose object is absent from the
// bucket, sorted. Any storage error other than not-found aborts the scan.
func FindMissingObjects(ctx context.Context, client storage.Client, bucket, prefix string, filepaths []string, workers int) ([]string, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	var (
		mu      sync.Mutex
		missing []string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, fp := range filepaths {
		g.Go(func() error {
			_, err := client.StatObject(ctx, bucket, ObjectKey(prefix, fp), minio.StatObjectOptions{})
			if err == nil {
				return nil
			}
			if storage.IsNotFound(err) {
				mu.Lock()
				missing = append(missing, fp)
				mu.Unlock()
				return nil
			}
			return fmt.Errorf("failed to stat %s: %w", fp, err)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(missing)
	return missing, nil
}
