package checks

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"bird-herd/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func objects(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func notFound() error {
	return minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "robin/1.jpg", ObjectKey("", "robin/1.jpg"))
	assert.Equal(t, "robin/1.jpg", ObjectKey("", "/robin/1.jpg"))
	assert.Equal(t, "images/robin/1.jpg", ObjectKey("images/", "robin/1.jpg"))
	assert.Equal(t, "data/images/robin/1.jpg", ObjectKey("/data/images", "/robin/1.jpg"))
}

func TestCheckBucket(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "birds").Return(false, nil)

		_, err := CheckBucket(context.Background(), client, "birds", "")
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("Empty Prefix", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "birds").Return(true, nil)
		client.On("ListObjects", mock.Anything, "birds", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Prefix == "images/"
		})).Return(objects())

		populated, err := CheckBucket(context.Background(), client, "birds", "/images")
		require.NoError(t, err)
		assert.False(t, populated)
	})

	t.Run("Populated", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "birds").Return(true, nil)
		client.On("ListObjects", mock.Anything, "birds", mock.Anything).Return(objects("robin/1.jpg", "robin/2.jpg"))

		populated, err := CheckBucket(context.Background(), client, "birds", "")
		require.NoError(t, err)
		assert.True(t, populated)
	})

	t.Run("List Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "birds").Return(true, nil)
		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Err: errors.New("access denied")}
		close(ch)
		client.On("ListObjects", mock.Anything, "birds", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		_, err := CheckBucket(context.Background(), client, "birds", "")
		assert.ErrorContains(t, err, "access denied")
	})
}

func TestFindMissingObjects(t *testing.T) {
	t.Run("Some Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "birds", "images/robin/1.jpg", mock.Anything).Return(minio.ObjectInfo{Key: "images/robin/1.jpg"}, nil)
		client.On("StatObject", mock.Anything, "birds", "images/robin/2.jpg", mock.Anything).Return(minio.ObjectInfo{}, notFound())
		client.On("StatObject", mock.Anything, "birds", "images/anna/1.jpg", mock.Anything).Return(minio.ObjectInfo{}, notFound())

		missing, err := FindMissingObjects(context.Background(), client, "birds", "images",
			[]string{"robin/1.jpg", "robin/2.jpg", "anna/1.jpg"}, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"anna/1.jpg", "robin/2.jpg"}, missing)
	})

	t.Run("Many Paths", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "birds", mock.Anything, mock.Anything).Return(minio.ObjectInfo{}, nil)

		paths := make([]string, 100)
		for i := range paths {
			paths[i] = fmt.Sprintf("bird/%03d.jpg", i)
		}
		missing, err := FindMissingObjects(context.Background(), client, "birds", "", paths, 0)
		require.NoError(t, err)
		assert.Empty(t, missing)
		client.AssertNumberOfCalls(t, "StatObject", 100)
	})

	t.Run("Storage Error Aborts", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "birds", mock.Anything, mock.Anything).
			Return(minio.ObjectInfo{}, errors.New("dial tcp: i/o timeout"))

		missing, err := FindMissingObjects(context.Background(), client, "birds", "", []string{"a.jpg", "b.jpg"}, 1)
		assert.ErrorContains(t, err, "i/o timeout")
		assert.Nil(t, missing)
	})
}
