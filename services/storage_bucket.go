package services

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
)

// ImageStore answers whether an uploaded post image exists
type ImageStore interface {
	Exists(ctx context.Context, blobName string) (bool, error)
}

// StorageBucket is the firebase bucket holding uploaded post images
type StorageBucket struct {
	*storage.BucketHandle
}

func NewStorageBucket(ctx context.Context, app *firebase.App, bucketName string) (*StorageBucket, error) {
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, err
	}
	bucketHandle, err := client.Bucket(bucketName)
	if err != nil {
		return nil, err
	}

	return &StorageBucket{
		bucketHandle,
	}, nil
}

func (sb *StorageBucket) Exists(ctx context.Context, blobName string) (bool, error) {
	blobName = strings.TrimPrefix(blobName, "/")
	if len(blobName) == 0 {
		return false, nil
	}
	if _, err := sb.Object(blobName).Attrs(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
