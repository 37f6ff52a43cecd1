package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageBucketEmptyBlobName(t *testing.T) {
	bucket := &StorageBucket{}

	exists, err := bucket.Exists(context.Background(), "/")
	require.NoError(t, err)
	assert.False(t, exists)
}
