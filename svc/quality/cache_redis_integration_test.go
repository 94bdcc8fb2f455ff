//go:build integration

package quality_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/therapist-admin/internal/testutil/containers"
	"github.com/dmitrymomot/therapist-admin/pkg/redis"
	"github.com/dmitrymomot/therapist-admin/svc/directory"
	"github.com/dmitrymomot/therapist-admin/svc/quality"
)

func TestRedisCache(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()

	storage := redis.NewStorageWithConfig(rc.Client, redis.Config{KeyPrefix: "test:quality:"})
	c := quality.NewRedisCache(storage, time.Minute)

	require.NoError(t, rc.Client.Set(ctx, "unrelated", "keep", 0).Err())

	require.NoError(t, c.Set(ctx, "summary", []byte(`{"total":1}`)))
	v, ok := c.Get(ctx, "summary")
	require.True(t, ok)
	assert.JSONEq(t, `{"total":1}`, string(v))

	ttl, err := rc.Client.TTL(ctx, "test:quality:summary").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, c.Clear(ctx))
	_, ok = c.Get(ctx, "summary")
	assert.False(t, ok)

	kept, err := rc.Client.Get(ctx, "unrelated").Result()
	require.NoError(t, err)
	assert.Equal(t, "keep", kept)

	t.Run("scanner summary through redis", func(t *testing.T) {
		s := quality.NewScanner(
			directory.NewMemoryStore(directory.SampleTherapists()...),
			quality.WithCache(c),
		)
		first, err := s.Summary(ctx)
		require.NoError(t, err)

		cached, ok := c.Get(ctx, "summary")
		require.True(t, ok)
		assert.Contains(t, string(cached), `"total":6`)

		second, err := s.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.Failures, second.Failures)
	})
}
