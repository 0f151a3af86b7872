package ratelimiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forum/pkg/ratelimiter"
)

func newRedisBucket(t *testing.T, clk *clock) (*ratelimiter.Bucket, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := ratelimiter.NewRedisStore(client,
		ratelimiter.WithKeyPrefix("test:"),
		ratelimiter.WithRedisClock(clk.Now),
	)
	b, err := ratelimiter.NewBucket(store, loginConfig)
	require.NoError(t, err)
	return b, srv
}

func TestRedisStore(t *testing.T) {
	t.Parallel()

	t.Run("allows up to capacity then denies", func(t *testing.T) {
		t.Parallel()

		b, srv := newRedisBucket(t, newClock())
		ctx := context.Background()

		for i := range loginConfig.Capacity {
			res, err := b.Allow(ctx, "10.0.0.1")
			require.NoError(t, err)
			assert.True(t, res.Allowed)
			assert.Equal(t, loginConfig.Capacity-i-1, res.Remaining)
		}

		res, err := b.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.False(t, res.Allowed)
		assert.Equal(t, 0, res.Remaining)

		assert.True(t, srv.Exists("test:10.0.0.1"))
		assert.Positive(t, srv.TTL("test:10.0.0.1"))
	})

	t.Run("refills with the injected clock", func(t *testing.T) {
		t.Parallel()

		clk := newClock()
		b, _ := newRedisBucket(t, clk)
		ctx := context.Background()

		for range loginConfig.Capacity {
			_, err := b.Allow(ctx, "k")
			require.NoError(t, err)
		}

		clk.Advance(2*time.Minute + 10*time.Second)
		st, err := b.Status(ctx, "k")
		require.NoError(t, err)
		assert.True(t, st.Allowed)
		assert.Equal(t, 2, st.Remaining)
		assert.Equal(t, clk.Now().Add(50*time.Second).UnixMilli(), st.ResetAt.UnixMilli())
	})

	t.Run("reset deletes the key", func(t *testing.T) {
		t.Parallel()

		b, srv := newRedisBucket(t, newClock())
		ctx := context.Background()

		_, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		require.NoError(t, b.Reset(ctx, "k"))
		assert.False(t, srv.Exists("test:k"))
	})

	t.Run("unavailable server", func(t *testing.T) {
		t.Parallel()

		b, srv := newRedisBucket(t, newClock())
		srv.Close()

		_, err := b.Allow(context.Background(), "k")
		assert.ErrorIs(t, err, ratelimiter.ErrStoreUnavailable)
	})
}
