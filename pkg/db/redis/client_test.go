package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localnotes/pkg/db/redis"
)

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	t.Run("connects to a running server", func(t *testing.T) {
		srv := miniredis.RunT(t)

		client, err := redis.NewClient(ctx, redis.Options{Addr: srv.Addr(), DB: 0})
		require.NoError(t, err)
		require.NotNil(t, client)

		require.NoError(t, client.Raw().Set(ctx, "k", "v", 0).Err())
		got, err := srv.Get("k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)

		assert.NoError(t, client.Close(ctx))
	})

	t.Run("fails when server is unreachable", func(t *testing.T) {
		srv := miniredis.RunT(t)
		addr := srv.Addr()
		srv.Close()

		client, err := redis.NewClient(ctx, redis.Options{
			Addr:        addr,
			DialTimeout: 100 * time.Millisecond,
		})
		require.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), redis.ErrConnect)
	})

	t.Run("fails with cancelled context", func(t *testing.T) {
		srv := miniredis.RunT(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		client, err := redis.NewClient(cancelled, redis.Options{Addr: srv.Addr()})
		require.Error(t, err)
		assert.Nil(t, client)
	})
}
