package mem

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisDenylist(t *testing.T) {
	mr, client := newTestRedis(t)
	denylist := NewRedisDenylist(client)
	ctx := context.Background()

	require.NoError(t, denylist.Revoke(ctx, "jti-1", time.Minute))
	assert.True(t, mr.Exists("raahi:revoked:jti-1"))

	revoked, err := denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Minute)
	revoked, err = denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisDenylist_SkipsExpiredTokens(t *testing.T) {
	mr, client := newTestRedis(t)
	denylist := NewRedisDenylist(client)

	require.NoError(t, denylist.Revoke(context.Background(), "jti-old", -time.Second))
	assert.False(t, mr.Exists("raahi:revoked:jti-old"))
}

func TestRedisDenylist_ConnectionError(t *testing.T) {
	mr, client := newTestRedis(t)
	mr.Close()

	_, err := NewRedisDenylist(client).IsRevoked(context.Background(), "jti-1")
	assert.Error(t, err)
}
