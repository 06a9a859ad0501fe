// Package testutils provides fixtures and helpers shared by tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/redis"
)

// TestRedis is an in-process Redis server and a client connected to it
type TestRedis struct {
	Server *miniredis.Miniredis
	Client redis.Client
}

// NewTestRedis starts miniredis for the duration of t
func NewTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() {
		_ = client.Close()
	})

	return &TestRedis{
		Server: mr,
		Client: client,
	}
}
