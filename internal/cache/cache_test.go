package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/katalvlaran/stoich/internal/cache"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract exercises the Cache port against any implementation.
func runContract(t *testing.T, c cache.Cache) {
	t.Helper()
	ctx := context.Background()

	_, err := c.Get(ctx, "H2 + O2 -> H2O")
	require.ErrorIs(t, err, cache.ErrMiss)

	require.NoError(t, c.Set(ctx, "H2 + O2 -> H2O", []byte(`{"balanced":"2 H2 + 1 O2 -> 2 H2O"}`)))
	got, err := c.Get(ctx, "H2 + O2 -> H2O")
	require.NoError(t, err)
	assert.JSONEq(t, `{"balanced":"2 H2 + 1 O2 -> 2 H2O"}`, string(got))

	require.NoError(t, c.Set(ctx, "H2 + O2 -> H2O", []byte(`{}`)))
	got, err = c.Get(ctx, "H2 + O2 -> H2O")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(got))
}

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestStore_Contract(t *testing.T) {
	_, client := newMiniredis(t)
	runContract(t, cache.NewFromClient(client))
}

func TestMemory_Contract(t *testing.T) {
	runContract(t, cache.NewMemory())
}

func TestStore_PrefixAndTTL(t *testing.T) {
	mr, client := newMiniredis(t)
	s := cache.NewFromClient(client, cache.WithPrefix("t:"), cache.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	assert.True(t, mr.Exists("t:k"))
	assert.Equal(t, time.Minute, mr.TTL("t:k"))

	mr.FastForward(2 * time.Minute)
	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestNew_PingFailure(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err = cache.New(ctx, addr, "", 0)
	require.Error(t, err)
}

func TestNew_Ping(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	s, err := cache.New(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	defer s.Close()
}

func TestMemory_CopiesValues(t *testing.T) {
	m := cache.NewMemory()
	ctx := context.Background()
	v := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", v))
	v[0] = 'x'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
	assert.Equal(t, 1, m.Len())
}
