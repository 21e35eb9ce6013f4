//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"bikepacking-api/internal/pkg/clock"
)

type store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type cacheSuite struct {
	suite.Suite
	cache   store
	advance func(time.Duration)
}

func (s *cacheSuite) TestMissThenHit() {
	ctx := context.Background()

	_, ok, err := s.cache.Get(ctx, "k")
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.cache.Set(ctx, "k", []byte("v1"), time.Minute))
	got, ok, err := s.cache.Get(ctx, "k")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal([]byte("v1"), got)
}

func (s *cacheSuite) TestExpiry() {
	ctx := context.Background()
	s.Require().NoError(s.cache.Set(ctx, "ttl", []byte("v"), 10*time.Second))

	s.advance(9 * time.Second)
	_, ok, err := s.cache.Get(ctx, "ttl")
	s.Require().NoError(err)
	s.True(ok)

	s.advance(2 * time.Second)
	_, ok, err = s.cache.Get(ctx, "ttl")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *cacheSuite) TestOverwriteAndDelete() {
	ctx := context.Background()
	s.Require().NoError(s.cache.Set(ctx, "k", []byte("a"), time.Minute))
	s.Require().NoError(s.cache.Set(ctx, "k", []byte("b"), time.Minute))

	got, _, err := s.cache.Get(ctx, "k")
	s.Require().NoError(err)
	s.Equal([]byte("b"), got)

	s.Require().NoError(s.cache.Delete(ctx, "k"))
	_, ok, err := s.cache.Get(ctx, "k")
	s.Require().NoError(err)
	s.False(ok)
}

func TestMemoryCache(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s := &cacheSuite{advance: clk.Advance}
	s.cache = NewMemoryCache(clk)
	suite.Run(t, s)
}

func TestRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := &cacheSuite{advance: mr.FastForward}
	s.cache = NewRedisCache(client, "test:")
	suite.Run(t, s)
}

func TestRedisCache_Prefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisCache(client, "")
	require.NoError(t, c.Set(context.Background(), "blog:abc", []byte("x"), time.Minute))

	assert.True(t, mr.Exists(DefaultPrefix+"blog:abc"))
}

func TestRedisCache_ConnectionError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	c := NewRedisCache(client, "")
	_, _, err := c.Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestMemoryCache_ReturnsCopy(t *testing.T) {
	c := NewMemoryCache(nil)
	ctx := context.Background()
	in := []byte("abc")
	require.NoError(t, c.Set(ctx, "k", in, 0))
	in[0] = 'x'

	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("abc"), got)
}
