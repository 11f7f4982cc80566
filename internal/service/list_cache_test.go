package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedList struct {
	Names []string `json:"names"`
	Total int      `json:"total"`
}

func newTestCache(t *testing.T) (ListCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewRedisListCache(client, log, time.Minute), mr
}

func TestRedisListCache_StoreAndLoad(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	var miss cachedList
	generation, hit := cache.Load(ctx, ListCacheKeyDoctors, &miss)
	assert.False(t, hit)
	assert.Zero(t, generation)

	cache.Store(ctx, ListCacheKeyDoctors, generation, cachedList{Names: []string{"Ana", "Luis"}, Total: 2})
	assert.True(t, mr.Exists(ListCacheKeyDoctors))

	var cached cachedList
	_, hit = cache.Load(ctx, ListCacheKeyDoctors, &cached)
	require.True(t, hit)
	assert.Equal(t, []string{"Ana", "Luis"}, cached.Names)
	assert.Equal(t, 2, cached.Total)
	assert.Equal(t, time.Minute, mr.TTL(ListCacheKeyDoctors))
}

func TestRedisListCache_Invalidate(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	cache.Store(ctx, ListCacheKeyPatients, 0, cachedList{Total: 1})
	cache.Store(ctx, ListCacheKeyAppointments, 0, cachedList{Total: 3})

	cache.Invalidate(ctx, ListCacheKeyPatients, ListCacheKeyAppointments)

	assert.False(t, mr.Exists(ListCacheKeyPatients))
	assert.False(t, mr.Exists(ListCacheKeyAppointments))

	var dest cachedList
	generation, hit := cache.Load(ctx, ListCacheKeyPatients, &dest)
	assert.False(t, hit)
	assert.EqualValues(t, 1, generation)
}

func TestRedisListCache_StoreAfterConcurrentInvalidateIsDropped(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	var dest cachedList
	generation, hit := cache.Load(ctx, ListCacheKeyPatients, &dest)
	require.False(t, hit)

	// A writer commits and invalidates while the listing is read from the database
	cache.Invalidate(ctx, ListCacheKeyPatients)

	cache.Store(ctx, ListCacheKeyPatients, generation, cachedList{Names: []string{"stale"}, Total: 1})
	assert.False(t, mr.Exists(ListCacheKeyPatients))

	// The next reader sees the new generation and may fill the cache again
	generation, hit = cache.Load(ctx, ListCacheKeyPatients, &dest)
	require.False(t, hit)
	cache.Store(ctx, ListCacheKeyPatients, generation, cachedList{Names: []string{"fresh"}, Total: 1})

	_, hit = cache.Load(ctx, ListCacheKeyPatients, &dest)
	require.True(t, hit)
	assert.Equal(t, []string{"fresh"}, dest.Names)
}

func TestRedisListCache_CorruptEntryIsDropped(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(ListCacheKeyPatients, "{not json"))

	var dest cachedList
	generation, hit := cache.Load(ctx, ListCacheKeyPatients, &dest)
	assert.False(t, hit)
	assert.Equal(t, NoGeneration, generation)
	assert.False(t, mr.Exists(ListCacheKeyPatients))
}

func TestRedisListCache_UnavailableRedisIsAMiss(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	mr.Close()

	cache.Store(ctx, ListCacheKeyDoctors, 0, cachedList{Total: 1})

	var dest cachedList
	generation, hit := cache.Load(ctx, ListCacheKeyDoctors, &dest)
	assert.False(t, hit)
	assert.Equal(t, NoGeneration, generation)
}

func TestNoopListCache(t *testing.T) {
	cache := NewNoopListCache()
	ctx := context.Background()

	cache.Store(ctx, ListCacheKeyDoctors, 0, cachedList{Total: 1})

	var dest cachedList
	_, hit := cache.Load(ctx, ListCacheKeyDoctors, &dest)
	assert.False(t, hit)
	cache.Invalidate(ctx, ListCacheKeyDoctors)
}
