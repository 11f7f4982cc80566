package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis keys for cached full listings
const (
	ListCacheKeyPatients     = "clinic:list:patients"
	ListCacheKeyDoctors      = "clinic:list:doctors"
	ListCacheKeyAppointments = "clinic:list:appointments"

	// Every listing key has a counter bumped on each invalidation
	generationSuffix = ":gen"

	// Timeout for individual Redis operations
	listCacheTimeout = 2 * time.Second
)

// NoGeneration is returned by Load when the generation could not be read.
// Store ignores values tagged with it.
const NoGeneration int64 = -1

var errStaleGeneration = errors.New("listing invalidated while it was being read")

// ListCache is a read-through cache for the unfiltered listings.
//
// Load reports the generation of key alongside a miss; the caller reads the
// listing from the database and hands that generation back to Store, which
// drops the value if Invalidate ran in between.
//
// Cache failures are never surfaced to callers: a failed Load is a miss
// and failed Store/Invalidate calls are logged. Writers must call
// Invalidate only after their transaction has committed.
type ListCache interface {
	Load(ctx context.Context, key string, dest interface{}) (generation int64, hit bool)
	Store(ctx context.Context, key string, generation int64, value interface{})
	Invalidate(ctx context.Context, keys ...string)
}

type redisListCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewRedisListCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) ListCache {
	return &redisListCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (c *redisListCache) Load(ctx context.Context, key string, dest interface{}) (int64, bool) {
	ctx, cancel := context.WithTimeout(ctx, listCacheTimeout)
	defer cancel()

	generation, err := c.generation(ctx, c.redisClient, key)
	if err != nil {
		c.log.Warnf("Failed to read cache generation of %s: %+v", key, err)
		return NoGeneration, false
	}

	payload, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read cache key %s: %+v", key, err)
		}
		return generation, false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		c.log.Warnf("Failed to decode cache key %s, dropping it: %+v", key, err)
		c.Invalidate(ctx, key)
		return NoGeneration, false
	}

	return generation, true
}

func (c *redisListCache) Store(ctx context.Context, key string, generation int64, value interface{}) {
	if generation == NoGeneration {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Failed to encode cache value for %s: %+v", key, err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, listCacheTimeout)
	defer cancel()

	// EXEC aborts if an invalidation bumps the generation after WATCH
	err = c.redisClient.Watch(ctx, func(tx *redis.Tx) error {
		current, err := c.generation(ctx, tx, key)
		if err != nil {
			return err
		}
		if current != generation {
			return errStaleGeneration
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, c.ttl)
			return nil
		})
		return err
	}, key+generationSuffix)

	switch {
	case err == nil:
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		c.log.Debugf("Skipped caching %s: invalidated during read", key)
	default:
		c.log.Warnf("Failed to write cache key %s: %+v", key, err)
	}
}

func (c *redisListCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, listCacheTimeout)
	defer cancel()

	_, err := c.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		for _, key := range keys {
			pipe.Incr(ctx, key+generationSuffix)
		}
		return nil
	})
	if err != nil {
		// Entries still expire after ttl
		c.log.Warnf("Failed to invalidate cache keys %v (non-fatal): %+v", keys, err)
		return
	}

	c.log.Debugf("Invalidated cache keys %v", keys)
}

// stringGetter is satisfied by both *redis.Client and *redis.Tx.
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (c *redisListCache) generation(ctx context.Context, cmd stringGetter, key string) (int64, error) {
	generation, err := cmd.Get(ctx, key+generationSuffix).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}

type noopListCache struct{}

// NewNoopListCache returns a cache that never hits, used when Redis is not configured.
func NewNoopListCache() ListCache {
	return noopListCache{}
}

func (noopListCache) Load(context.Context, string, interface{}) (int64, bool) { return NoGeneration, false }
func (noopListCache) Store(context.Context, string, int64, interface{})       {}
func (noopListCache) Invalidate(context.Context, ...string)                   {}
