// Package cache stores solved maze paths in Redis.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/beka-birhanu/maze-solver-api/solver"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// default prefix for redis keys
const defaultPrefix = "mazesolver"

// RedisSolutionCache keeps solutions keyed by maze digest with a TTL,
// plus a distributed lock per digest so only one instance solves a
// given maze at a time.
type RedisSolutionCache struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	ttl    time.Duration
}

// NewRedisSolutionCache initializes a cache on the provided Redis client.
func NewRedisSolutionCache(client *redis.Client, ttlSeconds int) (*RedisSolutionCache, error) {
	c := &RedisSolutionCache{
		client: client,
		prefix: defaultPrefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	c.locker = redsync.New(pool)
	return c, nil
}

// Get returns the cached solution for the digest, or nil on a miss.
func (c *RedisSolutionCache) Get(ctx context.Context, digest string) (*solver.Solution, error) {
	raw, err := c.client.Get(ctx, c.solutionKey(digest)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var solution solver.Solution
	if err := json.Unmarshal(raw, &solution); err != nil {
		return nil, err
	}
	return &solution, nil
}

// Set stores the solution under the digest with the cache TTL.
func (c *RedisSolutionCache) Set(ctx context.Context, digest string, solution *solver.Solution) error {
	raw, err := json.Marshal(solution)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.solutionKey(digest), raw, c.ttl).Err()
}

// Lock takes the distributed solve lock for the digest.
func (c *RedisSolutionCache) Lock(digest string) (func(), error) {
	mutex := c.locker.NewMutex(c.lockKey(digest))
	if err := mutex.Lock(); err != nil {
		return nil, err
	}
	return func() {
		_, _ = mutex.Unlock()
	}, nil
}

func (c *RedisSolutionCache) solutionKey(digest string) string {
	return c.prefix + ":solution:" + digest
}

func (c *RedisSolutionCache) lockKey(digest string) string {
	return c.prefix + ":solve_lock:" + digest
}
