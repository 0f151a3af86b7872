package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// takeScript refills and takes atomically. Bucket state is a hash with the
// token count and the millisecond timestamp of the last refill.
var takeScript = redis.NewScript(`
local capacity = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local interval = tonumber(ARGV[3])
local now = tonumber(ARGV[4])
local n = tonumber(ARGV[5])
local ttl = tonumber(ARGV[6])

local state = redis.call("HMGET", KEYS[1], "tokens", "ts")
local tokens = tonumber(state[1])
local ts = tonumber(state[2])
if tokens == nil or ts == nil then
	tokens = capacity
	ts = now
end

if tokens >= capacity then
	ts = now
else
	local intervals = math.floor((now - ts) / interval)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + intervals * rate)
		ts = ts + intervals * interval
	end
end

local allowed = 0
if tokens >= n then
	tokens = tokens - n
	allowed = 1
end

redis.call("HSET", KEYS[1], "tokens", tokens, "ts", ts)
redis.call("PEXPIRE", KEYS[1], ttl)
return {allowed, tokens, ts + interval}
`)

// RedisClient is satisfied by *redis.Client and the other go-redis clients.
type RedisClient interface {
	redis.Scripter
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore shares buckets between processes through Redis.
type RedisStore struct {
	client RedisClient
	prefix string
	now    func() time.Time
}

type RedisStoreOption func(*RedisStore)

// WithKeyPrefix namespaces bucket keys. Defaults to "ratelimit:".
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(rs *RedisStore) {
		rs.prefix = prefix
	}
}

func WithRedisClock(now func() time.Time) RedisStoreOption {
	return func(rs *RedisStore) {
		if now != nil {
			rs.now = now
		}
	}
}

func NewRedisStore(client RedisClient, opts ...RedisStoreOption) *RedisStore {
	rs := &RedisStore{client: client, prefix: "ratelimit:", now: time.Now}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

func (rs *RedisStore) Take(ctx context.Context, key string, tokens int, config Config) (bool, int, time.Time, error) {
	res, err := takeScript.Run(ctx, rs.client, []string{rs.prefix + key},
		config.Capacity,
		config.RefillRate,
		config.RefillInterval.Milliseconds(),
		rs.now().UnixMilli(),
		tokens,
		config.ttl().Milliseconds(),
	).Int64Slice()
	if err != nil {
		return false, 0, time.Time{}, fmt.Errorf("ratelimiter: redis take: %w", err)
	}
	if len(res) != 3 {
		return false, 0, time.Time{}, fmt.Errorf("ratelimiter: unexpected script result %v", res)
	}
	return res[0] == 1, int(res[1]), time.UnixMilli(res[2]), nil
}

func (rs *RedisStore) Reset(ctx context.Context, key string) error {
	return rs.client.Del(ctx, rs.prefix+key).Err()
}
