// Package ratelimiter implements a token bucket limiter with pluggable
// storage and an HTTP middleware.
//
// A Bucket holds Capacity tokens per key and adds RefillRate tokens every
// RefillInterval. A request that finds fewer tokens than it asks for is denied
// without consuming any. MemoryStore keeps buckets in process; RedisStore
// shares them between instances through an atomic Lua script.
//
//	bucket, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.ClientIP)).Post("/sessions", h)
package ratelimiter
