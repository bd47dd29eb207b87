// Package ratelimiter is a token bucket limiter with an in-memory store and
// HTTP middleware. The landing page uses it to bound how many analytics
// beacons one client can post.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 60, RefillRate: 1, RefillInterval: time.Second})
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP)).Post("/api/events", h)
package ratelimiter
