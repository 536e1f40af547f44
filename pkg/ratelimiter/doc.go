// Package ratelimiter provides a token bucket limiter with in-memory and
// Redis stores plus HTTP middleware.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: 12 * time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.With(ratelimiter.Middleware(bucket, func(r *http.Request) string {
//		return clientip.GetIP(r)
//	})).Post("/contact", submit)
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every checked response and Retry-After when denying.
// Denied requests still take a token, so a client hammering the endpoint
// stays blocked until it backs off.
package ratelimiter
