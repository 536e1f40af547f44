// Package cache provides a generic, thread-safe LRU cache with an eviction callback,
// used to bound per-session resources such as stream broadcasters.
package cache
