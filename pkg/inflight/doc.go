// Package inflight prevents a second operation from starting while one with the
// same key is still running. MemoryGuard works within one process; RedisGuard
// shares claims across replicas using SET NX with a TTL.
package inflight
