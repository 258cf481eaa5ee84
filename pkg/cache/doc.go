// Package cache stores rendered pages.
//
// Store is the byte-oriented interface the site renderer uses. MemoryStore
// keeps entries in a process-local LRU with an optional TTL; RedisStore shares
// them between replicas through github.com/redis/go-redis/v9. Keys are opaque
// to the store, callers embed whatever versioning they need.
package cache
