// Package cache provides the TTL cache used by the store layer to hold
// taxonomy snapshots between requests. Caching lives entirely on the
// caller side of the engine: the engine itself never caches a snapshot
// beyond the call it was given.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the snapshot cache interface
type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	Delete(key string)
	Clear()
}

// SnapshotKey builds a cache key for a canon source and domain filter
func SnapshotKey(source, domain string) string {
	hash := sha256.Sum256([]byte(source + "|" + domain))
	return "canonlens:v1:" + hex.EncodeToString(hash[:])
}
