// Package cache provides process-lifetime caching for remote recognizer
// responses so identical text blocks are not re-sent to the backend.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for response caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Clear()
}

// Key generates a cache key from a text block
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "docverify:v1:" + hex.EncodeToString(hash[:])
}
