// Package cache stores derived artifacts, such as detected beat tracks, so
// that repeated renders skip expensive external tools.
//
// Two implementations are provided:
//   - [FileCache] keeps entries as JSON files under a directory
//   - [NullCache] never stores anything and is used when caching is disabled
//
// Keys are built with [Key], which hashes the inputs that determine an
// artifact:
//
//	key := cache.Key("beats", cache.Hash(audio), beatCommand)
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return decode(data)
//	}
package cache

import (
	"context"
	"time"
)

// Cache is a byte store keyed by strings. A ttl of zero never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
