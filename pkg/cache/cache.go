// Package cache stores rendered diagrams.
//
// A render is a pure function of the diagram and the output format, so its
// result can be cached under a key derived from both. The [Cache] interface
// has three backends:
//
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: one file per entry, for the CLI
//   - [RedisCache]: shared cache for multiple server instances
//
// Keys come from a [Keyer]. [DefaultKeyer] hashes the diagram document and
// the key options; [ScopedKeyer] adds a namespace prefix.
//
// Cache failures are never fatal to a render: callers treat errors as misses.
// Only connecting to Redis is retried, with [RetryWithBackoff], so a server
// can start before its cache is reachable.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value stored under key. A missing or expired entry
	// is reported as hit == false with a nil error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Entry lifetimes.
const (
	// TTLArtifact applies to rendered output. Renders never go stale, so
	// this only bounds disk and memory use.
	TTLArtifact = 7 * 24 * time.Hour
)

// RenderKeyOpts holds everything besides the diagram that affects a render.
type RenderKeyOpts struct {
	Format string `json:"format"`
}

// Keyer derives cache keys.
type Keyer interface {
	// RenderKey returns the key for the render of a diagram whose document
	// hashes to diagramHash.
	RenderKey(diagramHash string, opts RenderKeyOpts) string
}

// DefaultKeyer produces keys of the form "render:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RenderKey hashes the diagram hash together with opts.
func (DefaultKeyer) RenderKey(diagramHash string, opts RenderKeyOpts) string {
	return digestKey("render", diagramHash, opts)
}
