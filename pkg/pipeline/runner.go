package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/protodiagram/pkg/cache"
	"github.com/matzehuels/protodiagram/pkg/diagram"
	"github.com/matzehuels/protodiagram/pkg/observability"
)

// Runner renders diagrams with caching.
//
// The Runner holds no per-render state; multiple goroutines can share one.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// If logger is nil, log output is discarded.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Render validates d and renders it in format. d is not modified; its
// configuration is normalised on a copy.
func (r *Runner) Render(ctx context.Context, d *diagram.Diagram, format string) (*Result, error) {
	start := time.Now()
	if format == "" {
		format = DefaultFormat
	}
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	work := d.Clone()
	if err := work.Validate(); err != nil {
		return nil, err
	}

	doc, err := json.Marshal(work.Document())
	if err != nil {
		return nil, fmt.Errorf("serialize diagram for cache key: %w", err)
	}
	res := &Result{Format: format, Hash: cache.Hash(doc)}
	key := r.Keyer.RenderKey(res.Hash, cache.RenderKeyOpts{Format: format})

	if data, hit, err := r.Cache.Get(ctx, key); err != nil {
		r.Logger.Warn("cache lookup failed", "key", key, "error", err)
	} else if hit {
		observability.Cache().OnCacheHit(ctx, "render")
		res.Output, res.Hit = data, true
		res.Duration = time.Since(start)
		r.Logger.Debug("render cache hit", "format", format, "hash", res.Hash[:12])
		return res, nil
	}
	observability.Cache().OnCacheMiss(ctx, "render")

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, format, len(work.Fields))
	switch format {
	case FormatSVG:
		res.Output = work.SVG()
	default:
		res.Output = []byte(work.Text())
	}
	res.Duration = time.Since(start)
	hooks.OnRenderComplete(ctx, format, res.Duration, nil)

	if err := r.Cache.Set(ctx, key, res.Output, cache.TTLArtifact); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "render", len(res.Output))
	}

	r.Logger.Debug("rendered diagram",
		"format", format,
		"fields", len(work.Fields),
		"bytes", len(res.Output),
		"duration", res.Duration)
	return res, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
