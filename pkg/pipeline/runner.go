package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mermaidgen/pkg/cache"
	"github.com/matzehuels/mermaidgen/pkg/graph"
	"github.com/matzehuels/mermaidgen/pkg/observability"
)

// Runner encapsulates document rendering with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store render results. Multiple goroutines can safely use the same
// Runner concurrently.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Render compiles a document to Mermaid text, consulting the cache first.
// The cache key is derived from the document's canonical JSON, so any
// change to the document yields a fresh entry.
func (r *Runner) Render(ctx context.Context, doc graph.Document, opts Options) (*Result, error) {
	data, err := graph.MarshalDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}

	result := &Result{DocHash: cache.Hash(data)}
	result.Stats.NodeCount = len(doc.Nodes)
	result.Stats.EdgeCount = len(doc.Edges)

	key := r.Keyer.RenderKey(result.DocHash)

	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "render")
			result.Text = string(cached)
			result.Cached = true
			r.Logger.Debug("render cache hit", "dialect", doc.Dialect, "hash", result.DocHash)
			return result, nil
		}
		observability.Cache().OnCacheMiss(ctx, "render")
	}

	start := time.Now()
	observability.Render().OnCompileStart(ctx, doc.Dialect)
	text, err := graph.Compile(doc)
	result.Stats.CompileTime = time.Since(start)
	observability.Render().OnCompileComplete(ctx, doc.Dialect, len(doc.Nodes), result.Stats.CompileTime, err)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	result.Text = text

	if err := r.Cache.Set(ctx, key, []byte(text), opts.ttl()); err != nil {
		// Cache failures degrade to uncached rendering.
		r.Logger.Warn("cache rendered text", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "render", len(text))
	}

	r.Logger.Info("rendered document",
		"dialect", doc.Dialect,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.CompileTime)

	return result, nil
}
