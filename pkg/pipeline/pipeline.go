// Package pipeline provides the decode → compile → cache flow for mermaidgen.
//
// This package implements the render pipeline shared by the CLI and the HTTP
// API. By centralizing this logic, we ensure consistent behavior across all
// entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Compile: build the typed diagram from a graph.Document and render it
//  2. Cache: store the rendered text keyed by the document's content hash
//
// Rendering is deterministic, so the cache never serves stale text: the same
// document always compiles to the same bytes.
//
// # Usage
//
// Create a Runner and render a document:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Render(ctx, doc, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.Text)
package pipeline

import "time"

// DefaultTTL is the default cache expiry for rendered text.
const DefaultTTL = 24 * time.Hour

// Options controls a single render.
type Options struct {
	// Refresh bypasses the cache and overwrites the stored entry.
	Refresh bool
	// TTL overrides DefaultTTL when positive.
	TTL time.Duration
}

func (o Options) ttl() time.Duration {
	if o.TTL > 0 {
		return o.TTL
	}
	return DefaultTTL
}

// Result is the outcome of one render.
type Result struct {
	// Text is the rendered Mermaid source.
	Text string
	// DocHash is the SHA-256 hash of the document's canonical JSON,
	// usable as a stable reference to this exact document.
	DocHash string
	// Cached reports whether Text was served from the cache.
	Cached bool
	// Stats describes the work performed.
	Stats Stats
}

// Stats captures timing and size information for one render.
type Stats struct {
	NodeCount   int
	EdgeCount   int
	CompileTime time.Duration
}
