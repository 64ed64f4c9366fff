// Package pkg provides the core libraries for Mermaidgen diagram generation.
//
// # Overview
//
// Mermaidgen compiles structured diagram documents into Mermaid text. The
// pkg directory is organized into four main areas:
//
//  1. [mermaid] - Domain logic (graph building, validation, dialect renderers)
//  2. [graph] - Serialization (document format, dialect dispatch)
//  3. [pipeline] - Orchestration (decode → compile → cache)
//  4. [cache], [store] - Infrastructure (render caching, diagram persistence)
//
// # Architecture
//
// The typical data flow through Mermaidgen:
//
//	Document (JSON)
//	       ↓
//	  [graph] package (decode + dialect dispatch)
//	       ↓
//	  [mermaid] builders (validate, allocate ids)
//	       ↓
//	  dialect renderers (flowchart, classdiagram, er)
//	       ↓
//	  Mermaid text output
//
// # Quick Start
//
// Build a flowchart directly:
//
//	import (
//	    "github.com/matzehuels/mermaidgen/pkg/mermaid/flowchart"
//	)
//
//	b := flowchart.NewBuilder(flowchart.Config{})
//	start, _ := b.AddNode(flowchart.NewNode().Label("Start"))
//	end, _ := b.AddNode(flowchart.NewNode().Label("End"))
//	_ = b.AddEdge(flowchart.NewEdge().Source(start).Destination(end).Arrow(flowchart.ArrowNormal))
//	text := b.Build().Render()
//
// Or compile a serialized document:
//
//	doc, _ := graph.ReadDocumentFile("flow.json")
//	text, _ := graph.Compile(doc)
//
// # Main Packages
//
// ## Core Domain Logic
//
// [mermaid] - Shared diagram primitives: identifier allocation, graph
// building with validation, directions, themes, layouts, and label escaping.
//
// [mermaid/flowchart] - Flowchart dialect with 46 node shapes and four
// arrow heads.
//
// [mermaid/classdiagram] - Class diagram dialect with member lists and
// relationship arrows (association, inheritance, aggregation, composition).
//
// [mermaid/er] - Entity-relationship dialect with crow's-foot cardinalities.
//
// ## Serialization
//
// [graph] - The canonical JSON document format plus Compile, which
// dispatches a document to the right dialect builder.
//
// ## Infrastructure
//
// [pipeline] - Complete render pipeline (decode → compile → cache) used by
// CLI and API. Ensures consistent behavior across all entry points.
//
// [cache] - Render result caching keyed by document content hash. File,
// Redis, and null backends.
//
// [store] - Persistence for saved diagrams. Memory and MongoDB backends.
//
// [observability] - Hook interfaces for monitoring compiles and cache
// behavior without coupling to a metrics system.
//
// [errors] - Structured error codes shared by the CLI and API.
//
// [buildinfo] - Build-time version information injected via ldflags.
package pkg
