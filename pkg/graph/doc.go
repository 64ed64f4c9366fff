// Package graph provides serialization types for diagram descriptions.
//
// This package defines the canonical wire format for mermaidgen's diagram
// data, used for JSON files, API requests, storage, and caching.
//
// # Architecture
//
// The package sits at the serialization boundary between the typed builders
// and external formats:
//
//   - [Document], [Node], [Edge]: Serialization types (this package)
//   - pkg/mermaid and its dialect subpackages: Typed builder representation
//
// Use [Compile] to go from a Document to rendered Mermaid text; the typed
// builders perform all validation along the way.
//
// # Document Format
//
// Documents use a simple JSON format where a node's position in the nodes
// array is its identifier:
//
//	{
//	  "dialect": "flowchart",
//	  "nodes": [{"label": "Start"}, {"label": "End"}],
//	  "edges": [{"from": 0, "to": 1, "arrow": "normal"}]
//	}
//
// Common operations:
//
//	doc, _ := graph.ReadDocumentFile("flow.json")  // File → Document
//	text, _ := graph.Compile(doc)                  // Document → Mermaid text
//	data, _ := graph.MarshalDocument(doc)          // Document → []byte
//	parsed, _ := graph.UnmarshalDocument(data)     // []byte → Document
//
// # Dialects
//
// The dialect field selects the grammar and which node/edge fields apply:
//
//	graph.DialectFlowchart  // "flowchart": node shape, edge arrow
//	graph.DialectClass      // "class": node members, edge arrow
//	graph.DialectER         // "er": edge cardinality / left / right
//
// # Concurrency
//
// All functions are safe for concurrent use; Document values must not be
// mutated while being compiled or serialized.
package graph
