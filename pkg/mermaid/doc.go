// Package mermaid provides the shared building blocks for constructing
// Mermaid diagrams programmatically and rendering them as text.
//
// This package contains the dialect-independent pieces: node identifiers,
// the generic append-only graph, validation errors, and the enumerations
// shared by the diagram headers (direction, layout engine, theme, look).
// The dialect packages (flowchart, classdiagram, er) build on top of it.
//
// # Construction Protocol
//
// All dialects follow the same protocol:
//
//  1. Create a dialect builder.
//  2. Add nodes via node builders; each successful append returns a NodeID.
//  3. Add edges via edge builders referencing those NodeIDs.
//  4. Finalize the builder into an immutable Diagram.
//  5. Render the Diagram to Mermaid text.
//
// Validation is fail-fast: a node or edge that is missing a required field,
// or an edge that references a node the builder never produced, is rejected
// at the append call and never admitted. Because of this, rendering a
// finalized Diagram cannot fail.
//
// # Identifiers
//
// NodeIDs are dense, zero-based integers assigned in insertion order and
// scoped to a single builder. They render as "v0", "v1", and so on. IDs
// from one builder carry no meaning in another.
//
// # Concurrency
//
// Builders are exclusively owned by one caller and provide no locking.
// Finalized Diagram values are immutable and safe for concurrent reads.
package mermaid
