// Package store provides persistence for saved diagrams.
//
// This package defines an interface for diagram storage with
// implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for production deployments
//
// # Architecture
//
// A stored Diagram couples a source document with the Mermaid text it
// compiled to, so a saved diagram can be served without recompiling.
// The Store interface supports:
//   - Create/Get/Update/Delete operations
//   - Listing all stored diagrams
//
// # Usage
//
// Create a store:
//
//	// Development
//	store := store.NewMemoryStore()
//
//	// Production
//	store, err := store.NewMongoStore(ctx, store.MongoOptions{
//	    URI:      "mongodb://localhost:27017",
//	    Database: "mermaidgen",
//	})
//
// Save and retrieve diagrams:
//
//	d := store.NewDiagram(doc, text)
//	if err := store.Create(ctx, d); err != nil {
//	    return err
//	}
//
//	d, err := store.Get(ctx, id)
//	if errors.Is(err, store.ErrNotFound) {
//	    // No diagram with that id
//	}
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/mermaidgen/pkg/graph"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a diagram does not exist.
	ErrNotFound = errors.New("diagram not found")
)

// Diagram is a stored diagram: the source document plus the Mermaid
// text it rendered to at save time.
type Diagram struct {
	ID        string         `json:"id" bson:"_id"`
	Document  graph.Document `json:"document" bson:"document"`
	Text      string         `json:"text" bson:"text"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
}

// Store is the interface for diagram storage backends.
type Store interface {
	// Create stores a new diagram.
	Create(ctx context.Context, d *Diagram) error

	// Get retrieves a diagram by ID.
	// Returns ErrNotFound if no diagram has that ID.
	Get(ctx context.Context, id string) (*Diagram, error)

	// Update replaces an existing diagram's document and text.
	// Returns ErrNotFound if no diagram has that ID.
	Update(ctx context.Context, d *Diagram) error

	// Delete removes a diagram.
	// Returns ErrNotFound if no diagram has that ID.
	Delete(ctx context.Context, id string) error

	// List returns all stored diagrams, most recently updated first.
	List(ctx context.Context) ([]*Diagram, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// NewDiagram creates a diagram record with a fresh UUID and timestamps.
func NewDiagram(doc graph.Document, text string) *Diagram {
	now := time.Now().UTC()
	return &Diagram{
		ID:        uuid.NewString(),
		Document:  doc,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
