// Package store persists diagrams by ID.
//
// Three backends implement [Store]:
//   - MemoryStore: process-local, the default for `protodiagram serve`
//   - FileStore: one JSON file per diagram under a directory
//   - MongoStore: a MongoDB collection, for multi-instance deployments
//
// IDs are validated with errors.ValidateID before any backend sees them.
// A missing diagram is reported as ErrNotFound (code NOT_FOUND).
package store

import (
	"context"
	"sort"
	"time"

	"github.com/matzehuels/protodiagram/pkg/diagram"
	"github.com/matzehuels/protodiagram/pkg/errors"
)

// ErrNotFound is returned when no diagram is stored under an ID.
var ErrNotFound = errors.New(errors.ErrCodeNotFound, "diagram not found")

// Record is a stored diagram.
type Record struct {
	ID        string           `json:"id" bson:"_id"`
	Document  diagram.Document `json:"document" bson:"document"`
	UpdatedAt time.Time        `json:"updated_at" bson:"updated_at"`
}

// Store is the interface for diagram storage backends.
type Store interface {
	// Get retrieves a diagram. Returns ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*Record, error)

	// Put creates or replaces a diagram and returns the stored record.
	Put(ctx context.Context, id string, doc diagram.Document) (*Record, error)

	// Delete removes a diagram. Returns ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error

	// List returns all stored IDs in ascending order.
	List(ctx context.Context) ([]string, error)

	Close() error
}

func newRecord(id string, doc diagram.Document) *Record {
	return &Record{ID: id, Document: doc, UpdatedAt: time.Now().UTC().Truncate(time.Millisecond)}
}

func sortedIDs(ids []string) []string {
	sort.Strings(ids)
	return ids
}
