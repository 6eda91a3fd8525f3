// Package store defines the document store contract shared by the in-memory
// and DynamoDB backed implementations. A collection is a flat namespace of
// documents addressed by id; queries are a conjunction of equality and
// array-membership predicates, at most one range on a single field, and a
// single-field sort with optional offset/limit.
package store

import "context"

// Document is the stored representation of an entity. Values are scalars
// (string, numeric, time.Time) or string slices.
type Document map[string]any

type Sort struct {
	Field      string
	Descending bool
}

// Range is an inclusive bound pair on a single field. A nil end leaves that
// side open.
type Range struct {
	Field string
	Min   any
	Max   any
}

type Query struct {
	Equals   map[string]any
	Contains map[string]any
	Range    *Range
	Sort     Sort
	Offset   int
	// Limit caps the number of returned documents; zero or negative means
	// unbounded.
	Limit int
}

type Store interface {
	// Get returns the document, or nil when no document exists under id.
	Get(ctx context.Context, collection string, id string) (Document, error)
	Put(ctx context.Context, collection string, id string, doc Document) error
	// Update writes doc only when a document already exists under id,
	// reporting whether it did. A delete racing between a caller's read and
	// its Update loses: the write is rejected instead of re-creating the
	// document.
	Update(ctx context.Context, collection string, id string, doc Document) (bool, error)
	// Delete reports whether a document existed to delete.
	Delete(ctx context.Context, collection string, id string) (bool, error)
	Query(ctx context.Context, collection string, query Query) ([]Document, error)
	Count(ctx context.Context, collection string, query Query) (int, error)
}
