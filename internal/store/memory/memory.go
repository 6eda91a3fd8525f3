// Package memory holds an in-process implementation of the document store
// contract, used by tests and by the "memory" backend configuration.
package memory

import (
	"context"
	"sync"

	"github.com/Cusiokhale/recipe-food-platform/internal/store"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string]store.Document
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		collections: make(map[string]map[string]store.Document),
	}
}

func (s *Store) Get(_ context.Context, collection string, id string) (store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, nil
	}
	return cloneDoc(doc), nil
}

func (s *Store) Put(_ context.Context, collection string, id string, doc store.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs, ok := s.collections[collection]
	if !ok {
		docs = make(map[string]store.Document)
		s.collections[collection] = docs
	}
	docs[id] = cloneDoc(doc)
	return nil
}

func (s *Store) Update(_ context.Context, collection string, id string, doc store.Document) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.collections[collection]
	if _, ok := docs[id]; !ok {
		return false, nil
	}
	docs[id] = cloneDoc(doc)
	return true, nil
}

func (s *Store) Delete(_ context.Context, collection string, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.collections[collection]
	if _, ok := docs[id]; !ok {
		return false, nil
	}
	delete(docs, id)
	return true, nil
}

func (s *Store) Query(_ context.Context, collection string, query store.Query) ([]store.Document, error) {
	matched := s.scan(collection, query)
	store.SortDocuments(matched, query.Sort)
	window := store.Window(matched, query.Offset, query.Limit)
	results := make([]store.Document, 0, len(window))
	for _, doc := range window {
		results = append(results, cloneDoc(doc))
	}
	return results, nil
}

func (s *Store) Count(_ context.Context, collection string, query store.Query) (int, error) {
	return len(s.scan(collection, query)), nil
}

// cloneDoc copies the document including its slice values, so neither side
// of a Get/Put holds an alias into the other's backing arrays.
func cloneDoc(doc store.Document) store.Document {
	out := maps.Clone(doc)
	for field, value := range out {
		switch v := value.(type) {
		case []string:
			out[field] = slices.Clone(v)
		case []any:
			out[field] = slices.Clone(v)
		}
	}
	return out
}

func (s *Store) scan(collection string, query store.Query) []store.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matched []store.Document
	for _, doc := range s.collections[collection] {
		if store.Match(doc, query) {
			matched = append(matched, doc)
		}
	}
	return matched
}
