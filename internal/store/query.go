package store

import (
	"golang.org/x/exp/slices"
)

// Match evaluates the predicate part of a query against a single document.
// The memory store runs it over every document in the collection.
func Match(doc Document, query Query) bool {
	for field, want := range query.Equals {
		if !Equal(doc[field], want) {
			return false
		}
	}
	for field, want := range query.Contains {
		values, ok := AsStringSlice(doc[field])
		if !ok {
			return false
		}
		needle, ok := AsString(want)
		if !ok || !slices.Contains(values, needle) {
			return false
		}
	}
	if query.Range != nil {
		value, ok := doc[query.Range.Field]
		if !ok {
			return false
		}
		if query.Range.Min != nil {
			order, ok := Compare(value, query.Range.Min)
			if !ok || order < 0 {
				return false
			}
		}
		if query.Range.Max != nil {
			order, ok := Compare(value, query.Range.Max)
			if !ok || order > 0 {
				return false
			}
		}
	}
	return true
}

// SortDocuments orders docs by the sort field, stably so equal keys keep
// their relative order. Documents missing the field sort last.
func SortDocuments(docs []Document, sort Sort) {
	if sort.Field == "" {
		return
	}
	slices.SortStableFunc(docs, func(a, b Document) int {
		av, aok := a[sort.Field]
		bv, bok := b[sort.Field]
		if !aok || !bok {
			switch {
			case aok:
				return -1
			case bok:
				return 1
			}
			return 0
		}
		order, comparable := Compare(av, bv)
		if !comparable {
			return 0
		}
		if sort.Descending {
			return -order
		}
		return order
	})
}

// Window applies offset/limit semantics to an already sorted result set.
func Window(docs []Document, offset int, limit int) []Document {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(docs) {
		return []Document{}
	}
	docs = docs[offset:]
	if limit > 0 && limit < len(docs) {
		docs = docs[:limit]
	}
	return docs
}
