// Package repository layers typed CRUD and paginated queries on top of the
// document store. The generic Repository owns one collection; the entity
// repositories in this package decide which filter fields the store can
// evaluate and which have to be finished in memory.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Cusiokhale/recipe-food-platform/internal/data"
	"github.com/Cusiokhale/recipe-food-platform/internal/exceptions"
	"github.com/Cusiokhale/recipe-food-platform/internal/store"
)

type Repository[T any] struct {
	Store      store.Store
	Collection string
	// Name is the resource name used in error messages.
	Name     string
	ToDoc    func(T) store.Document
	FromDoc  func(store.Document) T
	OnCreate func(*T, string, time.Time)
	OnUpdate func(*T, time.Time)
	GetId    func(T) string
}

func (r *Repository[T]) Create(ctx context.Context, item T) (T, error) {
	gid, _ := uuid.NewUUID()
	now := time.Now().UTC()
	r.OnCreate(&item, gid.String(), now)
	if err := r.Store.Put(ctx, r.Collection, gid.String(), r.ToDoc(item)); err != nil {
		return item, err
	}
	return item, nil
}

func (r *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	doc, err := r.Store.Get(ctx, r.Collection, id)
	if err != nil {
		return zero, err
	}
	if doc == nil {
		return zero, exceptions.NotFound(r.Name, id)
	}
	return r.FromDoc(doc), nil
}

// Update applies patch to the current record and persists it with a fresh
// updatedAt stamp. The record id is never patched. The write goes through
// the store's guarded update, so a record deleted between the read and the
// write is not resurrected; that race surfaces as UpdateFailed.
func (r *Repository[T]) Update(ctx context.Context, id string, patch func(*T)) (T, error) {
	item, err := r.Get(ctx, id)
	if err != nil {
		return item, err
	}
	patch(&item)
	r.OnUpdate(&item, time.Now().UTC())
	existed, err := r.Store.Update(ctx, r.Collection, id, r.ToDoc(item))
	if err != nil {
		return item, err
	}
	if !existed {
		var zero T
		return zero, exceptions.UpdateFailed(r.Name, id)
	}
	return item, nil
}

// Delete reports whether a record existed to delete, so callers get
// idempotent semantics.
func (r *Repository[T]) Delete(ctx context.Context, id string) (bool, error) {
	return r.Store.Delete(ctx, r.Collection, id)
}

// Paginate runs the hybrid pagination algorithm. The query carries only the
// predicates the store can evaluate; memory holds the remaining filters.
//
// With no memory filters, both the count and the offset/limit slice are
// delegated to the store. With any memory filter present the store's
// offset/limit and count cannot be trusted: the full pushed result set is
// fetched in store sort order, the remaining filters run here, total is the
// post-filter count, and the page is sliced locally. Pages are 1-based; a
// page past the end returns empty items with correct totals.
func (r *Repository[T]) Paginate(ctx context.Context, query store.Query, memory []func(T) bool, page int, limit int) (data.Page[T], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if len(memory) == 0 {
		return r.paginateStore(ctx, query, page, limit)
	}
	query.Offset = 0
	query.Limit = 0
	docs, err := r.Store.Query(ctx, r.Collection, query)
	if err != nil {
		return data.Page[T]{}, err
	}
	kept := make([]T, 0, len(docs))
	for _, doc := range docs {
		item := r.FromDoc(doc)
		if matchesAll(item, memory) {
			kept = append(kept, item)
		}
	}
	total := len(kept)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	items := make([]T, 0, end-start)
	items = append(items, kept[start:end]...)
	return data.Page[T]{
		Data:       items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (r *Repository[T]) paginateStore(ctx context.Context, query store.Query, page int, limit int) (data.Page[T], error) {
	counted := query
	counted.Offset = 0
	counted.Limit = 0
	total, err := r.Store.Count(ctx, r.Collection, counted)
	if err != nil {
		return data.Page[T]{}, err
	}
	query.Offset = (page - 1) * limit
	query.Limit = limit
	docs, err := r.Store.Query(ctx, r.Collection, query)
	if err != nil {
		return data.Page[T]{}, err
	}
	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		items = append(items, r.FromDoc(doc))
	}
	return data.Page[T]{
		Data:       items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// QueryAll fetches every record matching the pushed predicates in sort
// order. The linear-scan lookups and cascade passes build on it.
func (r *Repository[T]) QueryAll(ctx context.Context, query store.Query) ([]T, error) {
	query.Offset = 0
	query.Limit = 0
	docs, err := r.Store.Query(ctx, r.Collection, query)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		items = append(items, r.FromDoc(doc))
	}
	return items, nil
}

func matchesAll[T any](item T, filters []func(T) bool) bool {
	for _, filter := range filters {
		if !filter(item) {
			return false
		}
	}
	return true
}

func totalPages(total int, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
