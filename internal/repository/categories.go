package repository

import (
	"context"
	"strings"
	"time"

	"github.com/Cusiokhale/recipe-food-platform/internal/data"
	"github.com/Cusiokhale/recipe-food-platform/internal/store"
)

const categoriesCollection = "categories"

var categorySortFields = map[string]string{
	"name":      "name",
	"createdAt": "createdAt",
	"updatedAt": "updatedAt",
}

const categoryDefaultLimit = 50

type CategoryRepository struct {
	*Repository[data.Category]
}

func NewCategoryRepository(s store.Store) *CategoryRepository {
	return &CategoryRepository{
		Repository: &Repository[data.Category]{
			Store:      s,
			Collection: categoriesCollection,
			Name:       "category",
			ToDoc:      categoryToDoc,
			FromDoc:    categoryFromDoc,
			OnCreate: func(c *data.Category, id string, now time.Time) {
				c.Id = id
				c.CreatedAt = now
				c.UpdatedAt = now
			},
			OnUpdate: func(c *data.Category, now time.Time) {
				c.UpdatedAt = now
			},
			GetId: func(c data.Category) string { return c.Id },
		},
	}
}

// List pushes nothing beyond the sort; name/description search runs in
// memory.
func (cr *CategoryRepository) List(ctx context.Context, filter data.CategoryFilter) (data.Page[data.Category], error) {
	query := store.Query{
		Sort: buildSort(filter.SortBy, filter.SortOrder, categorySortFields, store.Sort{Field: "name"}),
	}
	var memory []func(data.Category) bool
	if filter.Search != "" {
		search := filter.Search
		memory = append(memory, func(c data.Category) bool {
			return containsFold(c.Name, search) || containsFold(c.Description, search)
		})
	}
	limit := filter.Limit
	if limit < 1 {
		limit = categoryDefaultLimit
	}
	return cr.Paginate(ctx, query, memory, filter.Page, limit)
}

// GetByName is an exact-match lookup on the stored name.
func (cr *CategoryRepository) GetByName(ctx context.Context, name string) (data.Category, bool, error) {
	matches, err := cr.QueryAll(ctx, store.Query{
		Equals: map[string]any{"name": name},
	})
	if err != nil || len(matches) == 0 {
		return data.Category{}, false, err
	}
	return matches[0], true, nil
}

// GetByNameFold scans the whole collection for a case-insensitive name
// match. The store has no case-insensitive comparison operator, so this is
// a deliberate linear scan; a normalized-name index could replace it without
// touching callers.
func (cr *CategoryRepository) GetByNameFold(ctx context.Context, name string) (data.Category, bool, error) {
	categories, err := cr.QueryAll(ctx, store.Query{
		Sort: store.Sort{Field: "name"},
	})
	if err != nil {
		return data.Category{}, false, err
	}
	for _, category := range categories {
		if strings.EqualFold(category.Name, name) {
			return category, true, nil
		}
	}
	return data.Category{}, false, nil
}

func categoryToDoc(c data.Category) store.Document {
	return store.Document{
		"id":          c.Id,
		"name":        c.Name,
		"description": c.Description,
		"createdAt":   c.CreatedAt,
		"updatedAt":   c.UpdatedAt,
	}
}

func categoryFromDoc(doc store.Document) data.Category {
	var c data.Category
	c.Id, _ = store.AsString(doc["id"])
	c.Name, _ = store.AsString(doc["name"])
	c.Description, _ = store.AsString(doc["description"])
	c.CreatedAt, _ = store.AsTime(doc["createdAt"])
	c.UpdatedAt, _ = store.AsTime(doc["updatedAt"])
	return c
}
