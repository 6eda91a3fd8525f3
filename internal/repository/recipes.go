package repository

import (
	"context"
	"time"

	"github.com/Cusiokhale/recipe-food-platform/internal/data"
	"github.com/Cusiokhale/recipe-food-platform/internal/store"
)

const recipesCollection = "recipes"

// Store-pushable recipe filters: categoryId membership, difficulty and
// ownerId equality, createdAt range, plus the sort. Substring search and the
// prepTime/cookTime/servings ranges are finished in memory.
var recipeSortFields = map[string]string{
	"createdAt":  "createdAt",
	"updatedAt":  "updatedAt",
	"title":      "title",
	"prepTime":   "prepTime",
	"cookTime":   "cookTime",
	"servings":   "servings",
	"difficulty": "difficulty",
}

const recipeDefaultLimit = 10

type RecipeRepository struct {
	*Repository[data.Recipe]
}

func NewRecipeRepository(s store.Store) *RecipeRepository {
	return &RecipeRepository{
		Repository: &Repository[data.Recipe]{
			Store:      s,
			Collection: recipesCollection,
			Name:       "recipe",
			ToDoc:      recipeToDoc,
			FromDoc:    recipeFromDoc,
			OnCreate: func(r *data.Recipe, id string, now time.Time) {
				r.Id = id
				r.CreatedAt = now
				r.UpdatedAt = now
			},
			OnUpdate: func(r *data.Recipe, now time.Time) {
				r.UpdatedAt = now
			},
			GetId: func(r data.Recipe) string { return r.Id },
		},
	}
}

func (rr *RecipeRepository) List(ctx context.Context, filter data.RecipeFilter) (data.Page[data.Recipe], error) {
	query, memory := buildRecipeQuery(filter)
	limit := filter.Limit
	if limit < 1 {
		limit = recipeDefaultLimit
	}
	return rr.Paginate(ctx, query, memory, filter.Page, limit)
}

// ListByCategory returns every recipe whose categoryIds holds categoryId,
// unpaginated. The category-deletion unlink pass walks this.
func (rr *RecipeRepository) ListByCategory(ctx context.Context, categoryId string) ([]data.Recipe, error) {
	return rr.QueryAll(ctx, store.Query{
		Contains: map[string]any{"categoryIds": categoryId},
		Sort:     store.Sort{Field: "createdAt", Descending: true},
	})
}

func buildRecipeQuery(filter data.RecipeFilter) (store.Query, []func(data.Recipe) bool) {
	query := store.Query{
		Equals:   map[string]any{},
		Contains: map[string]any{},
		Sort:     buildSort(filter.SortBy, filter.SortOrder, recipeSortFields, store.Sort{Field: "createdAt", Descending: true}),
	}
	if filter.Difficulty != "" {
		query.Equals["difficulty"] = filter.Difficulty
	}
	if filter.OwnerId != "" {
		query.Equals["ownerId"] = filter.OwnerId
	}
	if filter.CategoryId != "" {
		query.Contains["categoryIds"] = filter.CategoryId
	}
	if filter.CreatedAfter != nil || filter.CreatedBefore != nil {
		r := &store.Range{Field: "createdAt"}
		if filter.CreatedAfter != nil {
			r.Min = *filter.CreatedAfter
		}
		if filter.CreatedBefore != nil {
			r.Max = *filter.CreatedBefore
		}
		query.Range = r
	}

	var memory []func(data.Recipe) bool
	if filter.Search != "" {
		search := filter.Search
		memory = append(memory, func(r data.Recipe) bool {
			return containsFold(r.Title, search) || containsFold(r.Description, search)
		})
	}
	if filter.MinPrepTime != nil || filter.MaxPrepTime != nil {
		min, max := filter.MinPrepTime, filter.MaxPrepTime
		memory = append(memory, func(r data.Recipe) bool {
			return inIntRange(r.PrepTime, min, max)
		})
	}
	if filter.MinCookTime != nil || filter.MaxCookTime != nil {
		min, max := filter.MinCookTime, filter.MaxCookTime
		memory = append(memory, func(r data.Recipe) bool {
			return inIntRange(r.CookTime, min, max)
		})
	}
	if filter.MinServings != nil || filter.MaxServings != nil {
		min, max := filter.MinServings, filter.MaxServings
		memory = append(memory, func(r data.Recipe) bool {
			return inIntRange(r.Servings, min, max)
		})
	}
	return query, memory
}

func recipeToDoc(r data.Recipe) store.Document {
	return store.Document{
		"id":            r.Id,
		"title":         r.Title,
		"description":   r.Description,
		"instructions":  r.Instructions,
		"prepTime":      r.PrepTime,
		"cookTime":      r.CookTime,
		"servings":      r.Servings,
		"difficulty":    r.Difficulty,
		"imageUrl":      r.ImageUrl,
		"ownerId":       r.OwnerId,
		"categoryIds":   r.CategoryIds,
		"ingredientIds": r.IngredientIds,
		"createdAt":     r.CreatedAt,
		"updatedAt":     r.UpdatedAt,
	}
}

func recipeFromDoc(doc store.Document) data.Recipe {
	var r data.Recipe
	r.Id, _ = store.AsString(doc["id"])
	r.Title, _ = store.AsString(doc["title"])
	r.Description, _ = store.AsString(doc["description"])
	r.Instructions, _ = store.AsString(doc["instructions"])
	r.PrepTime, _ = store.AsInt(doc["prepTime"])
	r.CookTime, _ = store.AsInt(doc["cookTime"])
	r.Servings, _ = store.AsInt(doc["servings"])
	r.Difficulty, _ = store.AsString(doc["difficulty"])
	r.ImageUrl, _ = store.AsString(doc["imageUrl"])
	r.OwnerId, _ = store.AsString(doc["ownerId"])
	r.CategoryIds, _ = store.AsStringSlice(doc["categoryIds"])
	r.IngredientIds, _ = store.AsStringSlice(doc["ingredientIds"])
	r.CreatedAt, _ = store.AsTime(doc["createdAt"])
	r.UpdatedAt, _ = store.AsTime(doc["updatedAt"])
	return r
}
