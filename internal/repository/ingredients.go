package repository

import (
	"context"
	"time"

	"github.com/Cusiokhale/recipe-food-platform/internal/data"
	"github.com/Cusiokhale/recipe-food-platform/internal/store"
)

const ingredientsCollection = "ingredients"

var ingredientSortFields = map[string]string{
	"name":      "name",
	"quantity":  "quantity",
	"createdAt": "createdAt",
	"updatedAt": "updatedAt",
}

const ingredientDefaultLimit = 50

type IngredientRepository struct {
	*Repository[data.Ingredient]
}

func NewIngredientRepository(s store.Store) *IngredientRepository {
	return &IngredientRepository{
		Repository: &Repository[data.Ingredient]{
			Store:      s,
			Collection: ingredientsCollection,
			Name:       "ingredient",
			ToDoc:      ingredientToDoc,
			FromDoc:    ingredientFromDoc,
			OnCreate: func(i *data.Ingredient, id string, now time.Time) {
				i.Id = id
				i.CreatedAt = now
				i.UpdatedAt = now
			},
			OnUpdate: func(i *data.Ingredient, now time.Time) {
				i.UpdatedAt = now
			},
			GetId: func(i data.Ingredient) string { return i.Id },
		},
	}
}

// List pushes the parent-recipe equality down; name search runs in memory.
func (ir *IngredientRepository) List(ctx context.Context, filter data.IngredientFilter) (data.Page[data.Ingredient], error) {
	query := store.Query{
		Equals: map[string]any{},
		Sort:   buildSort(filter.SortBy, filter.SortOrder, ingredientSortFields, store.Sort{Field: "name"}),
	}
	if filter.RecipeId != "" {
		query.Equals["recipeId"] = filter.RecipeId
	}
	var memory []func(data.Ingredient) bool
	if filter.Search != "" {
		search := filter.Search
		memory = append(memory, func(i data.Ingredient) bool {
			return containsFold(i.Name, search)
		})
	}
	limit := filter.Limit
	if limit < 1 {
		limit = ingredientDefaultLimit
	}
	return ir.Paginate(ctx, query, memory, filter.Page, limit)
}

// ListByRecipe returns every ingredient of a recipe, unpaginated, in child
// creation order. The recipe-deletion cascade walks this.
func (ir *IngredientRepository) ListByRecipe(ctx context.Context, recipeId string) ([]data.Ingredient, error) {
	return ir.QueryAll(ctx, store.Query{
		Equals: map[string]any{"recipeId": recipeId},
		Sort:   store.Sort{Field: "createdAt"},
	})
}

func ingredientToDoc(i data.Ingredient) store.Document {
	return store.Document{
		"id":        i.Id,
		"name":      i.Name,
		"unit":      i.Unit,
		"quantity":  i.Quantity,
		"recipeId":  i.RecipeId,
		"createdAt": i.CreatedAt,
		"updatedAt": i.UpdatedAt,
	}
}

func ingredientFromDoc(doc store.Document) data.Ingredient {
	var i data.Ingredient
	i.Id, _ = store.AsString(doc["id"])
	i.Name, _ = store.AsString(doc["name"])
	i.Unit, _ = store.AsString(doc["unit"])
	i.Quantity, _ = store.AsFloat(doc["quantity"])
	i.RecipeId, _ = store.AsString(doc["recipeId"])
	i.CreatedAt, _ = store.AsTime(doc["createdAt"])
	i.UpdatedAt, _ = store.AsTime(doc["updatedAt"])
	return i
}
