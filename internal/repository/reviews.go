package repository

import (
	"context"
	"time"

	"github.com/Cusiokhale/recipe-food-platform/internal/data"
	"github.com/Cusiokhale/recipe-food-platform/internal/store"
)

const reviewsCollection = "reviews"

var reviewSortFields = map[string]string{
	"createdAt": "createdAt",
	"updatedAt": "updatedAt",
	"rating":    "rating",
}

const reviewDefaultLimit = 20

type ReviewRepository struct {
	*Repository[data.Review]
}

func NewReviewRepository(s store.Store) *ReviewRepository {
	return &ReviewRepository{
		Repository: &Repository[data.Review]{
			Store:      s,
			Collection: reviewsCollection,
			Name:       "review",
			ToDoc:      reviewToDoc,
			FromDoc:    reviewFromDoc,
			OnCreate: func(r *data.Review, id string, now time.Time) {
				r.Id = id
				r.CreatedAt = now
				r.UpdatedAt = now
			},
			OnUpdate: func(r *data.Review, now time.Time) {
				r.UpdatedAt = now
			},
			GetId: func(r data.Review) string { return r.Id },
		},
	}
}

// List is fully store-pushable: recipeId/authorId equality plus the rating
// range, so pagination always takes the fast path.
func (rr *ReviewRepository) List(ctx context.Context, filter data.ReviewFilter) (data.Page[data.Review], error) {
	query := store.Query{
		Equals: map[string]any{},
		Sort:   buildSort(filter.SortBy, filter.SortOrder, reviewSortFields, store.Sort{Field: "createdAt", Descending: true}),
	}
	if filter.RecipeId != "" {
		query.Equals["recipeId"] = filter.RecipeId
	}
	if filter.AuthorId != "" {
		query.Equals["authorId"] = filter.AuthorId
	}
	if filter.MinRating != nil || filter.MaxRating != nil {
		r := &store.Range{Field: "rating"}
		if filter.MinRating != nil {
			r.Min = *filter.MinRating
		}
		if filter.MaxRating != nil {
			r.Max = *filter.MaxRating
		}
		query.Range = r
	}
	limit := filter.Limit
	if limit < 1 {
		limit = reviewDefaultLimit
	}
	return rr.Paginate(ctx, query, nil, filter.Page, limit)
}

// GetByRecipeAndAuthor backs the one-review-per-author invariant.
func (rr *ReviewRepository) GetByRecipeAndAuthor(ctx context.Context, recipeId string, authorId string) (data.Review, bool, error) {
	matches, err := rr.QueryAll(ctx, store.Query{
		Equals: map[string]any{
			"recipeId": recipeId,
			"authorId": authorId,
		},
	})
	if err != nil || len(matches) == 0 {
		return data.Review{}, false, err
	}
	return matches[0], true, nil
}

// ListByRecipe returns every review of a recipe, unpaginated. Rating
// aggregation and the deletion cascade both walk it.
func (rr *ReviewRepository) ListByRecipe(ctx context.Context, recipeId string) ([]data.Review, error) {
	return rr.QueryAll(ctx, store.Query{
		Equals: map[string]any{"recipeId": recipeId},
		Sort:   store.Sort{Field: "createdAt", Descending: true},
	})
}

func reviewToDoc(r data.Review) store.Document {
	return store.Document{
		"id":         r.Id,
		"recipeId":   r.RecipeId,
		"authorId":   r.AuthorId,
		"authorName": r.AuthorName,
		"rating":     r.Rating,
		"comment":    r.Comment,
		"createdAt":  r.CreatedAt,
		"updatedAt":  r.UpdatedAt,
	}
}

func reviewFromDoc(doc store.Document) data.Review {
	var r data.Review
	r.Id, _ = store.AsString(doc["id"])
	r.RecipeId, _ = store.AsString(doc["recipeId"])
	r.AuthorId, _ = store.AsString(doc["authorId"])
	r.AuthorName, _ = store.AsString(doc["authorName"])
	r.Rating, _ = store.AsInt(doc["rating"])
	r.Comment, _ = store.AsString(doc["comment"])
	r.CreatedAt, _ = store.AsTime(doc["createdAt"])
	r.UpdatedAt, _ = store.AsTime(doc["updatedAt"])
	return r
}
