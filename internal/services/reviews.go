package services

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/Cusiokhale/recipe-food-platform/internal/data"
	"github.com/Cusiokhale/recipe-food-platform/internal/exceptions"
	"github.com/Cusiokhale/recipe-food-platform/internal/repository"
)

type ReviewService struct {
	reviews *repository.ReviewRepository
	recipes *repository.RecipeRepository
	log     *logrus.Logger
}

func NewReviewService(reviews *repository.ReviewRepository, recipes *repository.RecipeRepository, log *logrus.Logger) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		recipes: recipes,
		log:     log,
	}
}

// Create requires the parent recipe to exist and rejects a second review
// from the same author on the same recipe. The author's display name is
// captured once here. The recipe itself is never mutated.
func (s *ReviewService) Create(ctx context.Context, authorId string, authorName string, input data.NewReview) (data.Review, error) {
	if _, err := s.recipes.Get(ctx, input.RecipeId); err != nil {
		return data.Review{}, err
	}
	if _, exists, err := s.reviews.GetByRecipeAndAuthor(ctx, input.RecipeId, authorId); err != nil {
		return data.Review{}, err
	} else if exists {
		return data.Review{}, exceptions.Conflict("review", input.RecipeId)
	}
	return s.reviews.Create(ctx, data.Review{
		RecipeId:   input.RecipeId,
		AuthorId:   authorId,
		AuthorName: authorName,
		Rating:     input.Rating,
		Comment:    input.Comment,
	})
}

func (s *ReviewService) Get(ctx context.Context, id string) (data.Review, error) {
	return s.reviews.Get(ctx, id)
}

func (s *ReviewService) List(ctx context.Context, filter data.ReviewFilter) (data.Page[data.Review], error) {
	return s.reviews.List(ctx, filter)
}

func (s *ReviewService) Update(ctx context.Context, callerId string, id string, input data.ReviewInput) (data.Review, error) {
	current, err := s.reviews.Get(ctx, id)
	if err != nil {
		return data.Review{}, err
	}
	if current.AuthorId != callerId {
		return data.Review{}, exceptions.Forbidden("review", id)
	}
	return s.reviews.Update(ctx, id, func(r *data.Review) {
		if input.Rating != nil {
			r.Rating = *input.Rating
		}
		if input.Comment != nil {
			r.Comment = *input.Comment
		}
	})
}

// Delete permits the author, or any caller holding the admin role.
func (s *ReviewService) Delete(ctx context.Context, callerId string, admin bool, id string) error {
	current, err := s.reviews.Get(ctx, id)
	if err != nil {
		return err
	}
	if current.AuthorId != callerId && !admin {
		return exceptions.Forbidden("review", id)
	}
	existed, err := s.reviews.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return exceptions.DeleteFailed("review", id)
	}
	return nil
}

// DeleteByRecipe removes every review of a recipe. Only the recipe-deletion
// cascade calls it.
func (s *ReviewService) DeleteByRecipe(ctx context.Context, recipeId string) error {
	reviews, err := s.reviews.ListByRecipe(ctx, recipeId)
	if err != nil {
		return err
	}
	for _, review := range reviews {
		if _, err := s.reviews.Delete(ctx, review.Id); err != nil {
			return err
		}
	}
	return nil
}

// Rating averages every review of a recipe, rounded half away from zero at
// the tenths digit. No reviews yields a zero summary, not an error.
func (s *ReviewService) Rating(ctx context.Context, recipeId string) (data.RatingSummary, error) {
	reviews, err := s.reviews.ListByRecipe(ctx, recipeId)
	if err != nil {
		return data.RatingSummary{}, err
	}
	if len(reviews) == 0 {
		return data.RatingSummary{}, nil
	}
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	average := float64(sum) / float64(len(reviews))
	return data.RatingSummary{
		Average: math.Round(average*10) / 10,
		Count:   len(reviews),
	}, nil
}
