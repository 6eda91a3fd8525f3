// Package services holds the domain services: cross-entity invariants,
// ownership checks, relationship maintenance, cascading deletes and rating
// aggregation. Everything below runs one stateless pass per request against
// the store; partial cascade failures stay committed and surface upward.
package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/Cusiokhale/recipe-food-platform/internal/data"
	"github.com/Cusiokhale/recipe-food-platform/internal/exceptions"
	"github.com/Cusiokhale/recipe-food-platform/internal/repository"
)

type RecipeService struct {
	recipes     *repository.RecipeRepository
	ingredients *IngredientService
	reviews     *ReviewService
	log         *logrus.Logger
}

func NewRecipeService(recipes *repository.RecipeRepository, ingredients *IngredientService, reviews *ReviewService, log *logrus.Logger) *RecipeService {
	return &RecipeService{
		recipes:     recipes,
		ingredients: ingredients,
		reviews:     reviews,
		log:         log,
	}
}

// Create accepts category ids as given; referenced categories are not
// checked for existence here.
func (s *RecipeService) Create(ctx context.Context, ownerId string, input data.NewRecipe) (data.Recipe, error) {
	recipe := data.Recipe{
		Title:         input.Title,
		Description:   input.Description,
		Instructions:  input.Instructions,
		PrepTime:      input.PrepTime,
		CookTime:      input.CookTime,
		Servings:      input.Servings,
		Difficulty:    input.Difficulty,
		ImageUrl:      input.ImageUrl,
		OwnerId:       ownerId,
		CategoryIds:   dedupe(input.CategoryIds),
		IngredientIds: []string{},
	}
	created, err := s.recipes.Create(ctx, recipe)
	if err != nil {
		return created, err
	}
	s.log.WithFields(logrus.Fields{"recipeId": created.Id, "ownerId": ownerId}).Info("Created recipe")
	return created, nil
}

func (s *RecipeService) Get(ctx context.Context, id string) (data.Recipe, error) {
	return s.recipes.Get(ctx, id)
}

func (s *RecipeService) List(ctx context.Context, filter data.RecipeFilter) (data.Page[data.Recipe], error) {
	return s.recipes.List(ctx, filter)
}

func (s *RecipeService) Update(ctx context.Context, callerId string, id string, input data.RecipeInput) (data.Recipe, error) {
	current, err := s.recipes.Get(ctx, id)
	if err != nil {
		return data.Recipe{}, err
	}
	if current.OwnerId != callerId {
		return data.Recipe{}, exceptions.Forbidden("recipe", id)
	}
	return s.recipes.Update(ctx, id, func(r *data.Recipe) {
		if input.Title != nil {
			r.Title = *input.Title
		}
		if input.Description != nil {
			r.Description = *input.Description
		}
		if input.Instructions != nil {
			r.Instructions = *input.Instructions
		}
		if input.PrepTime != nil {
			r.PrepTime = *input.PrepTime
		}
		if input.CookTime != nil {
			r.CookTime = *input.CookTime
		}
		if input.Servings != nil {
			r.Servings = *input.Servings
		}
		if input.Difficulty != nil {
			r.Difficulty = *input.Difficulty
		}
		if input.ImageUrl != nil {
			r.ImageUrl = *input.ImageUrl
		}
		if input.CategoryIds != nil {
			r.CategoryIds = dedupe(*input.CategoryIds)
		}
	})
}

// Delete cascades to the recipe's ingredients and reviews before removing
// the recipe itself, so no child stays reachable by direct id lookup. The
// steps are not atomic; whatever completed before a failure stays committed.
func (s *RecipeService) Delete(ctx context.Context, callerId string, id string) error {
	current, err := s.recipes.Get(ctx, id)
	if err != nil {
		return err
	}
	if current.OwnerId != callerId {
		return exceptions.Forbidden("recipe", id)
	}
	if err := s.ingredients.DeleteByRecipe(ctx, id); err != nil {
		return err
	}
	if err := s.reviews.DeleteByRecipe(ctx, id); err != nil {
		return err
	}
	existed, err := s.recipes.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return exceptions.DeleteFailed("recipe", id)
	}
	s.log.WithFields(logrus.Fields{"recipeId": id}).Info("Deleted recipe with ingredients and reviews")
	return nil
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
