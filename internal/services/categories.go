package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/Cusiokhale/recipe-food-platform/internal/data"
	"github.com/Cusiokhale/recipe-food-platform/internal/exceptions"
	"github.com/Cusiokhale/recipe-food-platform/internal/repository"
)

type CategoryService struct {
	categories *repository.CategoryRepository
	recipes    *repository.RecipeRepository
	log        *logrus.Logger
}

func NewCategoryService(categories *repository.CategoryRepository, recipes *repository.RecipeRepository, log *logrus.Logger) *CategoryService {
	return &CategoryService{
		categories: categories,
		recipes:    recipes,
		log:        log,
	}
}

// Create enforces case-insensitive name uniqueness across all categories.
func (s *CategoryService) Create(ctx context.Context, input data.NewCategory) (data.Category, error) {
	if _, taken, err := s.categories.GetByNameFold(ctx, input.Name); err != nil {
		return data.Category{}, err
	} else if taken {
		return data.Category{}, exceptions.Conflict("category", input.Name)
	}
	return s.categories.Create(ctx, data.Category{
		Name:        input.Name,
		Description: input.Description,
	})
}

func (s *CategoryService) Get(ctx context.Context, id string) (data.Category, error) {
	return s.categories.Get(ctx, id)
}

func (s *CategoryService) List(ctx context.Context, filter data.CategoryFilter) (data.Page[data.Category], error) {
	return s.categories.List(ctx, filter)
}

// Update re-checks uniqueness only when the name actually changes, and the
// record being updated is excluded from the collision check so a category
// can keep or re-case its own name.
func (s *CategoryService) Update(ctx context.Context, id string, input data.CategoryInput) (data.Category, error) {
	current, err := s.categories.Get(ctx, id)
	if err != nil {
		return data.Category{}, err
	}
	if input.Name != nil && *input.Name != current.Name {
		existing, taken, err := s.categories.GetByNameFold(ctx, *input.Name)
		if err != nil {
			return data.Category{}, err
		}
		if taken && existing.Id != id {
			return data.Category{}, exceptions.Conflict("category", *input.Name)
		}
	}
	return s.categories.Update(ctx, id, func(c *data.Category) {
		if input.Name != nil {
			c.Name = *input.Name
		}
		if input.Description != nil {
			c.Description = *input.Description
		}
	})
}

// Delete pulls the category id out of every recipe's categoryIds before
// removing the record. The unlink passes are not atomic with the delete.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.categories.Get(ctx, id); err != nil {
		return err
	}
	linked, err := s.recipes.ListByCategory(ctx, id)
	if err != nil {
		return err
	}
	for _, recipe := range linked {
		_, err := s.recipes.Update(ctx, recipe.Id, func(r *data.Recipe) {
			index := slices.Index(r.CategoryIds, id)
			if index >= 0 {
				r.CategoryIds = slices.Delete(r.CategoryIds, index, index+1)
			}
		})
		if err != nil {
			return err
		}
	}
	existed, err := s.categories.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return exceptions.DeleteFailed("category", id)
	}
	s.log.WithFields(logrus.Fields{"categoryId": id, "unlinkedRecipes": len(linked)}).Info("Deleted category")
	return nil
}
