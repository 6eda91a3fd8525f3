package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/Cusiokhale/recipe-food-platform/internal/data"
	"github.com/Cusiokhale/recipe-food-platform/internal/exceptions"
	"github.com/Cusiokhale/recipe-food-platform/internal/repository"
)

type IngredientService struct {
	ingredients *repository.IngredientRepository
	recipes     *repository.RecipeRepository
	log         *logrus.Logger
}

func NewIngredientService(ingredients *repository.IngredientRepository, recipes *repository.RecipeRepository, log *logrus.Logger) *IngredientService {
	return &IngredientService{
		ingredients: ingredients,
		recipes:     recipes,
		log:         log,
	}
}

// Create requires the parent recipe to exist and appends the new id to the
// parent's ingredientIds. The append is a read-modify-write without
// concurrency control: two concurrent creates on one recipe can lose an
// append. Known limitation, kept for contract compatibility.
func (s *IngredientService) Create(ctx context.Context, input data.NewIngredient) (data.Ingredient, error) {
	if _, err := s.recipes.Get(ctx, input.RecipeId); err != nil {
		return data.Ingredient{}, err
	}
	created, err := s.ingredients.Create(ctx, data.Ingredient{
		Name:     input.Name,
		Unit:     input.Unit,
		Quantity: input.Quantity,
		RecipeId: input.RecipeId,
	})
	if err != nil {
		return created, err
	}
	_, err = s.recipes.Update(ctx, input.RecipeId, func(r *data.Recipe) {
		if !slices.Contains(r.IngredientIds, created.Id) {
			r.IngredientIds = append(r.IngredientIds, created.Id)
		}
	})
	if err != nil {
		// The ingredient record is already committed; no compensation.
		s.log.WithFields(logrus.Fields{"ingredientId": created.Id, "recipeId": input.RecipeId}).Warn("Created ingredient but failed to link it to its recipe")
		return created, err
	}
	return created, nil
}

func (s *IngredientService) Get(ctx context.Context, id string) (data.Ingredient, error) {
	return s.ingredients.Get(ctx, id)
}

func (s *IngredientService) List(ctx context.Context, filter data.IngredientFilter) (data.Page[data.Ingredient], error) {
	return s.ingredients.List(ctx, filter)
}

// Update carries no ownership or role check; any authenticated caller may
// mutate any ingredient.
func (s *IngredientService) Update(ctx context.Context, id string, input data.IngredientInput) (data.Ingredient, error) {
	return s.ingredients.Update(ctx, id, func(i *data.Ingredient) {
		if input.Name != nil {
			i.Name = *input.Name
		}
		if input.Unit != nil {
			i.Unit = *input.Unit
		}
		if input.Quantity != nil {
			i.Quantity = *input.Quantity
		}
	})
}

// Delete unlinks the id from the parent's ingredientIds, then deletes the
// record. A failure between the two steps leaves the pair inconsistent; no
// compensation is attempted.
func (s *IngredientService) Delete(ctx context.Context, id string) error {
	current, err := s.ingredients.Get(ctx, id)
	if err != nil {
		return err
	}
	_, err = s.recipes.Update(ctx, current.RecipeId, func(r *data.Recipe) {
		index := slices.Index(r.IngredientIds, id)
		if index >= 0 {
			r.IngredientIds = slices.Delete(r.IngredientIds, index, index+1)
		}
	})
	if err != nil {
		// A vanished parent is tolerated; the record still gets removed.
		var notFound *exceptions.NotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	existed, err := s.ingredients.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return exceptions.DeleteFailed("ingredient", id)
	}
	return nil
}

// DeleteByRecipe removes every ingredient of a recipe without touching the
// parent's ingredientIds. Only the recipe-deletion cascade calls it, when
// the parent itself is going away.
func (s *IngredientService) DeleteByRecipe(ctx context.Context, recipeId string) error {
	ingredients, err := s.ingredients.ListByRecipe(ctx, recipeId)
	if err != nil {
		return err
	}
	for _, ingredient := range ingredients {
		if _, err := s.ingredients.Delete(ctx, ingredient.Id); err != nil {
			return err
		}
	}
	return nil
}
