package services

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cusiokhale/recipe-food-platform/internal/data"
	"github.com/Cusiokhale/recipe-food-platform/internal/exceptions"
	"github.com/Cusiokhale/recipe-food-platform/internal/repository"
	"github.com/Cusiokhale/recipe-food-platform/internal/store/memory"
)

type fixture struct {
	recipes     *RecipeService
	ingredients *IngredientService
	categories  *CategoryService
	reviews     *ReviewService
}

func newFixture() fixture {
	log := logrus.New()
	log.SetOutput(io.Discard)
	backend := memory.New()
	recipeRepo := repository.NewRecipeRepository(backend)
	ingredientRepo := repository.NewIngredientRepository(backend)
	categoryRepo := repository.NewCategoryRepository(backend)
	reviewRepo := repository.NewReviewRepository(backend)
	ingredients := NewIngredientService(ingredientRepo, recipeRepo, log)
	reviews := NewReviewService(reviewRepo, recipeRepo, log)
	return fixture{
		recipes:     NewRecipeService(recipeRepo, ingredients, reviews, log),
		ingredients: ingredients,
		categories:  NewCategoryService(categoryRepo, recipeRepo, log),
		reviews:     reviews,
	}
}

func (f fixture) createRecipe(t *testing.T, ownerId string) data.Recipe {
	t.Helper()
	recipe, err := f.recipes.Create(context.TODO(), ownerId, data.NewRecipe{
		Title:        "Shakshuka",
		Instructions: "Simmer, crack eggs, cover.",
		PrepTime:     10,
		CookTime:     20,
		Servings:     2,
		Difficulty:   data.DifficultyEasy,
	})
	require.NoError(t, err)
	return recipe
}

func TestRecipeUpdateByNonOwnerIsForbidden(t *testing.T) {
	f := newFixture()
	recipe := f.createRecipe(t, "chef-1")

	title := "Hijacked"
	_, err := f.recipes.Update(context.TODO(), "intruder", recipe.Id, data.RecipeInput{Title: &title})
	var forbidden *exceptions.ForbiddenError
	require.ErrorAs(t, err, &forbidden)

	unchanged, err := f.recipes.Get(context.TODO(), recipe.Id)
	require.NoError(t, err)
	assert.Equal(t, "Shakshuka", unchanged.Title)
}

func TestRecipeDeleteByNonOwnerIsForbidden(t *testing.T) {
	f := newFixture()
	recipe := f.createRecipe(t, "chef-1")

	err := f.recipes.Delete(context.TODO(), "intruder", recipe.Id)
	var forbidden *exceptions.ForbiddenError
	require.ErrorAs(t, err, &forbidden)

	_, err = f.recipes.Get(context.TODO(), recipe.Id)
	require.NoError(t, err)
}

func TestRecipeDeleteCascades(t *testing.T) {
	f := newFixture()
	recipe := f.createRecipe(t, "chef-1")

	var ingredientIds []string
	for _, name := range []string{"Eggs", "Tomatoes"} {
		ingredient, err := f.ingredients.Create(context.TODO(), data.NewIngredient{
			Name: name, Unit: "g", Quantity: 100, RecipeId: recipe.Id,
		})
		require.NoError(t, err)
		ingredientIds = append(ingredientIds, ingredient.Id)
	}
	var reviewIds []string
	for _, authorId := range []string{"u-1", "u-2", "u-3"} {
		review, err := f.reviews.Create(context.TODO(), authorId, "", data.NewReview{
			RecipeId: recipe.Id, Rating: 4,
		})
		require.NoError(t, err)
		reviewIds = append(reviewIds, review.Id)
	}

	require.NoError(t, f.recipes.Delete(context.TODO(), "chef-1", recipe.Id))

	var notFound *exceptions.NotFoundError
	_, err := f.recipes.Get(context.TODO(), recipe.Id)
	require.ErrorAs(t, err, &notFound)
	for _, id := range ingredientIds {
		_, err := f.ingredients.Get(context.TODO(), id)
		assert.ErrorAs(t, err, &notFound)
	}
	for _, id := range reviewIds {
		_, err := f.reviews.Get(context.TODO(), id)
		assert.ErrorAs(t, err, &notFound)
	}
	page, err := f.reviews.List(context.TODO(), data.ReviewFilter{RecipeId: recipe.Id})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
}

func TestIngredientCreateRequiresParentRecipe(t *testing.T) {
	f := newFixture()
	_, err := f.ingredients.Create(context.TODO(), data.NewIngredient{
		Name: "Eggs", Quantity: 2, RecipeId: "ghost",
	})
	var notFound *exceptions.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestIngredientCreateLinksParent(t *testing.T) {
	f := newFixture()
	recipe := f.createRecipe(t, "chef-1")

	first, err := f.ingredients.Create(context.TODO(), data.NewIngredient{
		Name: "Eggs", Quantity: 2, RecipeId: recipe.Id,
	})
	require.NoError(t, err)
	second, err := f.ingredients.Create(context.TODO(), data.NewIngredient{
		Name: "Tomatoes", Unit: "g", Quantity: 400, RecipeId: recipe.Id,
	})
	require.NoError(t, err)

	parent, err := f.recipes.Get(context.TODO(), recipe.Id)
	require.NoError(t, err)
	// creation order is preserved
	assert.Equal(t, []string{first.Id, second.Id}, parent.IngredientIds)
}

func TestIngredientDeleteUnlinksParent(t *testing.T) {
	f := newFixture()
	recipe := f.createRecipe(t, "chef-1")
	ingredient, err := f.ingredients.Create(context.TODO(), data.NewIngredient{
		Name: "Eggs", Quantity: 2, RecipeId: recipe.Id,
	})
	require.NoError(t, err)

	require.NoError(t, f.ingredients.Delete(context.TODO(), ingredient.Id))

	parent, err := f.recipes.Get(context.TODO(), recipe.Id)
	require.NoError(t, err)
	assert.Empty(t, parent.IngredientIds)

	var notFound *exceptions.NotFoundError
	_, err = f.ingredients.Get(context.TODO(), ingredient.Id)
	require.ErrorAs(t, err, &notFound)
}

func TestCategoryNameUniquenessIsCaseInsensitive(t *testing.T) {
	f := newFixture()
	_, err := f.categories.Create(context.TODO(), data.NewCategory{Name: "Dessert"})
	require.NoError(t, err)

	_, err = f.categories.Create(context.TODO(), data.NewCategory{Name: "dessert"})
	var conflict *exceptions.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestCategoryUpdateCollisionChecks(t *testing.T) {
	f := newFixture()
	dessert, err := f.categories.Create(context.TODO(), data.NewCategory{Name: "Dessert"})
	require.NoError(t, err)
	_, err = f.categories.Create(context.TODO(), data.NewCategory{Name: "Breakfast"})
	require.NoError(t, err)

	// renaming onto another category's name fails, any case
	name := "bREAKFAST"
	_, err = f.categories.Update(context.TODO(), dessert.Id, data.CategoryInput{Name: &name})
	var conflict *exceptions.ConflictError
	require.ErrorAs(t, err, &conflict)

	// keeping the own name succeeds
	same := "Dessert"
	_, err = f.categories.Update(context.TODO(), dessert.Id, data.CategoryInput{Name: &same})
	require.NoError(t, err)

	// re-casing the own name succeeds too
	recased := "DESSERT"
	updated, err := f.categories.Update(context.TODO(), dessert.Id, data.CategoryInput{Name: &recased})
	require.NoError(t, err)
	assert.Equal(t, "DESSERT", updated.Name)
}

func TestCategoryDeleteUnlinksRecipes(t *testing.T) {
	f := newFixture()
	category, err := f.categories.Create(context.TODO(), data.NewCategory{Name: "Dinner"})
	require.NoError(t, err)
	recipe, err := f.recipes.Create(context.TODO(), "chef-1", data.NewRecipe{
		Title:        "Shakshuka",
		Instructions: "Simmer.",
		Servings:     2,
		Difficulty:   data.DifficultyEasy,
		CategoryIds:  []string{category.Id, "other"},
	})
	require.NoError(t, err)

	require.NoError(t, f.categories.Delete(context.TODO(), category.Id))

	updated, err := f.recipes.Get(context.TODO(), recipe.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"other"}, updated.CategoryIds)
}

func TestReviewCreateRequiresParentRecipe(t *testing.T) {
	f := newFixture()
	_, err := f.reviews.Create(context.TODO(), "u-1", "", data.NewReview{RecipeId: "ghost", Rating: 5})
	var notFound *exceptions.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestReviewDuplicateAuthorConflicts(t *testing.T) {
	f := newFixture()
	recipe := f.createRecipe(t, "chef-1")
	_, err := f.reviews.Create(context.TODO(), "u-1", "Pat", data.NewReview{RecipeId: recipe.Id, Rating: 5})
	require.NoError(t, err)

	_, err = f.reviews.Create(context.TODO(), "u-1", "Pat", data.NewReview{RecipeId: recipe.Id, Rating: 2, Comment: "changed my mind"})
	var conflict *exceptions.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestReviewMutationAuthorization(t *testing.T) {
	f := newFixture()
	recipe := f.createRecipe(t, "chef-1")
	review, err := f.reviews.Create(context.TODO(), "u-1", "Pat", data.NewReview{RecipeId: recipe.Id, Rating: 5})
	require.NoError(t, err)

	rating := 1
	_, err = f.reviews.Update(context.TODO(), "u-2", review.Id, data.ReviewInput{Rating: &rating})
	var forbidden *exceptions.ForbiddenError
	require.ErrorAs(t, err, &forbidden)

	err = f.reviews.Delete(context.TODO(), "u-2", false, review.Id)
	require.ErrorAs(t, err, &forbidden)

	// admin override applies to delete only
	err = f.reviews.Delete(context.TODO(), "u-2", true, review.Id)
	require.NoError(t, err)
}

func TestRatingAggregation(t *testing.T) {
	f := newFixture()
	recipe := f.createRecipe(t, "chef-1")

	summary, err := f.reviews.Rating(context.TODO(), recipe.Id)
	require.NoError(t, err)
	assert.Equal(t, data.RatingSummary{Average: 0, Count: 0}, summary)

	for author, rating := range map[string]int{"u-1": 5, "u-2": 3, "u-3": 4} {
		_, err := f.reviews.Create(context.TODO(), author, "", data.NewReview{RecipeId: recipe.Id, Rating: rating})
		require.NoError(t, err)
	}
	summary, err = f.reviews.Rating(context.TODO(), recipe.Id)
	require.NoError(t, err)
	assert.Equal(t, data.RatingSummary{Average: 4.0, Count: 3}, summary)
}

func TestRatingAggregationRoundsToTenths(t *testing.T) {
	f := newFixture()
	recipe := f.createRecipe(t, "chef-1")
	for author, rating := range map[string]int{"u-1": 5, "u-2": 4} {
		_, err := f.reviews.Create(context.TODO(), author, "", data.NewReview{RecipeId: recipe.Id, Rating: rating})
		require.NoError(t, err)
	}
	summary, err := f.reviews.Rating(context.TODO(), recipe.Id)
	require.NoError(t, err)
	assert.Equal(t, data.RatingSummary{Average: 4.5, Count: 2}, summary)
}

func TestRecipeCreateDedupesCategoryIds(t *testing.T) {
	f := newFixture()
	recipe, err := f.recipes.Create(context.TODO(), "chef-1", data.NewRecipe{
		Title:        "Shakshuka",
		Instructions: "Simmer.",
		Servings:     2,
		Difficulty:   data.DifficultyEasy,
		CategoryIds:  []string{"a", "b", "a"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, recipe.CategoryIds)
}
