package data

import "time"

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Recipe struct {
	Id           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Instructions string    `json:"instructions"`
	PrepTime     int       `json:"prepTime"`
	CookTime     int       `json:"cookTime"`
	Servings     int       `json:"servings"`
	Difficulty   string    `json:"difficulty"`
	ImageUrl     string    `json:"imageUrl,omitempty"`
	OwnerId      string    `json:"ownerId"`
	// CategoryIds is a set; IngredientIds keeps the creation order of the
	// child ingredients.
	CategoryIds   []string  `json:"categoryIds"`
	IngredientIds []string  `json:"ingredientIds"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type NewRecipe struct {
	Title        string
	Description  string
	Instructions string
	PrepTime     int
	CookTime     int
	Servings     int
	Difficulty   string
	ImageUrl     string
	CategoryIds  []string
}

// RecipeInput carries a partial update; nil fields are left untouched.
type RecipeInput struct {
	Title        *string
	Description  *string
	Instructions *string
	PrepTime     *int
	CookTime     *int
	Servings     *int
	Difficulty   *string
	ImageUrl     *string
	CategoryIds  *[]string
}

type RecipeFilter struct {
	Search        string
	CategoryId    string
	Difficulty    string
	OwnerId       string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	MinPrepTime   *int
	MaxPrepTime   *int
	MinCookTime   *int
	MaxCookTime   *int
	MinServings   *int
	MaxServings   *int
	SortBy        string
	SortOrder     string
	Page          int
	Limit         int
}
