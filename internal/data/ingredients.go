package data

import "time"

type Ingredient struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	Quantity  float64   `json:"quantity"`
	RecipeId  string    `json:"recipeId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type NewIngredient struct {
	Name     string
	Unit     string
	Quantity float64
	RecipeId string
}

type IngredientInput struct {
	Name     *string
	Unit     *string
	Quantity *float64
}

type IngredientFilter struct {
	Search    string
	RecipeId  string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}
