package data

import "time"

type Review struct {
	Id       string `json:"id"`
	RecipeId string `json:"recipeId"`
	AuthorId string `json:"authorId"`
	// AuthorName is captured once at creation and never synced with later
	// identity changes.
	AuthorName string    `json:"authorName,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type NewReview struct {
	RecipeId string
	Rating   int
	Comment  string
}

type ReviewInput struct {
	Rating  *int
	Comment *string
}

type ReviewFilter struct {
	RecipeId  string
	AuthorId  string
	MinRating *int
	MaxRating *int
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}
