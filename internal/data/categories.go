package data

import "time"

type Category struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type NewCategory struct {
	Name        string
	Description string
}

type CategoryInput struct {
	Name        *string
	Description *string
}

type CategoryFilter struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}
