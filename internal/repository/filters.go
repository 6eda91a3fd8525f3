package repository

import (
	"strings"

	"github.com/Cusiokhale/recipe-food-platform/internal/store"
)

// buildSort maps a requested sort field through the entity's whitelist,
// falling back to the entity default when absent or unknown.
func buildSort(field string, order string, allowed map[string]string, fallback store.Sort) store.Sort {
	sort := fallback
	if mapped, ok := allowed[field]; ok {
		sort.Field = mapped
		sort.Descending = false
	}
	switch order {
	case "asc":
		sort.Descending = false
	case "desc":
		sort.Descending = true
	}
	return sort
}

func containsFold(haystack string, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func inIntRange(value int, min *int, max *int) bool {
	if min != nil && value < *min {
		return false
	}
	if max != nil && value > *max {
		return false
	}
	return true
}
