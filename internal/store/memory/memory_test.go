package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cusiokhale/recipe-food-platform/internal/store"
)

func seedDishes(t *testing.T, s *Store) {
	t.Helper()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	docs := []store.Document{
		{"id": "a", "name": "Carbonara", "difficulty": "medium", "servings": 2, "tags": []string{"pasta", "dinner"}, "createdAt": base},
		{"id": "b", "name": "Toast", "difficulty": "easy", "servings": 1, "tags": []string{"breakfast"}, "createdAt": base.Add(time.Hour)},
		{"id": "c", "name": "Beef Wellington", "difficulty": "hard", "servings": 6, "tags": []string{"dinner"}, "createdAt": base.Add(2 * time.Hour)},
		{"id": "d", "name": "Omelette", "difficulty": "easy", "servings": 1, "tags": []string{"breakfast", "eggs"}, "createdAt": base.Add(3 * time.Hour)},
	}
	for _, doc := range docs {
		id, _ := store.AsString(doc["id"])
		require.NoError(t, s.Put(context.TODO(), "dishes", id, doc))
	}
}

func TestGetReturnsNilForMissingDocument(t *testing.T) {
	s := New()
	doc, err := s.Get(context.TODO(), "dishes", "nope")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestPutThenGetRoundTrips(t *testing.T) {
	s := New()
	seedDishes(t, s)
	doc, err := s.Get(context.TODO(), "dishes", "a")
	require.NoError(t, err)
	require.NotNil(t, doc)
	name, _ := store.AsString(doc["name"])
	assert.Equal(t, "Carbonara", name)
}

func TestGetReturnsACopy(t *testing.T) {
	s := New()
	seedDishes(t, s)
	doc, err := s.Get(context.TODO(), "dishes", "a")
	require.NoError(t, err)
	doc["name"] = "Mutated"
	again, err := s.Get(context.TODO(), "dishes", "a")
	require.NoError(t, err)
	name, _ := store.AsString(again["name"])
	assert.Equal(t, "Carbonara", name)
}

func TestGetCopiesSliceValues(t *testing.T) {
	s := New()
	seedDishes(t, s)
	doc, err := s.Get(context.TODO(), "dishes", "a")
	require.NoError(t, err)
	tags, ok := doc["tags"].([]string)
	require.True(t, ok)
	// writing through the fetched slice must not reach the stored document
	tags[0] = "mutated"
	again, err := s.Get(context.TODO(), "dishes", "a")
	require.NoError(t, err)
	fresh, _ := store.AsStringSlice(again["tags"])
	assert.Equal(t, []string{"pasta", "dinner"}, fresh)
}

func TestPutCopiesSliceValues(t *testing.T) {
	s := New()
	tags := []string{"pasta"}
	require.NoError(t, s.Put(context.TODO(), "dishes", "x", store.Document{"id": "x", "tags": tags}))
	tags[0] = "mutated"
	doc, err := s.Get(context.TODO(), "dishes", "x")
	require.NoError(t, err)
	stored, _ := store.AsStringSlice(doc["tags"])
	assert.Equal(t, []string{"pasta"}, stored)
}

func TestUpdateRequiresExistingDocument(t *testing.T) {
	s := New()
	existed, err := s.Update(context.TODO(), "dishes", "ghost", store.Document{"id": "ghost"})
	require.NoError(t, err)
	assert.False(t, existed)
	doc, err := s.Get(context.TODO(), "dishes", "ghost")
	require.NoError(t, err)
	assert.Nil(t, doc, "a rejected update must not create the document")

	seedDishes(t, s)
	existed, err = s.Update(context.TODO(), "dishes", "a", store.Document{"id": "a", "name": "Cacio e Pepe"})
	require.NoError(t, err)
	assert.True(t, existed)
	doc, err = s.Get(context.TODO(), "dishes", "a")
	require.NoError(t, err)
	name, _ := store.AsString(doc["name"])
	assert.Equal(t, "Cacio e Pepe", name)
}

func TestDeleteReportsExistence(t *testing.T) {
	s := New()
	seedDishes(t, s)
	existed, err := s.Delete(context.TODO(), "dishes", "a")
	require.NoError(t, err)
	assert.True(t, existed)
	existed, err = s.Delete(context.TODO(), "dishes", "a")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestQueryEquality(t *testing.T) {
	s := New()
	seedDishes(t, s)
	docs, err := s.Query(context.TODO(), "dishes", store.Query{
		Equals: map[string]any{"difficulty": "easy"},
		Sort:   store.Sort{Field: "name"},
	})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	first, _ := store.AsString(docs[0]["name"])
	assert.Equal(t, "Omelette", first)
}

func TestQueryContains(t *testing.T) {
	s := New()
	seedDishes(t, s)
	docs, err := s.Query(context.TODO(), "dishes", store.Query{
		Contains: map[string]any{"tags": "breakfast"},
		Sort:     store.Sort{Field: "name"},
	})
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestQueryRangeOnTimestamps(t *testing.T) {
	s := New()
	seedDishes(t, s)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	docs, err := s.Query(context.TODO(), "dishes", store.Query{
		Range: &store.Range{Field: "createdAt", Min: base.Add(time.Hour), Max: base.Add(2 * time.Hour)},
		Sort:  store.Sort{Field: "createdAt"},
	})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	first, _ := store.AsString(docs[0]["id"])
	assert.Equal(t, "b", first)
}

func TestQuerySortDescendingWithWindow(t *testing.T) {
	s := New()
	seedDishes(t, s)
	docs, err := s.Query(context.TODO(), "dishes", store.Query{
		Sort:   store.Sort{Field: "createdAt", Descending: true},
		Offset: 1,
		Limit:  2,
	})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	first, _ := store.AsString(docs[0]["id"])
	second, _ := store.AsString(docs[1]["id"])
	assert.Equal(t, "c", first)
	assert.Equal(t, "b", second)
}

func TestQueryOffsetPastEnd(t *testing.T) {
	s := New()
	seedDishes(t, s)
	docs, err := s.Query(context.TODO(), "dishes", store.Query{
		Sort:   store.Sort{Field: "name"},
		Offset: 10,
		Limit:  5,
	})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestCountIgnoresWindow(t *testing.T) {
	s := New()
	seedDishes(t, s)
	count, err := s.Count(context.TODO(), "dishes", store.Query{
		Equals: map[string]any{"difficulty": "easy"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestQueryNumericRange(t *testing.T) {
	s := New()
	seedDishes(t, s)
	min := 2
	docs, err := s.Query(context.TODO(), "dishes", store.Query{
		Range: &store.Range{Field: "servings", Min: min},
		Sort:  store.Sort{Field: "servings"},
	})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	top, _ := store.AsInt(docs[1]["servings"])
	assert.Equal(t, 6, top)
}
