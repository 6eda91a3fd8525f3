package dynamo

import (
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cusiokhale/recipe-food-platform/internal/store"
)

func TestBuildExpressionEncodesTimesFixedWidth(t *testing.T) {
	min := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	max := min.Add(500 * time.Millisecond)
	expr, err := buildExpression("recipes", store.Query{
		Range: &store.Range{Field: "createdAt", Min: min, Max: max},
	})
	require.NoError(t, err)

	var encoded []string
	for _, value := range expr.Values() {
		if s, ok := value.(*types.AttributeValueMemberS); ok && strings.HasPrefix(s.Value, "2024-") {
			encoded = append(encoded, s.Value)
		}
	}
	require.Len(t, encoded, 2)
	sort.Strings(encoded)
	// equal widths keep lexical comparison chronological at sub-second
	// boundaries; RFC3339Nano would trim ".000000000" and break that
	assert.Equal(t, "2024-03-01T12:00:00.000000000Z", encoded[0])
	assert.Equal(t, "2024-03-01T12:00:00.500000000Z", encoded[1])
	assert.Len(t, encoded[1], len(encoded[0]))
}

func TestEncodeValueRoundTripsThroughAsTime(t *testing.T) {
	stamp := time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.UTC)
	raw, ok := encodeValue(stamp).(string)
	require.True(t, ok)
	parsed, ok := store.AsTime(raw)
	require.True(t, ok)
	assert.True(t, parsed.Equal(stamp))
}

func TestEncodeDocLeavesOtherValuesAlone(t *testing.T) {
	doc := encodeDoc(store.Document{
		"title":    "Stew",
		"servings": 4,
		"tags":     []string{"dinner"},
	})
	assert.Equal(t, "Stew", doc["title"])
	assert.Equal(t, 4, doc["servings"])
	assert.Equal(t, []string{"dinner"}, doc["tags"])
}
