package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationsFixedSet(t *testing.T) {
	recs := Recommendations(7, nil)
	require.Len(t, recs, 3)

	categories := []string{}
	for _, r := range recs {
		categories = append(categories, r.Category)
		assert.Equal(t, int64(7), r.CompanyID)
		assert.NotEmpty(t, r.Suggestions)
		assert.GreaterOrEqual(t, r.Impact, 1)
		assert.LessOrEqual(t, r.Impact, 5)
		assert.Less(t, r.EstimatedValueImpactMin, r.EstimatedValueImpactMax)
	}
	assert.Equal(t, []string{"Digital Transformation", "AI Operations", "Financial Health"}, categories)
}

func TestBuyerMatchesFixedSet(t *testing.T) {
	matches := BuyerMatches(7, nil)
	require.Len(t, matches, 3)

	percents := []int{}
	for _, m := range matches {
		percents = append(percents, m.MatchPercent)
		assert.Equal(t, int64(7), m.CompanyID)
		assert.NotEmpty(t, m.BuyerName)
		assert.NotEmpty(t, m.DealType)
	}
	assert.Equal(t, []int{94, 87, 79}, percents)
}
