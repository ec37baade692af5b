package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripsmith/pkg/utils"
)

func TestEstimateIsDeterministic(t *testing.T) {
	estimator := NewCostEstimator()

	first := estimator.Estimate(4, 2, TierMidRange)
	second := estimator.Estimate(4, 2, TierMidRange)

	assert.Equal(t, first, second)
}

func TestEstimateMidRangeFormula(t *testing.T) {
	estimator := NewCostEstimator()

	costs := estimator.Estimate(4, 2, TierMidRange)

	assert.Equal(t, 400.0, costs.Accommodation)
	assert.Equal(t, 240.0, costs.Food)
	assert.Equal(t, 320.0, costs.Activities)
	assert.Equal(t, 50.0, costs.Transport)
	assert.Equal(t, 120.0, costs.Miscellaneous)
	assert.Equal(t, 1130.0, costs.Total)
}

func TestEstimateTierOrdering(t *testing.T) {
	estimator := NewCostEstimator()

	budget := estimator.Estimate(3, 2, TierBudget)
	mid := estimator.Estimate(3, 2, TierMidRange)
	luxury := estimator.Estimate(3, 2, TierLuxury)

	assert.Less(t, budget.Total, mid.Total)
	assert.Less(t, mid.Total, luxury.Total)
	assert.GreaterOrEqual(t, budget.Total, 0.0)
}

func TestEstimateNonNegative(t *testing.T) {
	estimator := NewCostEstimator()

	for _, tier := range []BudgetTier{TierBudget, TierMidRange, TierLuxury} {
		costs := estimator.Estimate(1, 1, tier)
		assert.GreaterOrEqual(t, costs.Accommodation, 0.0)
		assert.GreaterOrEqual(t, costs.Food, 0.0)
		assert.GreaterOrEqual(t, costs.Activities, 0.0)
		assert.GreaterOrEqual(t, costs.Transport, 0.0)
		assert.GreaterOrEqual(t, costs.Miscellaneous, 0.0)
		assert.GreaterOrEqual(t, costs.Total, 0.0)
	}
}

func TestParseBudgetTier(t *testing.T) {
	cases := []struct {
		input string
		want  BudgetTier
	}{
		{"Budget", TierBudget},
		{"Budget ($)", TierBudget},
		{"Mid-range", TierMidRange},
		{"Mid-range ($$)", TierMidRange},
		{"mid range", TierMidRange},
		{"LUXURY", TierLuxury},
		{"Luxury ($$$)", TierLuxury},
	}
	for _, tc := range cases {
		tier, err := ParseBudgetTier(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, tier, "input %q", tc.input)
	}
}

func TestParseBudgetTierRejectsUnknown(t *testing.T) {
	_, err := ParseBudgetTier("extravagant")
	assert.ErrorIs(t, err, utils.ErrInvalidBudgetTier)

	_, err = ParseBudgetTier("")
	assert.ErrorIs(t, err, utils.ErrInvalidBudgetTier)
}
