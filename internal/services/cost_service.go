package services

import (
	"math"
	"strings"

	"tripsmith/internal/models/response_models"
	"tripsmith/pkg/utils"
)

type BudgetTier string

const (
	TierBudget   BudgetTier = "budget"
	TierMidRange BudgetTier = "mid-range"
	TierLuxury   BudgetTier = "luxury"
)

// ParseBudgetTier normalizes UI labels like "Mid-range ($$)" to a tier.
func ParseBudgetTier(s string) (BudgetTier, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if i := strings.Index(normalized, "("); i > 0 {
		normalized = strings.TrimSpace(normalized[:i])
	}
	switch normalized {
	case "budget":
		return TierBudget, nil
	case "mid-range", "midrange", "mid range":
		return TierMidRange, nil
	case "luxury":
		return TierLuxury, nil
	default:
		return "", utils.ErrInvalidBudgetTier
	}
}

// CostEstimatorInterface produces a USD breakdown for a trip. Pure: no
// external calls, identical inputs always yield identical output.
type CostEstimatorInterface interface {
	Estimate(durationDays, groupSize int, tier BudgetTier) response_models.CostBreakdown
}

type CostEstimator struct{}

func NewCostEstimator() CostEstimatorInterface {
	return &CostEstimator{}
}

// Per-person-per-day base rates in USD; transport is a flat per-person cost.
const (
	rateAccommodation = 50.0
	rateFood          = 30.0
	rateActivities    = 40.0
	rateTransport     = 25.0
	rateMiscellaneous = 15.0
)

var tierMultipliers = map[BudgetTier]float64{
	TierBudget:   0.6,
	TierMidRange: 1.0,
	TierLuxury:   2.2,
}

func (e *CostEstimator) Estimate(durationDays, groupSize int, tier BudgetTier) response_models.CostBreakdown {
	mult, ok := tierMultipliers[tier]
	if !ok {
		mult = tierMultipliers[TierMidRange]
	}

	perPersonDays := float64(durationDays * groupSize)
	breakdown := response_models.CostBreakdown{
		Accommodation: roundCents(rateAccommodation * perPersonDays * mult),
		Food:          roundCents(rateFood * perPersonDays * mult),
		Activities:    roundCents(rateActivities * perPersonDays * mult),
		Transport:     roundCents(rateTransport * float64(groupSize) * mult),
		Miscellaneous: roundCents(rateMiscellaneous * perPersonDays * mult),
	}
	breakdown.Total = roundCents(breakdown.Accommodation + breakdown.Food +
		breakdown.Activities + breakdown.Transport + breakdown.Miscellaneous)
	return breakdown
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
