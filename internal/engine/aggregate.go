package engine

import (
	"math"

	"github.com/spacesedan/revi/internal/models"
)

const (
	verifiedMultiplier   = 1.2
	shadowWeightFactor   = 0.4
	publishedFloor       = 0.1
	minimumWeight        = 0.01
	highValueThreshold   = 60.0
	confidenceSaturation = 10.0
)

func categoryMultiplier(category models.Category) float64 {
	switch category {
	case models.CategoryPublicPositive, models.CategoryPublicNegative:
		return 1.0
	case models.CategorySupport:
		return 0.8
	case models.CategoryShadow:
		return 0.3
	case models.CategoryRejected:
		return 0.0
	}
	return 0.5
}

// reviewWeight is the per-review contribution to the weighted rating. The
// floors keep a published review from vanishing and keep every considered
// review above zero weight.
func reviewWeight(r models.ReviewRecord) float64 {
	weight := (r.ValueScore / 100) * categoryMultiplier(r.Category)

	if r.IsVerifiedPurchase {
		weight *= verifiedMultiplier
	}
	if r.IsShadow {
		weight *= shadowWeightFactor
	}

	published := r.Category == models.CategoryPublicPositive || r.Category == models.CategoryPublicNegative
	if published && !r.IsShadow {
		weight = math.Max(weight, publishedFloor)
	}
	return math.Max(weight, minimumWeight)
}

// Aggregate folds a product's scored reviews into one weighted rating.
// When includeShadow is false, shadow-banned reviews are excluded entirely
// rather than down-weighted. An empty considered set yields the documented
// zero result.
func Aggregate(reviews []models.ReviewRecord, includeShadow bool) models.AggregateRating {
	var (
		weightedSum float64
		totalWeight float64
		positive    int
		highValue   int
		considered  int
	)

	for _, r := range reviews {
		if r.IsShadow && !includeShadow {
			continue
		}
		considered++

		weight := reviewWeight(r)
		weightedSum += float64(r.Rating) * weight
		totalWeight += weight

		if r.Rating >= 4 {
			positive++
		}
		if r.ValueScore >= highValueThreshold {
			highValue++
		}
	}

	if considered == 0 || totalWeight == 0 {
		return models.AggregateRating{}
	}

	return models.AggregateRating{
		WeightedRating:  weightedSum / totalWeight,
		TotalReviews:    considered,
		PositiveRatio:   float64(positive) / float64(considered),
		ConfidenceScore: math.Min(float64(highValue)/confidenceSaturation, 1.0),
	}
}
