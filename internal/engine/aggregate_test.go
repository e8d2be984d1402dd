package engine

import (
	"math"
	"testing"

	"github.com/spacesedan/revi/internal/models"
)

func TestReviewWeight(t *testing.T) {
	tests := []struct {
		name   string
		review models.ReviewRecord
		want   float64
	}{
		{
			name: "verified positive",
			review: models.ReviewRecord{
				Rating: 5, ValueScore: 80,
				Category:           models.CategoryPublicPositive,
				IsVerifiedPurchase: true,
			},
			want: 0.96,
		},
		{
			name: "shadow banned",
			review: models.ReviewRecord{
				Rating: 5, ValueScore: 20,
				Category: models.CategoryShadow,
				IsShadow: true,
			},
			want: 0.024,
		},
		{
			name: "verified negative",
			review: models.ReviewRecord{
				Rating: 1, ValueScore: 90,
				Category:           models.CategoryPublicNegative,
				IsVerifiedPurchase: true,
			},
			want: 1.08,
		},
		{
			name: "published floor protects low-value reviews",
			review: models.ReviewRecord{
				Rating: 4, ValueScore: 1,
				Category: models.CategoryPublicPositive,
			},
			want: 0.1,
		},
		{
			name: "rejected reviews sit at the minimum",
			review: models.ReviewRecord{
				Rating: 1, ValueScore: 90,
				Category: models.CategoryRejected,
			},
			want: 0.01,
		},
		{
			name: "support reviews are discounted",
			review: models.ReviewRecord{
				Rating: 2, ValueScore: 50,
				Category: models.CategorySupport,
			},
			want: 0.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reviewWeight(tt.review)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("weight = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAggregateWeightedScenario(t *testing.T) {
	reviews := []models.ReviewRecord{
		{Rating: 5, ValueScore: 80, Category: models.CategoryPublicPositive, IsVerifiedPurchase: true},
		{Rating: 5, ValueScore: 20, Category: models.CategoryShadow, IsShadow: true},
		{Rating: 1, ValueScore: 90, Category: models.CategoryPublicNegative, IsVerifiedPurchase: true},
	}

	got := Aggregate(reviews, true)

	wantRating := (5*0.96 + 5*0.024 + 1*1.08) / (0.96 + 0.024 + 1.08)
	if math.Abs(got.WeightedRating-wantRating) > 1e-9 {
		t.Errorf("weighted rating = %v, want %v", got.WeightedRating, wantRating)
	}
	if got.TotalReviews != 3 {
		t.Errorf("total reviews = %d, want 3", got.TotalReviews)
	}
	if math.Abs(got.PositiveRatio-2.0/3.0) > 1e-9 {
		t.Errorf("positive ratio = %v, want 2/3", got.PositiveRatio)
	}
	if math.Abs(got.ConfidenceScore-0.2) > 1e-9 {
		t.Errorf("confidence = %v, want 0.2 (two reviews at value >= 60)", got.ConfidenceScore)
	}
}

func TestAggregateExcludesShadow(t *testing.T) {
	reviews := []models.ReviewRecord{
		{Rating: 5, ValueScore: 80, Category: models.CategoryPublicPositive, IsVerifiedPurchase: true},
		{Rating: 5, ValueScore: 20, Category: models.CategoryShadow, IsShadow: true},
		{Rating: 1, ValueScore: 90, Category: models.CategoryPublicNegative, IsVerifiedPurchase: true},
	}

	got := Aggregate(reviews, false)

	if got.TotalReviews != 2 {
		t.Fatalf("total reviews = %d, want 2 with shadow excluded", got.TotalReviews)
	}
	wantRating := (5*0.96 + 1*1.08) / (0.96 + 1.08)
	if math.Abs(got.WeightedRating-wantRating) > 1e-9 {
		t.Errorf("weighted rating = %v, want %v", got.WeightedRating, wantRating)
	}
	if math.Abs(got.PositiveRatio-0.5) > 1e-9 {
		t.Errorf("positive ratio = %v, want 0.5", got.PositiveRatio)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	if got := Aggregate(nil, true); got != (models.AggregateRating{}) {
		t.Errorf("empty input should yield the zero rating, got %+v", got)
	}

	onlyShadow := []models.ReviewRecord{
		{Rating: 5, ValueScore: 20, Category: models.CategoryShadow, IsShadow: true},
	}
	if got := Aggregate(onlyShadow, false); got != (models.AggregateRating{}) {
		t.Errorf("all-excluded input should yield the zero rating, got %+v", got)
	}
}

func TestAggregateConfidenceSaturates(t *testing.T) {
	reviews := make([]models.ReviewRecord, 15)
	for i := range reviews {
		reviews[i] = models.ReviewRecord{
			Rating: 5, ValueScore: 75,
			Category:           models.CategoryPublicPositive,
			IsVerifiedPurchase: true,
		}
	}

	got := Aggregate(reviews, true)
	if got.ConfidenceScore != 1.0 {
		t.Errorf("confidence = %v, want saturation at 1.0", got.ConfidenceScore)
	}
}
