package engine

import (
	"reflect"
	"testing"

	"github.com/spacesedan/revi/internal/models"
)

func TestSummarizeEmptyInput(t *testing.T) {
	got := Summarize(nil, PolarityPositive)

	if got.Summary != "No positive reviews yet." {
		t.Errorf("summary = %q", got.Summary)
	}
	if len(got.KeyThemes) != 0 || got.KeyThemes == nil {
		t.Errorf("key themes should be empty but non-nil, got %#v", got.KeyThemes)
	}
	if len(got.CommonPoints) != 0 || got.CommonPoints == nil {
		t.Errorf("common points should be empty but non-nil, got %#v", got.CommonPoints)
	}
	if got.ReviewCount != 0 || got.AverageValueScore != 0 {
		t.Errorf("counts should be zero, got %+v", got)
	}

	negative := Summarize([]models.ReviewRecord{}, PolarityNegative)
	if negative.Summary != "No negative reviews yet." {
		t.Errorf("negative summary = %q", negative.Summary)
	}
}

func TestSummarizePositive(t *testing.T) {
	reviews := []models.ReviewRecord{
		{ReviewID: "r-1", Text: "Excellent quality overall. The material feels premium and sturdy.", ValueScore: 80},
		{ReviewID: "r-2", Text: "Great quality for the price.", ValueScore: 70},
	}

	got := Summarize(reviews, PolarityPositive)

	wantThemes := []models.Theme{
		{Name: "quality", Mentions: 7, Weight: 5.4},
		{Name: "price", Mentions: 1, Weight: 0.7},
	}
	if !reflect.DeepEqual(got.KeyThemes, wantThemes) {
		t.Errorf("themes = %+v, want %+v", got.KeyThemes, wantThemes)
	}

	wantPoints := []string{
		"Excellent quality overall",
		"Great quality for the price",
	}
	if !reflect.DeepEqual(got.CommonPoints, wantPoints) {
		t.Errorf("points = %v, want %v", got.CommonPoints, wantPoints)
	}

	wantSummary := "Based on 2 positive reviews, customers particularly appreciate the quality. " +
		"Other frequently praised aspects include price. " +
		"These reviews tend to be detailed and specific, providing valuable insights."
	if got.Summary != wantSummary {
		t.Errorf("summary = %q, want %q", got.Summary, wantSummary)
	}

	if got.ReviewCount != 2 {
		t.Errorf("review count = %d, want 2", got.ReviewCount)
	}
	if got.AverageValueScore != 75.0 {
		t.Errorf("average value score = %v, want 75.0", got.AverageValueScore)
	}
}

func TestSummarizeNegative(t *testing.T) {
	reviews := []models.ReviewRecord{
		{ReviewID: "r-1", Text: "The hinge broke after two weeks. Terrible quality control.", ValueScore: 85},
	}

	got := Summarize(reviews, PolarityNegative)

	wantThemes := []models.Theme{
		{Name: "quality", Mentions: 1, Weight: 0.85},
		{Name: "durability", Mentions: 1, Weight: 0.85},
	}
	if !reflect.DeepEqual(got.KeyThemes, wantThemes) {
		t.Errorf("themes = %+v, want %+v", got.KeyThemes, wantThemes)
	}

	// "Terrible quality control" carries a negative indicator; the first
	// sentence has none and arrives only via the backfill pass.
	wantPoints := []string{
		"Terrible quality control",
		"The hinge broke after two weeks",
	}
	if !reflect.DeepEqual(got.CommonPoints, wantPoints) {
		t.Errorf("points = %v, want %v", got.CommonPoints, wantPoints)
	}

	wantSummary := "Based on 1 negative reviews, the main concerns relate to quality. " +
		"Customers also mention issues with durability. " +
		"These reviews highlight areas that may need attention."
	if got.Summary != wantSummary {
		t.Errorf("summary = %q, want %q", got.Summary, wantSummary)
	}
}

func TestSummarizeFrequencyRanking(t *testing.T) {
	reviews := []models.ReviewRecord{
		{ReviewID: "r-1", Text: "Amazing battery life. Bland remark here.", ValueScore: 80},
		{ReviewID: "r-2", Text: "Amazing battery life.", ValueScore: 80},
		{ReviewID: "r-3", Text: "Superb screen brightness today.", ValueScore: 80},
	}

	got := Summarize(reviews, PolarityPositive)

	if len(got.CommonPoints) == 0 || got.CommonPoints[0] != "Amazing battery life" {
		t.Errorf("most frequent sentence should rank first, got %v", got.CommonPoints)
	}
}

func TestSummarizeAverageCoversWholeInput(t *testing.T) {
	reviews := []models.ReviewRecord{
		{ReviewID: "r-1", Text: "Excellent quality and a superb finish on every edge.", ValueScore: 80},
		{ReviewID: "r-2", Text: "fine", ValueScore: 10},
	}

	got := Summarize(reviews, PolarityPositive)

	// The low-value review is skipped for theme extraction but still counts
	// toward the average.
	if got.AverageValueScore != 45.0 {
		t.Errorf("average value score = %v, want 45.0", got.AverageValueScore)
	}
	if got.ReviewCount != 2 {
		t.Errorf("review count = %d, want 2", got.ReviewCount)
	}
}

func TestSelectHighValueFallback(t *testing.T) {
	var reviews []models.ReviewRecord
	for i := 0; i < 6; i++ {
		reviews = append(reviews, models.ReviewRecord{ReviewID: string(rune('a' + i)), ValueScore: 10})
	}

	got := selectHighValue(reviews)
	if len(got) != 5 {
		t.Fatalf("fallback should keep the first 5 reviews, got %d", len(got))
	}
	if !reflect.DeepEqual(got, reviews[:5]) {
		t.Errorf("fallback should preserve input order")
	}
}
