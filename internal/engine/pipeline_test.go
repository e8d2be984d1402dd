package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spacesedan/revi/internal/models"
)

type stubSentiment struct {
	judgment models.SentimentJudgment
	err      error
}

func (s stubSentiment) Judge(_ context.Context, _ string) (models.SentimentJudgment, error) {
	return s.judgment, s.err
}

type stubSimilarity struct {
	value float64
	err   error
}

func (s stubSimilarity) Similarity(_ context.Context, _, _ string) (float64, error) {
	return s.value, s.err
}

func (s stubSimilarity) KeypointSimilarity(_ context.Context, _ string, _ []string) (float64, error) {
	return s.value, s.err
}

func submission(text string, rating int) models.ReviewSubmission {
	return models.ReviewSubmission{
		Review: models.Review{
			ReviewID:           "r-1",
			Text:               text,
			Rating:             rating,
			IsVerifiedPurchase: true,
		},
		Product: models.ProductContext{
			ProductID:   "p-1",
			Description: "A phone case",
			Keypoints:   []string{"battery life", "screen protection"},
		},
	}
}

func TestProcessReview(t *testing.T) {
	moderator := NewModerator(
		stubSentiment{judgment: models.SentimentJudgment{Label: models.SentimentPositive, Confidence: 0.9}},
		stubSimilarity{value: 0.8},
	)

	got, err := moderator.ProcessReview(context.Background(), submission("Battery life is superb, easily two full days", 5))
	if err != nil {
		t.Fatalf("ProcessReview returned error: %v", err)
	}

	if got.Classification.Category != models.CategoryPublicPositive {
		t.Errorf("category = %s, want public_positive", got.Classification.Category)
	}
	if got.ValueScore <= 0 || got.ValueScore > 100 {
		t.Errorf("value score %v out of range", got.ValueScore)
	}
	if got.IsShadow {
		t.Error("non-shadow review flagged as shadow")
	}
	if got.Language != "en" {
		t.Errorf("language = %s, want en", got.Language)
	}
	if got.ReviewID != "r-1" {
		t.Errorf("submission fields should carry through, got review id %s", got.ReviewID)
	}
}

func TestProcessReviewShadowFlag(t *testing.T) {
	moderator := NewModerator(
		stubSentiment{judgment: models.SentimentJudgment{Label: models.SentimentPositive, Confidence: 0.5}},
		stubSimilarity{value: 0.1},
	)

	sub := submission("Great product!", 5)
	got, err := moderator.ProcessReview(context.Background(), sub)
	if err != nil {
		t.Fatalf("ProcessReview returned error: %v", err)
	}

	if got.Classification.Category != models.CategoryShadow {
		t.Fatalf("category = %s, want shadow", got.Classification.Category)
	}
	if !got.IsShadow {
		t.Error("shadow category should set the shadow flag")
	}

	// The flag must feed back into the score.
	plain := Score(ScoreInput{
		Text:               sub.Text,
		Product:            sub.Product,
		MatchedPoints:      got.Classification.MatchedPoints,
		IsVerifiedPurchase: sub.IsVerifiedPurchase,
		Confidence:         got.Classification.Confidence,
		Similarity:         0.1,
	})
	if got.ValueScore >= plain {
		t.Errorf("shadow score %v should be below the unshadowed %v", got.ValueScore, plain)
	}
}

func TestProcessReviewValidation(t *testing.T) {
	moderator := NewModerator(
		stubSentiment{judgment: models.SentimentJudgment{Label: models.SentimentNeutral, Confidence: 0.5}},
		stubSimilarity{},
	)

	tests := []struct {
		name   string
		text   string
		rating int
	}{
		{"empty text", "", 3},
		{"rating too low", "fine overall", 0},
		{"rating too high", "fine overall", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := moderator.ProcessReview(context.Background(), submission(tt.text, tt.rating)); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestProcessReviewProviderErrors(t *testing.T) {
	sentimentErr := errors.New("model unavailable")
	moderator := NewModerator(stubSentiment{err: sentimentErr}, stubSimilarity{})

	_, err := moderator.ProcessReview(context.Background(), submission("decent enough purchase", 4))
	if !errors.Is(err, sentimentErr) {
		t.Errorf("sentiment error should propagate, got %v", err)
	}

	similarityErr := errors.New("embedding failed")
	moderator = NewModerator(
		stubSentiment{judgment: models.SentimentJudgment{Label: models.SentimentPositive, Confidence: 0.9}},
		stubSimilarity{err: similarityErr},
	)

	_, err = moderator.ProcessReview(context.Background(), submission("decent enough purchase", 4))
	if !errors.Is(err, similarityErr) {
		t.Errorf("similarity error should propagate, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "r-1") {
		t.Errorf("error should name the review, got %v", err)
	}
}
