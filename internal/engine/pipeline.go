package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spacesedan/revi/internal/capability"
	"github.com/spacesedan/revi/internal/language"
	"github.com/spacesedan/revi/internal/models"
)

// Moderator runs the full per-review pipeline: sentiment, classification,
// similarity, value score. The capability providers are injected at
// construction; the Moderator holds no other state and is safe to share.
type Moderator struct {
	sentiment  capability.SentimentProvider
	similarity capability.SimilarityProvider
}

func NewModerator(sentiment capability.SentimentProvider, similarity capability.SimilarityProvider) *Moderator {
	return &Moderator{
		sentiment:  sentiment,
		similarity: similarity,
	}
}

// ProcessReview produces a complete analysis or fails the review outright.
// A capability-provider error is never papered over with a guessed
// category; the caller decides whether to retry the whole submission.
func (m *Moderator) ProcessReview(ctx context.Context, submission models.ReviewSubmission) (models.ReviewAnalysisResult, error) {
	start := time.Now()

	if submission.Text == "" {
		return models.ReviewAnalysisResult{}, fmt.Errorf("[Moderator] review %s has empty text", submission.ReviewID)
	}
	if submission.Rating < 1 || submission.Rating > 5 {
		return models.ReviewAnalysisResult{}, fmt.Errorf("[Moderator] review %s has invalid rating %d", submission.ReviewID, submission.Rating)
	}

	judgment, err := m.sentiment.Judge(ctx, submission.Text)
	if err != nil {
		return models.ReviewAnalysisResult{}, fmt.Errorf("[Moderator] sentiment judgment failed for review %s: %w", submission.ReviewID, err)
	}

	classification := Classify(ClassificationInput{
		Review:    submission.Review,
		Product:   submission.Product,
		Sentiment: judgment,
	})

	similarity, err := m.similarity.KeypointSimilarity(ctx, submission.Text, submission.Product.Keypoints)
	if err != nil {
		return models.ReviewAnalysisResult{}, fmt.Errorf("[Moderator] similarity failed for review %s: %w", submission.ReviewID, err)
	}

	isShadow := classification.Category == models.CategoryShadow

	score := Score(ScoreInput{
		Text:               submission.Text,
		Product:            submission.Product,
		MatchedPoints:      classification.MatchedPoints,
		IsVerifiedPurchase: submission.IsVerifiedPurchase,
		Confidence:         classification.Confidence,
		Similarity:         similarity,
		IsShadow:           isShadow,
	})

	slog.Info("[Moderator] Review processed",
		slog.String("review_id", submission.ReviewID),
		slog.String("category", string(classification.Category)),
		slog.Float64("value_score", score),
		slog.Duration("elapsed", time.Since(start)))

	return models.ReviewAnalysisResult{
		ReviewSubmission: submission,
		Classification:   classification,
		ValueScore:       score,
		IsShadow:         isShadow,
		Language:         language.Detect(submission.Text),
	}, nil
}
