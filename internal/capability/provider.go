// Package capability wraps the external model dependencies of the
// moderation pipeline behind narrow interfaces. Providers are constructed
// by the surrounding system and injected into the pipeline; the engines
// never reach for them through globals.
package capability

import (
	"context"
	"unicode/utf8"

	"github.com/spacesedan/revi/internal/models"
)

// MAX_INPUT_CHARS bounds the text handed to a model. Longer reviews are
// truncated by the provider itself, not the caller.
const MAX_INPUT_CHARS = 512

// SentimentProvider judges one review text at a time. A failure is fatal
// for that review's processing; there is no internal retry.
type SentimentProvider interface {
	Judge(ctx context.Context, text string) (models.SentimentJudgment, error)
}

// SimilarityProvider computes semantic similarity between texts. Values are
// in [0,1] by convention of the upstream model for same-language text and
// are used as-is, without re-normalization.
type SimilarityProvider interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
	KeypointSimilarity(ctx context.Context, text string, keypoints []string) (float64, error)
}

func truncate(text string) string {
	if len(text) <= MAX_INPUT_CHARS {
		return text
	}
	// Back off to a rune boundary so a multi-byte character is never split.
	cut := MAX_INPUT_CHARS
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
