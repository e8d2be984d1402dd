package engine

import (
	"math"

	"github.com/spacesedan/revi/internal/lexicon"
	"github.com/spacesedan/revi/internal/models"
	"github.com/spacesedan/revi/internal/textutil"
)

// ScoreInput carries everything the value score depends on. Confidence is
// the classification confidence, Similarity comes from the embedding
// provider, and IsShadow is known only after classification.
type ScoreInput struct {
	Text               string
	Product            models.ProductContext
	MatchedPoints      []string
	IsVerifiedPurchase bool
	Confidence         float64
	Similarity         float64
	IsShadow           bool
}

// Sub-score weights. They sum to 1.0.
const (
	weightSimilarity  = 0.25
	weightCoverage    = 0.25
	weightLength      = 0.15
	weightVerified    = 0.10
	weightConfidence  = 0.10
	weightVocabulary  = 0.10
	weightSpecificity = 0.05

	shadowMultiplier = 0.4
)

// Score computes the 0-100 value score as a weighted composite of seven
// normalized sub-scores. Shadow-banned reviews keep 40% of their base score.
func Score(in ScoreInput) float64 {
	base := weightSimilarity*in.Similarity +
		weightCoverage*coverageScore(in.MatchedPoints, in.Product.Keypoints) +
		weightLength*lengthScore(len(in.Text)) +
		weightVerified*verifiedScore(in.IsVerifiedPurchase) +
		weightConfidence*in.Confidence +
		weightVocabulary*vocabularyScore(in.Text) +
		weightSpecificity*specificityScore(in.Text)

	if in.IsShadow {
		base *= shadowMultiplier
	}

	score := math.Round(base*100*100) / 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// coverageScore rewards keypoint coverage, with a bonus once at least two
// keypoints are touched. Products without keypoints get a flat default.
func coverageScore(matched, keypoints []string) float64 {
	if len(keypoints) == 0 {
		return 0.3
	}

	d := math.Min(float64(len(matched))/float64(len(keypoints)), 1.0)
	if len(matched) >= 2 {
		d = math.Min(d+0.2, 1.0)
	}
	return d
}

// lengthScore is a piecewise curve over character count: detail grows value
// up to ~300 chars, plateaus to 600, then decays gently with a 0.85 floor.
func lengthScore(length int) float64 {
	l := float64(length)
	switch {
	case length < 30:
		return l / 30 * 0.5
	case length <= 100:
		return 0.5 + (l-30)/70*0.3
	case length <= 300:
		return 0.8 + (l-100)/200*0.2
	case length <= 600:
		return 1.0
	default:
		return math.Max(0.85, 1.0-(l-600)/1500)
	}
}

func verifiedScore(verified bool) float64 {
	if verified {
		return 1.0
	}
	return 0.4
}

// vocabularyScore measures lexical richness via the unique-word ratio.
func vocabularyScore(text string) float64 {
	words := textutil.WordCount(text)
	if words == 0 {
		return 0.3
	}
	return 0.3 + 0.7*float64(textutil.UniqueWordCount(text))/float64(words)
}

// specificityScore rewards concrete detail: numbers, comparisons,
// intensified adjectives and product terminology.
func specificityScore(text string) float64 {
	x := 0.0

	if textutil.HasDigit(text) {
		x += 0.3
	}
	if textutil.ContainsAny(text, lexicon.ComparativeTerms) {
		x += 0.2
	}
	for _, pattern := range lexicon.IntensifierPatterns {
		if pattern.MatchString(text) {
			x += 0.1
			break
		}
	}
	x += math.Min(0.15*float64(textutil.CountTerms(text, lexicon.FeatureTerms)), 0.4)

	return math.Max(0, math.Min(x, 1.0))
}
