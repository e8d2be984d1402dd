package capability

import (
	"context"
	"math"

	"github.com/jonreiter/govader"

	"github.com/spacesedan/revi/internal/models"
	"github.com/spacesedan/revi/internal/textutil"
)

const (
	positiveThreshold = 0.20
	negativeThreshold = -0.20
)

// VaderSentiment is the lexicon-based sentiment provider. It needs no model
// download and no network, which makes it the dev-environment default; its
// English-only lexicon is the trade-off.
type VaderSentiment struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderSentiment() *VaderSentiment {
	return &VaderSentiment{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Judge maps the VADER compound score onto the label set. Confidence is the
// distance from neutral for polar labels and the closeness to neutral
// otherwise, so both ends of the scale report how sure the lexicon is.
func (v *VaderSentiment) Judge(_ context.Context, text string) (models.SentimentJudgment, error) {
	plain := truncate(textutil.NormalizeForAnalysis(text))
	compound := v.analyzer.PolarityScores(plain).Compound

	judgment := models.SentimentJudgment{}
	switch {
	case compound >= positiveThreshold:
		judgment.Label = models.SentimentPositive
		judgment.Confidence = math.Min(math.Abs(compound), 1.0)
	case compound <= negativeThreshold:
		judgment.Label = models.SentimentNegative
		judgment.Confidence = math.Min(math.Abs(compound), 1.0)
	default:
		judgment.Label = models.SentimentNeutral
		judgment.Confidence = 1.0 - math.Min(math.Abs(compound), 1.0)
	}

	return judgment, nil
}
