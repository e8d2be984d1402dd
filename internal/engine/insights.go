package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spacesedan/revi/internal/lexicon"
	"github.com/spacesedan/revi/internal/models"
	"github.com/spacesedan/revi/internal/textutil"
)

// Polarity declares which side of the ledger a review collection sits on.
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
)

const (
	insightValueThreshold = 50.0
	maxThemes             = 5
	maxCommonPoints       = 3
	sentenceMinLen        = 15
	sentenceMaxLen        = 150
)

// Summarize distills a single-polarity review collection into ranked
// themes, representative points and a narrative summary. The average value
// score covers the whole input, not just the high-value subset.
func Summarize(reviews []models.ReviewRecord, polarity Polarity) models.InsightReport {
	if len(reviews) == 0 {
		return models.InsightReport{
			Summary:      fmt.Sprintf("No %s reviews yet.", polarity),
			KeyThemes:    []models.Theme{},
			CommonPoints: []string{},
		}
	}

	highValue := selectHighValue(reviews)
	themes := extractThemes(highValue)
	points := extractCommonPoints(highValue, reviews, polarity)

	var total float64
	for _, r := range reviews {
		total += r.ValueScore
	}
	avg := math.Round(total/float64(len(reviews))*10) / 10

	return models.InsightReport{
		Summary:           summaryText(themes, polarity, len(reviews)),
		KeyThemes:         themes,
		CommonPoints:      points,
		ReviewCount:       len(reviews),
		AverageValueScore: avg,
	}
}

// selectHighValue keeps the reviews worth listening to; when none clear the
// bar, the first few inputs stand in.
func selectHighValue(reviews []models.ReviewRecord) []models.ReviewRecord {
	var high []models.ReviewRecord
	for _, r := range reviews {
		if r.ValueScore >= insightValueThreshold {
			high = append(high, r)
		}
	}
	if len(high) == 0 {
		if len(reviews) > 5 {
			return reviews[:5]
		}
		return reviews
	}
	return high
}

// extractThemes accumulates keyword hits per feature bucket, weighted by
// each review's value score, and ranks buckets by accumulated weight.
func extractThemes(reviews []models.ReviewRecord) []models.Theme {
	type accum struct {
		count  int
		weight float64
	}
	scores := make(map[string]*accum)

	for _, r := range reviews {
		weight := r.ValueScore / 100
		for _, bucket := range lexicon.FeatureBuckets {
			hits := textutil.CountTerms(r.Text, bucket.Keywords)
			if hits == 0 {
				continue
			}
			a, ok := scores[bucket.Name]
			if !ok {
				a = &accum{}
				scores[bucket.Name] = a
			}
			a.count += hits
			a.weight += weight * float64(hits)
		}
	}

	themes := make([]models.Theme, 0, len(scores))
	for _, bucket := range lexicon.FeatureBuckets {
		if a, ok := scores[bucket.Name]; ok {
			themes = append(themes, models.Theme{
				Name:     bucket.Name,
				Mentions: a.count,
				Weight:   math.Round(a.weight*100) / 100,
			})
		}
	}

	sort.SliceStable(themes, func(i, j int) bool {
		return themes[i].Weight > themes[j].Weight
	})

	if len(themes) > maxThemes {
		themes = themes[:maxThemes]
	}
	return themes
}

// extractCommonPoints pulls representative sentences from the first 10
// high-value reviews: mid-length sentences carrying a polarity indicator,
// ranked by exact-text frequency. When fewer than 3 emerge, first sentences
// of the earliest input reviews backfill the list.
func extractCommonPoints(highValue, all []models.ReviewRecord, polarity Polarity) []string {
	indicators := lexicon.PositiveIndicators
	if polarity == PolarityNegative {
		indicators = lexicon.NegativeIndicators
	}

	counts := make(map[string]int)
	var order []string

	scanned := highValue
	if len(scanned) > 10 {
		scanned = scanned[:10]
	}
	for _, r := range scanned {
		for _, sentence := range textutil.SplitSentences(r.Text) {
			if len(sentence) < sentenceMinLen || len(sentence) > sentenceMaxLen {
				continue
			}
			if !textutil.ContainsAny(sentence, indicators) {
				continue
			}
			if _, seen := counts[sentence]; !seen {
				order = append(order, sentence)
			}
			counts[sentence]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	points := order
	if len(points) > maxCommonPoints {
		points = points[:maxCommonPoints]
	}
	points = append([]string(nil), points...)

	if len(points) < maxCommonPoints {
		backfill := all
		if len(backfill) > 5 {
			backfill = backfill[:5]
		}
		for _, r := range backfill {
			sentences := textutil.SplitSentences(r.Text)
			if len(sentences) == 0 {
				continue
			}
			first := sentences[0]
			if first == "" || containsString(points, first) {
				continue
			}
			points = append(points, first)
			if len(points) >= maxCommonPoints {
				break
			}
		}
	}

	if points == nil {
		points = []string{}
	}
	return points
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// summaryText builds the narrative paragraph. Positive collections get an
// encouraging close, negative ones an attention-needed close.
func summaryText(themes []models.Theme, polarity Polarity, count int) string {
	if len(themes) == 0 {
		return fmt.Sprintf("Based on %d %s reviews, customers have mixed feedback.", count, polarity)
	}

	topTheme := themes[0].Name
	var others string
	if len(themes) > 1 {
		names := make([]string, 0, 2)
		for _, t := range themes[1:] {
			names = append(names, t.Name)
			if len(names) == 2 {
				break
			}
		}
		others = strings.Join(names, ", ")
	}

	if polarity == PolarityPositive {
		summary := fmt.Sprintf("Based on %d positive reviews, customers particularly appreciate the %s. ", count, topTheme)
		if others != "" {
			summary += fmt.Sprintf("Other frequently praised aspects include %s. ", others)
		}
		return summary + "These reviews tend to be detailed and specific, providing valuable insights."
	}

	summary := fmt.Sprintf("Based on %d negative reviews, the main concerns relate to %s. ", count, topTheme)
	if others != "" {
		summary += fmt.Sprintf("Customers also mention issues with %s. ", others)
	}
	return summary + "These reviews highlight areas that may need attention."
}
