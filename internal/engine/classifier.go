// Package engine contains the four moderation engines: classification,
// value scoring, aggregate rating and insight extraction. All of them are
// pure functions over caller-supplied snapshots and safe for concurrent use.
package engine

import (
	"fmt"
	"strings"

	"github.com/spacesedan/revi/internal/lexicon"
	"github.com/spacesedan/revi/internal/models"
	"github.com/spacesedan/revi/internal/textutil"
)

// ClassificationInput bundles everything the decision procedure looks at.
// The sentiment judgment comes from an external provider; the engine never
// calls one itself.
type ClassificationInput struct {
	Review    models.Review
	Product   models.ProductContext
	Sentiment models.SentimentJudgment
}

var positiveResponses = []string{
	"Thank you so much for your wonderful review! We're thrilled that you're enjoying your purchase.",
	"We really appreciate you taking the time to share your experience with us. Thank you!",
	"Thank you for your kind words! We're so happy you're satisfied with your purchase.",
}

const (
	negativeResponse = "We're sorry to hear about your experience. We take all feedback seriously and will use this to improve."
	supportResponse  = "Your issue has been recognized. A support agent will contact you shortly to resolve this matter."
)

// Classify maps a review to exactly one category. Rules run in strict
// priority order and the first match wins; the rating-driven default at the
// end makes the function total. A 5-star review with negative sentiment is
// still published as positive: the rating is trusted over the model.
func Classify(in ClassificationInput) models.ClassificationResult {
	text := in.Review.Text
	rating := in.Review.Rating

	hasSupportKeywords := textutil.ContainsAny(text, lexicon.SupportKeywords)
	isGeneric := isGenericReview(text, rating)
	matchedPoints := textutil.MatchKeypoints(text, in.Product.Keypoints)

	category := determineCategory(in, hasSupportKeywords, isGeneric, matchedPoints)

	result := models.ClassificationResult{
		ReviewID:          in.Review.ReviewID,
		Category:          category,
		Confidence:        calculateConfidence(in.Sentiment.Confidence, len(matchedPoints), isGeneric, hasSupportKeywords),
		Reason:            buildReason(category, in.Sentiment.Label, matchedPoints),
		Tags:              ExtractTags(text),
		Severity:          determineSeverity(category, rating),
		MatchedPoints:     matchedPoints,
		RecommendedAction: recommendedAction(category),
		SuggestedResponse: suggestedResponse(category, rating),
	}
	return result
}

func determineCategory(in ClassificationInput, hasSupportKeywords, isGeneric bool, matchedPoints []string) models.Category {
	rating := in.Review.Rating
	text := in.Review.Text

	// Technical complaints outrank everything else.
	if hasSupportKeywords && rating <= 3 {
		return models.CategorySupport
	}

	if contradictsDescription(text, in.Product.FullDescription()) {
		return models.CategoryRejected
	}

	// A long, low-rated review that touches none of the keypoints is
	// treated as off-topic rather than merely unhelpful.
	if len(matchedPoints) == 0 && len(text) > 100 && rating <= 2 {
		return models.CategoryRejected
	}

	if isGeneric && len(matchedPoints) == 0 {
		return models.CategoryShadow
	}

	switch {
	case rating >= 4:
		return models.CategoryPublicPositive
	case rating <= 2:
		return models.CategoryPublicNegative
	default:
		if in.Sentiment.Label == models.SentimentPositive {
			return models.CategoryPublicPositive
		}
		return models.CategoryPublicNegative
	}
}

// isGenericReview flags canned 5-star affirmations: very short text that
// either matches a known pattern or carries at most 3 tokens.
func isGenericReview(text string, rating int) bool {
	if rating != 5 {
		return false
	}

	clean := strings.ToLower(strings.TrimSpace(text))
	if len(clean) >= 30 {
		return false
	}

	for _, pattern := range lexicon.GenericPatterns {
		if pattern.MatchString(clean) {
			return true
		}
	}
	return len(strings.Fields(clean)) <= 3
}

// contradictsDescription compares color mentions. Both sides naming colors
// with no overlap means the reviewer is talking about a different product.
func contradictsDescription(reviewText, description string) bool {
	reviewColors := textutil.MatchingTerms(reviewText, lexicon.Colors)
	descriptionColors := textutil.MatchingTerms(description, lexicon.Colors)

	if len(reviewColors) == 0 || len(descriptionColors) == 0 {
		return false
	}

	for _, c := range reviewColors {
		for _, d := range descriptionColors {
			if c == d {
				return false
			}
		}
	}
	return true
}

// ExtractTags runs independently of the category decision. Buckets are
// evaluated in their fixed order so later truncation stays deterministic.
func ExtractTags(text string) []string {
	var tags []string
	for _, bucket := range lexicon.FeatureBuckets {
		if textutil.ContainsAny(text, bucket.Keywords) {
			tags = append(tags, bucket.Name)
		}
	}
	return tags
}

// calculateConfidence starts from the sentiment confidence, rewards matched
// keypoints, and floors (never overrides) on strong rule signals.
func calculateConfidence(sentimentConfidence float64, matchedCount int, isGeneric, hasSupportKeywords bool) float64 {
	confidence := sentimentConfidence

	if matchedCount > 0 {
		bonus := matchedCount
		if bonus > 3 {
			bonus = 3
		}
		confidence += 0.1 * float64(bonus)
	}

	if isGeneric && confidence < 0.85 {
		confidence = 0.85
	}
	if hasSupportKeywords && confidence < 0.80 {
		confidence = 0.80
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	if confidence < 0 {
		confidence = 0
	}
	return confidence
}

func buildReason(category models.Category, sentimentLabel string, matchedPoints []string) string {
	mentions := func() string {
		if len(matchedPoints) == 0 {
			return ""
		}
		top := matchedPoints
		if len(top) > 3 {
			top = top[:3]
		}
		return fmt.Sprintf(" Mentions product features: %s.", strings.Join(top, ", "))
	}

	switch category {
	case models.CategoryPublicPositive:
		return fmt.Sprintf("Positive review with %s sentiment.%s", sentimentLabel, mentions())
	case models.CategoryPublicNegative:
		return fmt.Sprintf("Negative review with %s sentiment.%s", sentimentLabel, mentions())
	case models.CategorySupport:
		return "Review contains technical issues or support requests that require attention."
	case models.CategoryShadow:
		return "Generic positive review without substantive content. Published but shadow-banned."
	case models.CategoryRejected:
		return "Review is irrelevant or contradicts product description."
	}
	return "Review classified based on content analysis."
}

func determineSeverity(category models.Category, rating int) models.Severity {
	switch {
	case category == models.CategorySupport && rating <= 2:
		return models.SeverityHigh
	case category == models.CategorySupport:
		return models.SeverityMedium
	case category == models.CategoryPublicNegative && rating <= 2:
		return models.SeverityHigh
	default:
		return models.SeverityLow
	}
}

func recommendedAction(category models.Category) models.Action {
	switch category {
	case models.CategoryPublicPositive, models.CategoryPublicNegative:
		return models.ActionPublish
	case models.CategorySupport:
		return models.ActionCreateTicket
	case models.CategoryShadow:
		return models.ActionPublishShadow
	case models.CategoryRejected:
		return models.ActionReject
	}
	return models.ActionReview
}

// suggestedResponse picks acknowledgement text by category. Positive reviews
// rotate through three templates keyed on rating mod 3, which is
// deterministic on purpose. Shadow and rejected reviews get no response
// here; rejection messaging is the caller's job, built from the reason.
func suggestedResponse(category models.Category, rating int) string {
	switch category {
	case models.CategoryPublicPositive:
		return positiveResponses[rating%len(positiveResponses)]
	case models.CategoryPublicNegative:
		return negativeResponse
	case models.CategorySupport:
		return supportResponse
	}
	return ""
}
