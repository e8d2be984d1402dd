package models

// Category is the moderation disposition assigned to a review.
type Category string

const (
	CategoryPublicPositive Category = "public_positive"
	CategoryPublicNegative Category = "public_negative"
	CategorySupport        Category = "support"
	CategoryShadow         Category = "shadow"
	CategoryRejected       Category = "rejected"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type Action string

const (
	ActionPublish       Action = "publish"
	ActionPublishShadow Action = "publish_shadow"
	ActionCreateTicket  Action = "create_ticket"
	ActionReject        Action = "reject"
	ActionReview        Action = "review"
)

// Review is an immutable user submission. The language hint is advisory
// only and never blocks processing.
type Review struct {
	ReviewID           string `json:"review_id"`
	Text               string `json:"review_text"`
	Rating             int    `json:"rating"`
	IsVerifiedPurchase bool   `json:"is_verified_purchase"`
	Language           string `json:"language,omitempty"`
}

// ProductContext is the catalog side of a classification: what the product
// claims to be, and the keypoint phrases a relevant review should touch.
type ProductContext struct {
	ProductID       string   `json:"product_id"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description,omitempty"`
	Keypoints       []string `json:"keypoints,omitempty"`
}

// FullDescription is the catalog text a review is checked against: the
// short description, extended with the long one when the catalog supplies it.
func (p ProductContext) FullDescription() string {
	if p.LongDescription == "" {
		return p.Description
	}
	return p.Description + " " + p.LongDescription
}

// SentimentJudgment is the externally supplied sentiment verdict for a
// single review text.
type SentimentJudgment struct {
	Label      string  `json:"sentiment_label"`
	Confidence float64 `json:"confidence"`
}

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// ClassificationResult is the complete verdict for one review. Confidence is
// bounded to [0,1], MatchedPoints is always a subsequence of the product
// keypoints, and Tags draws only from the fixed feature vocabulary.
type ClassificationResult struct {
	ReviewID          string   `json:"review_id"`
	Category          Category `json:"category"`
	Confidence        float64  `json:"confidence"`
	Reason            string   `json:"reason"`
	Tags              []string `json:"tags"`
	Severity          Severity `json:"severity"`
	MatchedPoints     []string `json:"matched_description_points"`
	RecommendedAction Action   `json:"recommended_action"`
	SuggestedResponse string   `json:"suggested_automatic_response"`
}
