package models

// ReviewSubmission is the payload consumed from the review-submitted topic.
// The product context travels with the review so the moderator needs no
// catalog lookup of its own.
type ReviewSubmission struct {
	Review
	ReviewerEmail string         `json:"reviewer_email,omitempty"`
	Product       ProductContext `json:"product"`
}

// ReviewAnalysisResult is the persisted and republished outcome of the
// moderation pipeline for one review.
type ReviewAnalysisResult struct {
	ReviewSubmission
	Classification ClassificationResult `json:"classification"`
	ValueScore     float64              `json:"value_score"`
	IsShadow       bool                 `json:"is_shadow"`
	Language       string               `json:"language"`
}

// ReviewRecord is the read-time shape fed to the aggregate and insight
// engines: a finalized, already-scored review.
type ReviewRecord struct {
	ReviewID           string   `json:"review_id"`
	ProductID          string   `json:"product_id"`
	Rating             int      `json:"rating"`
	Text               string   `json:"review_text"`
	ValueScore         float64  `json:"value_score"`
	Category           Category `json:"category"`
	IsShadow           bool     `json:"is_shadow"`
	IsVerifiedPurchase bool     `json:"is_verified_purchase"`
}

// AggregateRating is the weighted product rating over a review collection.
type AggregateRating struct {
	WeightedRating  float64 `json:"weighted_rating"`
	TotalReviews    int     `json:"total_reviews"`
	PositiveRatio   float64 `json:"positive_ratio"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// Theme is one ranked feature bucket in an insight report.
type Theme struct {
	Name     string  `json:"name"`
	Mentions int     `json:"mentions"`
	Weight   float64 `json:"weight"`
}

// InsightReport distills one polarity of a product's reviews into themes,
// representative points and a narrative summary.
type InsightReport struct {
	Summary           string   `json:"summary"`
	KeyThemes         []Theme  `json:"key_themes"`
	CommonPoints      []string `json:"common_points"`
	ReviewCount       int      `json:"review_count"`
	AverageValueScore float64  `json:"average_value_score"`
}

// SupportTicketRequest is published for support-category reviews so the
// ticketing side can pick them up.
type SupportTicketRequest struct {
	ReviewID          string   `json:"review_id"`
	ProductID         string   `json:"product_id"`
	Priority          string   `json:"priority"`
	IssueDescription  string   `json:"issue_description"`
	CustomerEmail     string   `json:"customer_email,omitempty"`
	AutomaticResponse string   `json:"automatic_response"`
	Severity          Severity `json:"severity"`
}

// InsightRequest asks the insights worker to recompute the cached snapshot
// for one product.
type InsightRequest struct {
	ProductID string `json:"product_id"`
}

// ProductInsightSnapshot is the cached read-model for one product: the
// weighted rating plus per-polarity insight reports.
type ProductInsightSnapshot struct {
	ProductID        string          `json:"product_id"`
	Aggregate        AggregateRating `json:"aggregate"`
	PositiveInsights InsightReport   `json:"positive_insights"`
	NegativeInsights InsightReport   `json:"negative_insights"`
	TopIssues        []string        `json:"top_issues,omitempty"`
}
