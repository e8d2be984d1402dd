package kafka_client

import "time"

const (
	KAFKA_TOPIC_REVIEW_SUBMITTED = "review-submitted" // raw submissions from the storefront
	KAFKA_TOPIC_REVIEW_ANALYZED  = "review-analyzed"  // classified and scored reviews
	KAFKA_TOPIC_SUPPORT_TICKETS  = "support-tickets"  // support-category reviews for the ticketing side
	KAFKA_TOPIC_INSIGHT_REQUESTS = "insight-requests" // products whose cached insights need recomputing
)

const (
	BATCH_SIZE    = 25
	BATCH_TIMEOUT = 5 * time.Second
	MAX_RETRIES   = 5
	RETRY_DELAY   = 2 * time.Second
)
