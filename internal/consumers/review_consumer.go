package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/spacesedan/revi/internal/clients"
	"github.com/spacesedan/revi/internal/clients/kafka_client"
	"github.com/spacesedan/revi/internal/db"
	"github.com/spacesedan/revi/internal/engine"
	"github.com/spacesedan/revi/internal/models"
	"github.com/spacesedan/revi/internal/utils"
)

var analysisBuffer = utils.NewBatchBuffer[models.ReviewAnalysisResult]()

// NewReviewConsumer builds the handler for the review-submitted topic. The
// moderator carries the injected capability providers; the handler owns
// batching, routing and persistence.
func NewReviewConsumer(moderator *engine.Moderator) func(ctx context.Context, consumer *kafka.Consumer) {
	return func(ctx context.Context, consumer *kafka.Consumer) {
		iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
		committer := kafka_client.NewCommitHandler(ctx, consumer)

		slog.Info("[ReviewConsumer] Listening for submitted reviews")

		ticker := time.NewTicker(utils.BATCH_TIMEOUT)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Warn("[ReviewConsumer] Consumer shutting down...")
				flushAnalyses(ctx, committer)
				return
			case <-ticker.C:
				flushAnalyses(ctx, committer)
			default:
				msg, err := iterator.Next()
				if err != nil {
					utils.HandleConsumerError(err)
					continue
				}

				var submissions []models.ReviewSubmission
				if err := utils.DeserializeFromJSON(msg.Value, &submissions); err != nil {
					utils.HandleConsumerError(err)
					continue
				}
				if len(submissions) == 0 {
					continue
				}

				utils.TrackMessage(submissions[0].ReviewID, msg)

				for _, submission := range submissions {
					if clients.GetValkeyClient().IsReviewProcessed(ctx, submission.ReviewID) {
						slog.Info("[ReviewConsumer] Skipping already processed review",
							slog.String("review_id", submission.ReviewID))
						continue
					}

					result, err := moderator.ProcessReview(ctx, submission)
					if err != nil {
						// No partial analysis is ever stored; the review
						// stays unmarked so a redelivery can retry it.
						slog.Error("[ReviewConsumer] Failed to process review",
							slog.String("review_id", submission.ReviewID),
							slog.String("error", err.Error()))
						continue
					}

					routeAnalysis(result)
					analysisBuffer.Add(result)
				}

				if analysisBuffer.Size() >= utils.BATCH_SIZE {
					flushAnalyses(ctx, committer)
				}
			}
		}
	}
}

// routeAnalysis publishes the category-specific side effects: support
// tickets for support reviews, nothing extra for the rest. Rejection
// messaging for the storefront is derived from the reason downstream.
func routeAnalysis(result models.ReviewAnalysisResult) {
	if result.Classification.Category != models.CategorySupport {
		return
	}

	priority := "normal"
	if result.IsVerifiedPurchase {
		priority = "high"
	}

	response := result.Classification.SuggestedResponse
	if result.ReviewerEmail == "" {
		response += " Please provide your email so we can reach you."
	}

	ticket := models.SupportTicketRequest{
		ReviewID:          result.ReviewID,
		ProductID:         result.Product.ProductID,
		Priority:          priority,
		IssueDescription:  result.Text,
		CustomerEmail:     result.ReviewerEmail,
		AutomaticResponse: response,
		Severity:          result.Classification.Severity,
	}

	if err := kafka_client.PublishToKafka(kafka_client.KAFKA_TOPIC_SUPPORT_TICKETS, result.ReviewID, ticket); err != nil {
		slog.Error("[ReviewConsumer] Failed to publish support ticket",
			slog.String("review_id", result.ReviewID),
			slog.String("error", err.Error()))
	}
}

// flushAnalyses persists the buffered batch, publishes the analyzed results
// and per-product insight recompute requests, marks reviews processed and
// commits the offset.
func flushAnalyses(ctx context.Context, committer *kafka_client.KafkaCommitHandler) {
	batch := analysisBuffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	if err := db.BatchInsertReviewAnalyses(ctx, batch); err != nil {
		slog.Error("[ReviewConsumer] Failed to store analyses",
			slog.String("error", err.Error()))
		return
	}

	for i := 0; i < 3; i++ {
		err := kafka_client.PublishToKafka(kafka_client.KAFKA_TOPIC_REVIEW_ANALYZED, batch[0].ReviewID, batch)
		if err == nil {
			break
		}
		slog.Warn("[ReviewConsumer] Batch publishing failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		time.Sleep(2 * time.Second)
	}

	products := make(map[string]struct{})
	for _, result := range batch {
		if err := clients.GetValkeyClient().MarkReviewProcessed(ctx, result.ReviewID); err != nil {
			slog.Warn("[ReviewConsumer] Failed to mark review processed",
				slog.String("review_id", result.ReviewID),
				slog.String("error", err.Error()))
		}
		products[result.Product.ProductID] = struct{}{}
	}

	for productID := range products {
		err := kafka_client.PublishToKafka(kafka_client.KAFKA_TOPIC_INSIGHT_REQUESTS, productID,
			models.InsightRequest{ProductID: productID})
		if err != nil {
			slog.Warn("[ReviewConsumer] Failed to request insight recompute",
				slog.String("product_id", productID),
				slog.String("error", err.Error()))
		}
	}

	for _, result := range batch {
		trackedMsg, found := utils.GetMessageForReview(result.ReviewID)
		if !found {
			continue
		}
		if err := committer.Commit(trackedMsg); err != nil {
			slog.Warn("[ReviewConsumer] Failed to commit offset",
				slog.String("error", err.Error()))
		}
	}
}
