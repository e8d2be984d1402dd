package consumers

import (
	"context"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/spacesedan/revi/internal/clients"
	"github.com/spacesedan/revi/internal/clients/kafka_client"
	"github.com/spacesedan/revi/internal/db"
	"github.com/spacesedan/revi/internal/engine"
	"github.com/spacesedan/revi/internal/models"
	"github.com/spacesedan/revi/internal/utils"
)

const topIssueMaxLen = 100

// StartInsightsConsumer recomputes the cached read-model for products whose
// review set changed: the weighted aggregate rating plus per-polarity
// insight reports, stored in Valkey.
func StartInsightsConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	includeShadow := os.Getenv("AGGREGATE_EXCLUDE_SHADOW") != "true"

	slog.Info("[InsightsConsumer] Listening for insight requests")

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[InsightsConsumer] Consumer shutting down...")
			return
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var request models.InsightRequest
			if err := utils.DeserializeFromJSON(msg.Value, &request); err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			if err := recomputeProductInsights(ctx, request.ProductID, includeShadow); err != nil {
				slog.Error("[InsightsConsumer] Failed to recompute insights",
					slog.String("product_id", request.ProductID),
					slog.String("error", err.Error()))
				continue
			}

			if err := committer.Commit(msg); err != nil {
				slog.Warn("[InsightsConsumer] Failed to commit offset",
					slog.String("error", err.Error()))
			}
		}
	}
}

func recomputeProductInsights(ctx context.Context, productID string, includeShadow bool) error {
	records, err := db.GetProductReviews(ctx, productID)
	if err != nil {
		return err
	}

	var positive, negative []models.ReviewRecord
	for _, r := range records {
		if r.IsShadow {
			continue
		}
		switch r.Category {
		case models.CategoryPublicPositive:
			positive = append(positive, r)
		case models.CategoryPublicNegative:
			negative = append(negative, r)
		}
	}

	snapshot := models.ProductInsightSnapshot{
		ProductID:        productID,
		Aggregate:        engine.Aggregate(records, includeShadow),
		PositiveInsights: engine.Summarize(positive, engine.PolarityPositive),
		NegativeInsights: engine.Summarize(negative, engine.PolarityNegative),
		TopIssues:        topIssues(negative),
	}

	data, err := utils.SerializeToJSON(snapshot)
	if err != nil {
		return err
	}

	return clients.GetValkeyClient().CacheInsightSnapshot(ctx, productID, data)
}

// topIssues is the short digest shown on the negative tab: the first few
// negative reviews, truncated.
func topIssues(negative []models.ReviewRecord) []string {
	issues := make([]string, 0, 3)
	for _, r := range negative {
		if len(issues) == 3 {
			break
		}
		issues = append(issues, truncateIssue(r.Text))
	}
	return issues
}

// truncateIssue cuts long texts at a rune boundary so Romanian diacritics
// are never split mid-sequence.
func truncateIssue(text string) string {
	if len(text) <= topIssueMaxLen {
		return text
	}
	cut := topIssueMaxLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
