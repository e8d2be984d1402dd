package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/spacesedan/revi/internal/clients"
	"github.com/spacesedan/revi/internal/models"
)

const REVIEW_ANALYSES_TABLE_NAME = "ReviewAnalyses"

var dbClient *dynamodb.Client

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

// reviewAnalysisItem is the persisted shape: product_id partition key,
// review_id sort key, everything the read side needs to rebuild a
// ReviewRecord plus the analysis detail for the admin surface.
type reviewAnalysisItem struct {
	ProductID          string   `dynamodbav:"product_id"`
	ReviewID           string   `dynamodbav:"review_id"`
	Rating             int      `dynamodbav:"rating"`
	ReviewText         string   `dynamodbav:"review_text"`
	ValueScore         float64  `dynamodbav:"value_score"`
	Category           string   `dynamodbav:"category"`
	Confidence         float64  `dynamodbav:"confidence"`
	Reason             string   `dynamodbav:"reason"`
	Tags               []string `dynamodbav:"tags,omitempty"`
	Severity           string   `dynamodbav:"severity"`
	MatchedPoints      []string `dynamodbav:"matched_description_points,omitempty"`
	RecommendedAction  string   `dynamodbav:"recommended_action"`
	SuggestedResponse  string   `dynamodbav:"suggested_automatic_response,omitempty"`
	IsShadow           bool     `dynamodbav:"is_shadow"`
	IsVerifiedPurchase bool     `dynamodbav:"is_verified_purchase"`
	Language           string   `dynamodbav:"language"`
	CreatedAt          int64    `dynamodbav:"created_at"`
}

func toItem(result models.ReviewAnalysisResult) reviewAnalysisItem {
	return reviewAnalysisItem{
		ProductID:          result.Product.ProductID,
		ReviewID:           result.ReviewID,
		Rating:             result.Rating,
		ReviewText:         result.Text,
		ValueScore:         result.ValueScore,
		Category:           string(result.Classification.Category),
		Confidence:         result.Classification.Confidence,
		Reason:             result.Classification.Reason,
		Tags:               result.Classification.Tags,
		Severity:           string(result.Classification.Severity),
		MatchedPoints:      result.Classification.MatchedPoints,
		RecommendedAction:  string(result.Classification.RecommendedAction),
		SuggestedResponse:  result.Classification.SuggestedResponse,
		IsShadow:           result.IsShadow,
		IsVerifiedPurchase: result.IsVerifiedPurchase,
		Language:           result.Language,
		CreatedAt:          time.Now().Unix(),
	}
}

// BatchInsertReviewAnalyses writes a batch of analysis results, retrying
// unprocessed items with doubling backoff.
func BatchInsertReviewAnalyses(ctx context.Context, results []models.ReviewAnalysisResult) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	const maxBatchSize = 25
	for i := 0; i < len(results); i += maxBatchSize {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:
		}

		end := i + maxBatchSize
		if end > len(results) {
			end = len(results)
		}

		writeRequests := make([]types.WriteRequest, 0, maxBatchSize)
		for _, result := range results[i:end] {
			item, err := attributevalue.MarshalMap(toItem(result))
			if err != nil {
				return fmt.Errorf("[DynamoDB] Failed to marshal analysis for review %s: %w", result.ReviewID, err)
			}
			writeRequests = append(writeRequests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}

		out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				REVIEW_ANALYSES_TABLE_NAME: writeRequests,
			},
		})
		if err != nil {
			return fmt.Errorf("[DynamoDB] Failed to batch write review analyses: %w", err)
		}

		retryCount := 0
		backoff := 500 * time.Millisecond
		for len(out.UnprocessedItems) > 0 && retryCount < 3 {
			time.Sleep(backoff)
			backoff *= 2

			slog.Warn("[DynamoDB] Retrying unprocessed analysis items...",
				slog.Int("attempt", retryCount+1),
				slog.Int("remaining", len(out.UnprocessedItems[REVIEW_ANALYSES_TABLE_NAME])))

			out, err = dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: out.UnprocessedItems,
			})
			if err != nil {
				return fmt.Errorf("[DynamoDB] Retry error: %w", err)
			}
			retryCount++
		}

		if len(out.UnprocessedItems) > 0 {
			slog.Error("[DynamoDB] Some analysis items failed after retries",
				slog.Int("remaining", len(out.UnprocessedItems[REVIEW_ANALYSES_TABLE_NAME])))
		}
	}

	slog.Info("[DynamoDB] Successfully stored review analyses",
		slog.Int("count", len(results)))
	return nil
}

// GetProductReviews returns the finalized review records for one product,
// the snapshot the aggregate and insight engines read.
func GetProductReviews(ctx context.Context, productID string) ([]models.ReviewRecord, error) {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(REVIEW_ANALYSES_TABLE_NAME),
		KeyConditionExpression: aws.String("product_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: productID},
		},
	}

	var records []models.ReviewRecord
	paginator := dynamodb.NewQueryPaginator(dbClient, input)

	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Query for product reviews failed: %w", err)
		}

		var page []reviewAnalysisItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			slog.Error("[DynamoDB] Unable to unmarshal review page", slog.String("error", err.Error()))
			return nil, err
		}

		for _, item := range page {
			records = append(records, models.ReviewRecord{
				ReviewID:           item.ReviewID,
				ProductID:          item.ProductID,
				Rating:             item.Rating,
				Text:               item.ReviewText,
				ValueScore:         item.ValueScore,
				Category:           models.Category(item.Category),
				IsShadow:           item.IsShadow,
				IsVerifiedPurchase: item.IsVerifiedPurchase,
			})
		}
	}

	slog.Info("[DynamoDB] Successfully retrieved product reviews",
		slog.String("product_id", productID),
		slog.Int("count", len(records)))
	return records, nil
}
