package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spacesedan/revi/config"
	"github.com/spacesedan/revi/internal/capability"
	"github.com/spacesedan/revi/internal/clients"
	"github.com/spacesedan/revi/internal/clients/kafka_client"
	"github.com/spacesedan/revi/internal/consumers"
	"github.com/spacesedan/revi/internal/db"
	"github.com/spacesedan/revi/internal/engine"
	"github.com/spacesedan/revi/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hugotProvider, err := capability.GetHugotProvider()
	if err != nil {
		slog.Error("[Main] Failed to initialize model provider",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer hugotProvider.Destroy()

	var sentiment capability.SentimentProvider = hugotProvider
	if os.Getenv("SENTIMENT_PROVIDER") == "vader" {
		slog.Info("[Main] Using VADER sentiment provider")
		sentiment = capability.NewVaderSentiment()
	}

	moderator := engine.NewModerator(sentiment, hugotProvider)

	clients.InitValkey()
	defer clients.CloseValkey()
	db.InitDynamoDB()

	cfg := kafka_client.GetKafkaConfig()
	for {
		err := kafka_client.InitProducer(cfg)
		if err == nil {
			break
		}

		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer kafka_client.CloseProducer()

	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_REVIEW_SUBMITTED, consumers.NewReviewConsumer(moderator))

	if err := kafka_client.StartConsumer(ctx, cfg); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}
