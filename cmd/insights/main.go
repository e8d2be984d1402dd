package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spacesedan/revi/config"
	"github.com/spacesedan/revi/internal/clients"
	"github.com/spacesedan/revi/internal/clients/kafka_client"
	"github.com/spacesedan/revi/internal/consumers"
	"github.com/spacesedan/revi/internal/db"
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

	clients.InitValkey()
	defer clients.CloseValkey()
	db.InitDynamoDB()

	cfg := kafka_client.GetKafkaConfig()
	cfg.Topic = kafka_client.KAFKA_TOPIC_INSIGHT_REQUESTS

	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_INSIGHT_REQUESTS, consumers.StartInsightsConsumer)

	if err := kafka_client.StartConsumer(ctx, cfg); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}
