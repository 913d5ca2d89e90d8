package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/devlinkhq/devlink/adapters/event"
	"github.com/devlinkhq/devlink/adapters/persistence"
	"github.com/devlinkhq/devlink/internal/config"
	"github.com/devlinkhq/devlink/pkg/logger"
)

// The worker tails the event topics: it audit-logs what happened and drops
// the cached profile browse listing so readers see deletions promptly.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	profileCache := persistence.NewRedisProfileCache(redisClient)

	userConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicUserEvents,
		GroupID:  "devlink-worker",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer userConsumer.Close()

	postConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicPostEvents,
		GroupID:  "devlink-worker",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer postConsumer.Close()

	ctx := context.Background()

	go consumeUserEvents(ctx, userConsumer, profileCache, appLogger)
	consumePostEvents(ctx, postConsumer, appLogger)
}

func consumeUserEvents(ctx context.Context, consumer *kafka.Reader, cache interface {
	Invalidate(ctx context.Context) error
}, appLogger logger.Logger) {
	appLogger.Info("Worker listening on topic " + event.TopicUserEvents)
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("failed to read message from Kafka", err)
			continue
		}

		var payload event.UserEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Error("failed to decode user event", err)
			continue
		}

		appLogger.Info("user event",
			zap.String("event_type", payload.EventType),
			zap.String("user_id", payload.UserID.String()),
			zap.Time("emitted_at", payload.EmittedAt),
		)

		if payload.EventType == event.UserEventTypeDeleted {
			if err := cache.Invalidate(ctx); err != nil {
				appLogger.Error("failed to invalidate profile listing", err)
			}
		}
	}
}

func consumePostEvents(ctx context.Context, consumer *kafka.Reader, appLogger logger.Logger) {
	appLogger.Info("Worker listening on topic " + event.TopicPostEvents)
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("failed to read message from Kafka", err)
			continue
		}

		var payload event.PostEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Error("failed to decode post event", err)
			continue
		}

		appLogger.Info("post event",
			zap.String("event_type", payload.EventType),
			zap.String("post_id", payload.PostID.String()),
			zap.String("user_id", payload.UserID.String()),
		)
	}
}
