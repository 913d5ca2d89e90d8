package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	UserEventTypeDeleted = "user.deleted"
	PostEventTypeCreated = "post.created"
	PostEventTypeDeleted = "post.deleted"
)

// Publisher is what the use cases depend on; the Kafka client satisfies it.
type Publisher interface {
	PublishUserEvent(ctx context.Context, payload UserEventPayload) error
	PublishPostEvent(ctx context.Context, payload PostEventPayload) error
}

type UserEventPayload struct {
	EventType string    `json:"event_type"`
	UserID    uuid.UUID `json:"user_id"`
	EmittedAt time.Time `json:"emitted_at"`
}

type PostEventPayload struct {
	EventType string    `json:"event_type"`
	PostID    uuid.UUID `json:"post_id"`
	UserID    uuid.UUID `json:"user_id"`
	EmittedAt time.Time `json:"emitted_at"`
}

func (c *KafkaProducerClient) PublishUserEvent(ctx context.Context, payload UserEventPayload) error {
	if payload.EmittedAt.IsZero() {
		payload.EmittedAt = time.Now().UTC()
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.UserEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.UserID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) PublishPostEvent(ctx context.Context, payload PostEventPayload) error {
	if payload.EmittedAt.IsZero() {
		payload.EmittedAt = time.Now().UTC()
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.PostEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.PostID.String()),
		Value: value,
	})
}
