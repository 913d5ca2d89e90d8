package event

import (
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/devlinkhq/devlink/internal/config"
)

const (
	TopicUserEvents = "user.events"
	TopicPostEvents = "post.events"
)

type KafkaProducerClient struct {
	UserEventsWriter *kafka.Writer
	PostEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	userWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicUserEvents,
		Balancer: &kafka.LeastBytes{},
	}

	postWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPostEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		UserEventsWriter: userWriter,
		PostEventsWriter: postWriter,
	}, nil
}

func (c *KafkaProducerClient) Close() {
	if c.UserEventsWriter != nil {
		c.UserEventsWriter.Close()
	}
	if c.PostEventsWriter != nil {
		c.PostEventsWriter.Close()
	}
}
