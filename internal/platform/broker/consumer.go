package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/segmentio/kafka-go"
)

// Refresher is the piece of the booking module the consumer drives: a full
// re-fetch of the authoritative view. Events never patch local state.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type KafkaConsumer struct {
	reader *kafka.Reader
}

func NewKafkaConsumer(brokers []string, groupID, topic string) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   topic,
		}),
	}
}

type changeEvent struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
}

// Consume reads change events until the context is cancelled. Any event on a
// booking-related topic triggers a refresh; malformed payloads still trigger
// one, since the topic itself already signals that the remote state moved.
func (c *KafkaConsumer) Consume(ctx context.Context, refresher Refresher) error {
	defer c.reader.Close()
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Warn("kafka read error", slog.Any("error", err))
			continue
		}

		var event changeEvent
		if err := json.Unmarshal(m.Value, &event); err != nil {
			event.Entity = inferEntityFromTopic(m.Topic)
			event.Action = "unknown"
		}
		slog.Info("kafka change event",
			slog.String("topic", m.Topic),
			slog.Int64("offset", m.Offset),
			slog.String("entity", event.Entity),
			slog.String("action", event.Action),
		)
		if err := refresher.Refresh(ctx); err != nil {
			slog.Warn("event-driven refresh failed", slog.Any("error", err))
		}
	}
}

func inferEntityFromTopic(topic string) string {
	if idx := strings.LastIndex(topic, "."); idx >= 0 {
		return strings.TrimSpace(topic[:idx])
	}
	return strings.TrimSpace(topic)
}

// StartKafkaConsumers launches one consumer goroutine per topic.
func StartKafkaConsumers(ctx context.Context, refresher Refresher, brokers []string, groupID string, topics []string) {
	for _, topic := range topics {
		consumer := NewKafkaConsumer(brokers, groupID, topic)
		go func(topic string) {
			if err := consumer.Consume(ctx, refresher); err != nil && ctx.Err() == nil {
				slog.Error("kafka consumer stopped", slog.String("topic", topic), slog.Any("error", err))
			}
		}(topic)
	}
}
