package logsink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Goden-Gun/apperr-lib/pkg/kafka"
	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

// Publisher is the part of kafka.Manager used by the Kafka sink.
type Publisher interface {
	Send(ctx context.Context, msg kafka.Message) error
}

// Kafka publishes each entry as a JSON message keyed by entry id.
type Kafka struct {
	pub   Publisher
	topic string
}

// NewKafka returns a sink publishing to topic. An empty topic uses the
// publisher's default topic.
func NewKafka(pub Publisher, topic string) *Kafka {
	return &Kafka{pub: pub, topic: topic}
}

func (k *Kafka) Name() string { return "kafka" }

func (k *Kafka) Forward(ctx context.Context, e logger.Entry) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode entry %s: %w", e.ID, err)
	}
	return k.pub.Send(ctx, kafka.Message{
		Topic:   k.topic,
		Key:     []byte(e.ID),
		Value:   value,
		Headers: headersOf(e),
	})
}

func headersOf(e logger.Entry) map[string]string {
	h := map[string]string{
		"level":       string(e.Level),
		"environment": string(e.Environment),
	}
	if e.Area != "" {
		h["area"] = e.Area
	}
	if e.Error != nil {
		h["error_code"] = e.Error.Code
		h["error_category"] = string(e.Error.Category)
	}
	return h
}
