package logsink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

// StreamAdder is the part of a go-redis client used by RedisStream.
type StreamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// RedisStream appends entries to a capped Redis stream that the security
// monitoring consumers read.
type RedisStream struct {
	client StreamAdder
	stream string
	maxLen int64
}

// NewRedisStream returns a sink writing to stream. maxLen > 0 trims the
// stream approximately to that many entries.
func NewRedisStream(client StreamAdder, stream string, maxLen int64) *RedisStream {
	return &RedisStream{client: client, stream: stream, maxLen: maxLen}
}

func (s *RedisStream) Name() string { return "redis:" + s.stream }

func (s *RedisStream) Forward(ctx context.Context, e logger.Entry) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode entry %s: %w", e.ID, err)
	}
	values := map[string]any{
		"id":    e.ID,
		"level": string(e.Level),
		"area":  e.Area,
		"entry": string(payload),
	}
	if e.Error != nil {
		values["code"] = e.Error.Code
	}
	args := &redis.XAddArgs{Stream: s.stream, Values: values}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}
	return s.client.XAdd(ctx, args).Err()
}
