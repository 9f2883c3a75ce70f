package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
)

// InvalidContextKey lists context keys whose values could not be encoded.
const InvalidContextKey = "context_invalid"

// Entry is the record forwarded to sinks.
type Entry struct {
	ID          string            `json:"id"`
	Level       Level             `json:"level"`
	Message     string            `json:"message"`
	Context     map[string]any    `json:"context,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
	Area        string            `json:"area,omitempty"`
	Environment Environment       `json:"environment"`
	TraceID     string            `json:"trace_id,omitempty"`
	Error       *apperr.LogRecord `json:"error,omitempty"`
}

// sanitize returns a copy of fields in which every value that cannot be
// JSON encoded is replaced with a placeholder naming its type. The value
// itself is never formatted since it may be cyclic. The offending keys are
// listed under InvalidContextKey.
func sanitize(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]any, len(fields))
	var invalid []string
	for k, v := range fields {
		if _, err := json.Marshal(v); err != nil {
			out[k] = fmt.Sprintf("<unserializable %T>", v)
			invalid = append(invalid, k)
			continue
		}
		out[k] = v
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		out[InvalidContextKey] = invalid
	}
	return out
}

// TraceID returns the OpenTelemetry trace id carried by ctx, or "".
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return sc.TraceID().String()
	}
	return ""
}
