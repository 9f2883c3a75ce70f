// Package envelope renders taxonomy errors for clients: the JSON failure
// body used over HTTP and the status with details used over gRPC.
//
// Only the code, the user message, the retry flag and the timestamp leave
// the process. Developer messages, context and causes never do.
package envelope

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
)

const (
	// InternalCode is reported for errors outside the taxonomy.
	InternalCode = "INTERNAL"

	internalMessage = "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
	contentType     = "application/json; charset=utf-8"
)

// Failure is the body of every failed response.
type Failure struct {
	Success bool `json:"success"`
	Error   Body `json:"error"`
}

type Body struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

// New builds the failure body for err. For a taxonomy error the result
// depends only on the error itself; anything else becomes an INTERNAL
// failure that does not echo err.Error().
func New(err error) Failure {
	if e, ok := apperr.From(err); ok {
		return Failure{Error: Body{
			Code:      e.Code(),
			Message:   e.UserMessage(),
			Retryable: e.Retryable(),
			Timestamp: e.Timestamp(),
		}}
	}
	return Failure{Error: Body{
		Code:      InternalCode,
		Message:   internalMessage,
		Timestamp: time.Now().UTC(),
	}}
}

// Status returns the HTTP status for err; 500 outside the taxonomy.
func Status(err error) int {
	if e, ok := apperr.From(err); ok {
		return e.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// Marshal returns the JSON failure body for err.
func Marshal(err error) ([]byte, error) {
	return json.Marshal(New(err))
}

// Write sends the failure for err. Rate-limited errors that carry
// retryAfterSeconds also get a Retry-After header.
func Write(w http.ResponseWriter, err error) {
	body, mErr := Marshal(err)
	status := Status(err)
	if mErr != nil {
		body, _ = json.Marshal(New(nil))
		status = http.StatusInternalServerError
	}
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("X-Content-Type-Options", "nosniff")
	if status == http.StatusTooManyRequests {
		if secs, ok := RetryAfter(err); ok {
			h.Set("Retry-After", strconv.Itoa(secs))
		}
	}
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// RetryAfter reads the retryAfterSeconds context entry of a taxonomy error.
func RetryAfter(err error) (int, bool) {
	e, ok := apperr.From(err)
	if !ok {
		return 0, false
	}
	switch v := e.Context()["retryAfterSeconds"].(type) {
	case int:
		return v, v > 0
	case int64:
		return int(v), v > 0
	case float64:
		return int(v), v > 0
	case time.Duration:
		secs := int(v / time.Second)
		return secs, secs > 0
	}
	return 0, false
}
