package apperr

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// now is swapped in tests.
var now = func() time.Time { return time.Now().UTC() }

// Error is the immutable record produced for every failure.
type Error struct {
	kind        *Kind
	userMessage string
	devMessage  string
	context     map[string]any
	cause       error
	timestamp   time.Time
	stack       []uintptr
}

// Option configures an Error at construction.
type Option func(*builder)

type builder struct {
	detail  string
	context map[string]any
	limits  map[string]int
	cause   error
}

func (b *builder) set(key string, value any) {
	if b.context == nil {
		b.context = make(map[string]any)
	}
	b.context[key] = value
}

// Detail sets the developer-facing message.
func Detail(msg string) Option {
	return func(b *builder) { b.detail = msg }
}

// Detailf sets a formatted developer-facing message.
func Detailf(format string, args ...any) Option {
	return func(b *builder) { b.detail = fmt.Sprintf(format, args...) }
}

// Field adds one context entry. Context never reaches end users.
func Field(key string, value any) Option {
	return func(b *builder) { b.set(key, value) }
}

// Fields merges a context map; later keys win.
func Fields(fields map[string]any) Option {
	return func(b *builder) {
		for k, v := range fields {
			b.set(k, v)
		}
	}
}

// Limit records a numeric limit in context and makes it available to the
// user message as the {key} placeholder. Only integers are accepted so no
// caller-controlled text can reach the user.
func Limit(key string, value int) Option {
	return func(b *builder) {
		if b.limits == nil {
			b.limits = make(map[string]int)
		}
		b.limits[key] = value
		b.set(key, value)
	}
}

// Cause attaches an underlying error, kept for logs and errors.Is/As.
func Cause(err error) Option {
	return func(b *builder) { b.cause = err }
}

// New builds an Error for the kind. It has no side effects.
func (k *Kind) New(opts ...Option) *Error {
	var b builder
	for _, opt := range opts {
		opt(&b)
	}
	detail := b.detail
	if detail == "" {
		detail = k.Name
	}
	return &Error{
		kind:        k,
		userMessage: renderUserMessage(k.UserMessage, b.limits),
		devMessage:  detail,
		context:     b.context,
		cause:       b.cause,
		timestamp:   now(),
		stack:       callers(3),
	}
}

func renderUserMessage(tmpl string, limits map[string]int) string {
	if len(limits) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(limits)*2)
	for k, v := range limits {
		pairs = append(pairs, "{"+k+"}", strconv.Itoa(v))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Error returns "[CODE] developer message" (and the cause, if any). It is
// meant for logs, never for end users.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.kind.Code, e.devMessage, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.kind.Code, e.devMessage)
}

func (e *Error) Kind() *Kind              { return e.kind }
func (e *Error) Code() string             { return e.kind.Code }
func (e *Error) Domain() Domain           { return e.kind.Domain }
func (e *Error) Category() Category       { return e.kind.Shape.Category }
func (e *Error) HTTPStatus() int          { return e.kind.Shape.HTTPStatus }
func (e *Error) Severity() Severity       { return e.kind.Shape.Severity }
func (e *Error) Retryable() bool          { return e.kind.Shape.Retryable }
func (e *Error) UserMessage() string      { return e.userMessage }
func (e *Error) DeveloperMessage() string { return e.devMessage }
func (e *Error) Timestamp() time.Time     { return e.timestamp }

// Context returns a copy of the context map, or nil when empty.
func (e *Error) Context() map[string]any {
	if len(e.context) == 0 {
		return nil
	}
	out := make(map[string]any, len(e.context))
	for k, v := range e.context {
		out[k] = v
	}
	return out
}

// Unwrap returns the cause for errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Is matches a *Kind (same condition) or a *Class (domain/category group).
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case *Kind:
		return e.kind == t
	case *Class:
		return t.matches(e.kind)
	}
	return false
}

// Record is a flat snapshot of an Error without stack or cause.
type Record struct {
	Code             string         `json:"code"`
	Domain           Domain         `json:"domain"`
	Category         Category       `json:"category"`
	HTTPStatus       int            `json:"httpStatus"`
	Severity         Severity       `json:"severity"`
	UserMessage      string         `json:"userMessage"`
	DeveloperMessage string         `json:"developerMessage"`
	Retryable        bool           `json:"retryable"`
	Context          map[string]any `json:"context,omitempty"`
	Timestamp        time.Time      `json:"timestamp"`
}

// Record returns the snapshot.
func (e *Error) Record() Record {
	return Record{
		Code:             e.kind.Code,
		Domain:           e.kind.Domain,
		Category:         e.kind.Shape.Category,
		HTTPStatus:       e.kind.Shape.HTTPStatus,
		Severity:         e.kind.Shape.Severity,
		UserMessage:      e.userMessage,
		DeveloperMessage: e.devMessage,
		Retryable:        e.kind.Shape.Retryable,
		Context:          e.Context(),
		Timestamp:        e.timestamp,
	}
}

// LogRecord is the full diagnostic form consumed by the logger.
type LogRecord struct {
	Record
	Cause string   `json:"cause,omitempty"`
	Stack []string `json:"stack,omitempty"`
}

// ToLogFormat returns the full record including stack frames and cause.
func (e *Error) ToLogFormat() LogRecord {
	lr := LogRecord{
		Record: e.Record(),
		Stack:  formatStack(e.stack),
	}
	if e.cause != nil {
		lr.Cause = e.cause.Error()
	}
	return lr
}
