package logger

import (
	"context"
	"time"
)

// Sink receives forwarded entries. Forward is called from background
// workers; an error or panic is reported to the fallback logger and never
// reaches the code that logged the entry.
type Sink interface {
	Name() string
	Forward(ctx context.Context, entry Entry) error
}

// Observer is an optional hook for pipeline metrics.
//
// It is intentionally metrics-backend agnostic so each service can map it to
// its own metrics and labels.
type Observer interface {
	ObserveEntry(level Level, area string)
	ObserveDropped(sink string, level Level)
	ObserveForward(sink string, duration time.Duration, err error)
}

// Option customizes a Logger.
type Option func(*options)

type options struct {
	aggregation Sink
	security    Sink
	observer    Observer
	hooks       []Hook
}

// WithAggregationSink installs the production log aggregation sink. It is
// only used when Config.SinkEnabled is set.
func WithAggregationSink(s Sink) Option {
	return func(o *options) { o.aggregation = s }
}

// WithSecuritySink installs the security monitoring sink.
func WithSecuritySink(s Sink) Option {
	return func(o *options) { o.security = s }
}

// WithObserver installs an Observer.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithHooks adds logrus hooks to local output.
func WithHooks(hooks ...Hook) Option {
	return func(o *options) { o.hooks = append(o.hooks, hooks...) }
}
