// Package metrics exposes the logging pipeline and the Kafka producer as
// Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

const namespace = "apperr"

// Observer implements logger.Observer and kafka.PublishObserver.
type Observer struct {
	// entries counts logged entries by level and area.
	entries *prometheus.CounterVec
	// dropped counts entries a sink queue had no room for.
	dropped *prometheus.CounterVec
	// forward tracks sink delivery latency, labeled by outcome ("ok" or "error").
	forward *prometheus.HistogramVec
	publish *prometheus.HistogramVec
}

// NewObserver builds the collectors. They are not registered until
// Register is called.
func NewObserver() *Observer {
	return &Observer{
		entries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "log",
				Name:      "entries_total",
				Help:      "Number of log entries by level and area",
			},
			[]string{"level", "area"},
		),
		dropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "log",
				Name:      "dropped_total",
				Help:      "Number of entries dropped because a sink queue was full",
			},
			[]string{"sink", "level"},
		),
		forward: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "log",
				Name:      "forward_duration_seconds",
				Help:      "Sink delivery latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"sink", "outcome"},
		),
		publish: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "kafka",
				Name:      "publish_duration_seconds",
				Help:      "Kafka publish latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"topic", "outcome"},
		),
	}
}

// Register registers every collector with reg.
//
// Example:
//
//	obs := metrics.NewObserver()
//	if err := obs.Register(prometheus.DefaultRegisterer); err != nil {
//		return err
//	}
//	l.SetObserver(obs)
func (o *Observer) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{o.entries, o.dropped, o.forward, o.publish} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (o *Observer) ObserveEntry(level logger.Level, area string) {
	if area == "" {
		area = "none"
	}
	o.entries.WithLabelValues(string(level), area).Inc()
}

func (o *Observer) ObserveDropped(sink string, level logger.Level) {
	o.dropped.WithLabelValues(sink, string(level)).Inc()
}

func (o *Observer) ObserveForward(sink string, duration time.Duration, err error) {
	o.forward.WithLabelValues(sink, outcome(err)).Observe(duration.Seconds())
}

func (o *Observer) ObservePublish(topic string, duration time.Duration, err error) {
	o.publish.WithLabelValues(topic, outcome(err)).Observe(duration.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
