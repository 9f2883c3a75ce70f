package metrics

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goden-Gun/apperr-lib/pkg/kafka"
	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

var (
	_ logger.Observer       = (*Observer)(nil)
	_ kafka.PublishObserver = (*Observer)(nil)
)

type okSink struct{}

func (okSink) Name() string { return "ok" }
func (okSink) Forward(context.Context, logger.Entry) error { return nil }

func TestObserver_Logger(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := NewObserver()
	require.NoError(t, obs.Register(reg))
	assert.Error(t, obs.Register(reg))

	l := logger.New(logger.Config{
		Environment: logger.Production,
		Output:      &bytes.Buffer{},
		Fallback:    &bytes.Buffer{},
	}, logger.WithSecuritySink(okSink{}), logger.WithObserver(obs))
	l.WithArea("group").Warning(context.Background(), "capacity reached", nil)
	l.WithArea("group").Warning(context.Background(), "capacity reached", nil)
	l.Security(context.Background(), "token forged", nil)
	require.NoError(t, l.Close(context.Background()))

	assert.Equal(t, 2.0, testutil.ToFloat64(obs.entries.WithLabelValues("warning", "group")))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.entries.WithLabelValues("security", "none")))
	assert.Equal(t, 1, testutil.CollectAndCount(obs.forward, "apperr_log_forward_duration_seconds"))
}

func TestObserver_Publish(t *testing.T) {
	obs := NewObserver()
	obs.ObservePublish("app-logs", 3*time.Millisecond, nil)
	obs.ObservePublish("app-logs", time.Second, errors.New("broker down"))
	obs.ObserveDropped("kafka", logger.LevelInfo)

	assert.Equal(t, 2, testutil.CollectAndCount(obs.publish))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.dropped.WithLabelValues("kafka", "info")))
}
