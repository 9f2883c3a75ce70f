package logsink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
	"github.com/Goden-Gun/apperr-lib/pkg/kafka"
	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

var testCatalog = apperr.NewCatalog("SINKTEST", "SINKTEST")

var kindInjection = testCatalog.Define("SINKTEST-001", "sql_injection_detected", apperr.ShapeInjection, "허용되지 않는 입력입니다.")

type fakePublisher struct {
	mu   sync.Mutex
	msgs []kafka.Message
	err  error
}

func (p *fakePublisher) Send(_ context.Context, msg kafka.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return p.err
}

type fakeStream struct {
	mu   sync.Mutex
	args []*redis.XAddArgs
	err  error
}

func (f *fakeStream) XAdd(_ context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.args = append(f.args, a)
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	return redis.NewStringResult("1-0", nil)
}

func securityEntry() logger.Entry {
	rec := kindInjection.New(apperr.Field("input", "' OR 1=1")).ToLogFormat()
	return logger.Entry{
		ID:          "e-1",
		Level:       logger.LevelSecurity,
		Message:     "blocked request",
		Timestamp:   time.Now().UTC(),
		Area:        "chat",
		Environment: logger.Production,
		Error:       &rec,
	}
}

func TestKafka_Forward(t *testing.T) {
	pub := &fakePublisher{}
	sink := NewKafka(pub, "app-logs")

	require.NoError(t, sink.Forward(context.Background(), securityEntry()))
	require.Len(t, pub.msgs, 1)
	msg := pub.msgs[0]
	assert.Equal(t, "app-logs", msg.Topic)
	assert.Equal(t, []byte("e-1"), msg.Key)
	assert.Equal(t, map[string]string{
		"level":          "security",
		"environment":    "production",
		"area":           "chat",
		"error_code":     "SINKTEST-001",
		"error_category": "security",
	}, msg.Headers)

	var decoded logger.Entry
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "blocked request", decoded.Message)
	require.NotNil(t, decoded.Error)
	assert.Equal(t, "SINKTEST-001", decoded.Error.Code)

	pub.err = errors.New("broker down")
	assert.ErrorIs(t, sink.Forward(context.Background(), securityEntry()), pub.err)
}

func TestRedisStream_Forward(t *testing.T) {
	stream := &fakeStream{}
	sink := NewRedisStream(stream, "security:events", 1000)
	assert.Equal(t, "redis:security:events", sink.Name())

	require.NoError(t, sink.Forward(context.Background(), securityEntry()))
	require.Len(t, stream.args, 1)
	a := stream.args[0]
	assert.Equal(t, "security:events", a.Stream)
	assert.Equal(t, int64(1000), a.MaxLen)
	assert.True(t, a.Approx)
	values := a.Values.(map[string]any)
	assert.Equal(t, "SINKTEST-001", values["code"])
	assert.Equal(t, "security", values["level"])
	assert.Contains(t, values["entry"], `"message":"blocked request"`)

	stream.err = errors.New("READONLY")
	assert.Error(t, sink.Forward(context.Background(), securityEntry()))
}

func TestRedisStream_SecurityPath(t *testing.T) {
	stream := &fakeStream{}
	l := logger.New(logger.Config{
		Environment: logger.Production,
		Output:      &bytes.Buffer{},
		Fallback:    &bytes.Buffer{},
	}, logger.WithSecuritySink(NewRedisStream(stream, "security:events", 0)))

	l.WithArea("chat").LogError(context.Background(), kindInjection.New())
	l.Info(context.Background(), "room created", nil)
	require.NoError(t, l.Close(context.Background()))

	require.Len(t, stream.args, 1)
	assert.Zero(t, stream.args[0].MaxLen)
	assert.Equal(t, "chat", stream.args[0].Values.(map[string]any)["area"])
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter("buffer", &buf)
	require.NoError(t, w.Forward(context.Background(), securityEntry()))
	require.NoError(t, w.Forward(context.Background(), logger.Entry{ID: "e-2", Level: logger.LevelInfo}))
	require.NoError(t, w.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, json.Valid([]byte(lines[0])))
	assert.Contains(t, lines[1], `"id":"e-2"`)
}

func TestOpenFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	w, err := OpenFile("file", FileConfig{Dir: dir, Filename: "chat"})
	require.NoError(t, err)
	require.NoError(t, w.Forward(context.Background(), securityEntry()))
	require.NoError(t, w.Close())

	files, err := filepath.Glob(filepath.Join(dir, "chat.*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "SINKTEST-001")
}

func TestMulti(t *testing.T) {
	ok := &fakePublisher{}
	failing := &fakeStream{err: errors.New("timeout")}
	m := NewMulti(NewKafka(ok, "t"), NewRedisStream(failing, "s", 0))

	assert.Equal(t, "multi(kafka,redis:s)", m.Name())
	err := m.Forward(context.Background(), securityEntry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis:s")
	assert.Len(t, ok.msgs, 1)
	assert.Len(t, failing.args, 1)

	failing.err = nil
	require.NoError(t, m.Forward(context.Background(), securityEntry()))
	assert.Len(t, ok.msgs, 1, "accepted sinks are skipped on retry")
	assert.Len(t, failing.args, 2)
	assert.Empty(t, m.pending)
	assert.Empty(t, m.order)
}

func TestMulti_PendingBounded(t *testing.T) {
	failing := &fakeStream{err: errors.New("timeout")}
	m := NewMulti(NewKafka(&fakePublisher{}, "t"), NewRedisStream(failing, "s", 0))

	for i := 0; i < maxPending+10; i++ {
		e := securityEntry()
		e.ID = fmt.Sprintf("e-%d", i)
		require.Error(t, m.Forward(context.Background(), e))
	}
	assert.Len(t, m.pending, maxPending)
	assert.Len(t, m.order, maxPending)
	assert.NotContains(t, m.pending, "e-0")
	assert.Contains(t, m.pending, fmt.Sprintf("e-%d", maxPending+9))
}

type flakySink struct {
	mu    sync.Mutex
	fails int
	calls int
}

func (s *flakySink) Name() string { return "flaky" }

func (s *flakySink) Forward(context.Context, logger.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls <= s.fails {
		return errors.New("unavailable")
	}
	return nil
}

func TestMulti_LoggerRetryNoDuplicates(t *testing.T) {
	pub := &fakePublisher{}
	flaky := &flakySink{fails: 1}
	l := logger.New(logger.Config{
		Environment:   logger.Production,
		SinkEnabled:   true,
		MaxAttempts:   3,
		RetryInterval: time.Millisecond,
		Output:        &bytes.Buffer{},
		Fallback:      &bytes.Buffer{},
	}, logger.WithAggregationSink(NewMulti(NewKafka(pub, "app-logs"), flaky)))

	l.Info(context.Background(), "room created", nil)
	require.NoError(t, l.Close(context.Background()))

	assert.Equal(t, 2, flaky.calls)
	assert.Len(t, pub.msgs, 1)
}
