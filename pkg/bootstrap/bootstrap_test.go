package bootstrap

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/Goden-Gun/apperr-lib/pkg/config"
	"github.com/Goden-Gun/apperr-lib/pkg/group"
	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

func fileConfig(t *testing.T) config.Config {
	t.Helper()
	var cfg config.Config
	cfg.App.Env = "prod"
	cfg.Log.SinkEnabled = true
	cfg.Log.File = config.LogFileConfig{Enabled: true, Dir: t.TempDir(), Filename: "group"}
	cfg.Log.Sink = config.LogSinkConfig{Aggregation: "file", Security: "file"}
	return cfg
}

func readLog(t *testing.T, dir, pattern string) string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	require.NoError(t, err)
	require.Len(t, files, 1, pattern)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	return string(data)
}

func TestInitLogger_FileSinks(t *testing.T) {
	cfg := fileConfig(t)
	var stdout bytes.Buffer
	logging, err := InitLogger(cfg, LoggerOptions{Output: &stdout, AddHostHook: true})
	require.NoError(t, err)
	assert.Equal(t, logger.Production, logging.Environment())

	ctx := context.Background()
	logging.WithArea("group").LogError(ctx, group.XSSDetected("description"))
	logging.Info(ctx, "group created", logger.Fields{"group_id": "g-1"})
	require.NoError(t, logging.Close(ctx))

	dir := cfg.Log.File.Dir
	assert.Contains(t, stdout.String(), `"host":`)
	assert.Contains(t, readLog(t, dir, "group.*.log"), "group created")
	aggregate := readLog(t, dir, "group-aggregate.*.log")
	assert.Contains(t, aggregate, "group created")
	assert.Contains(t, aggregate, "GROUP-")
	security := readLog(t, dir, "group-security.*.log")
	assert.Contains(t, security, `"level":"security"`)
	assert.NotContains(t, security, "group created")
}

func TestInitLogger_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "redis missing", mutate: func(c *config.Config) { c.Log.Sink.Security = "redis" }},
		{name: "kafka missing", mutate: func(c *config.Config) { c.Log.Sink.Aggregation = "kafka" }},
		{name: "unknown aggregation", mutate: func(c *config.Config) { c.Log.Sink.Aggregation = "s3" }},
		{name: "unknown security", mutate: func(c *config.Config) { c.Log.Sink.Security = "syslog" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fileConfig(t)
			tt.mutate(&cfg)
			_, err := InitLogger(cfg, LoggerOptions{Output: &bytes.Buffer{}})
			assert.Error(t, err)
		})
	}
}

func TestLoggerConfig(t *testing.T) {
	var cfg config.Config
	cfg.App.Env = "dev"
	cfg.Log.Level = "warning"
	cfg.Log.ForwardTimeout = 2
	lc := LoggerConfig(cfg)
	assert.Equal(t, logger.Development, lc.Environment)
	assert.Equal(t, "warning", lc.Level)
	assert.Equal(t, "2s", lc.ForwardTimeout.String())
}

func TestHostHook(t *testing.T) {
	h := &hostHook{host: "pod-1"}
	e := log.NewEntry(log.New())
	require.NoError(t, h.Fire(e))
	assert.Equal(t, "pod-1", e.Data["host"])
	assert.Len(t, h.Levels(), len(log.AllLevels))
	assert.NotEmpty(t, detectHost())
}

func TestInitKafka_Disabled(t *testing.T) {
	m, err := InitKafka(config.KafkaConfig{})
	require.NoError(t, err)
	assert.Nil(t, m)

	kc := KafkaConfig(config.KafkaConfig{Brokers: []string{"k:9092"}, SecurityTopic: "sec"})
	assert.Equal(t, []string{"k:9092"}, kc.Brokers)
	assert.Equal(t, "sec", kc.SecurityTopic)
}

func TestInitTracing(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	ctx := context.Background()

	shutdown, err := InitTracing(ctx, config.TracingConfig{Exporter: "disabled"})
	require.NoError(t, err)
	require.NoError(t, shutdown(ctx))

	_, err = InitTracing(ctx, config.TracingConfig{Exporter: "zipkin"})
	require.Error(t, err)

	var out bytes.Buffer
	shutdown, err = InitTracing(ctx, config.TracingConfig{Exporter: "stdout", ServiceName: "errcatalog"}, TracingOptions{StdoutWriter: &out})
	require.NoError(t, err)
	_, span := otel.Tracer("test").Start(ctx, "op")
	span.End()
	require.NoError(t, shutdown(ctx))
	assert.Contains(t, out.String(), "errcatalog")
}

func TestInit_FileOnly(t *testing.T) {
	cfg := fileConfig(t)
	cfg.Metrics.Enabled = true
	rt, err := Init(context.Background(), &cfg, "group", LoggerOptions{Output: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Nil(t, rt.Redis)
	assert.Nil(t, rt.Kafka)
	require.NotNil(t, rt.Registry)

	rt.Logging.Warning(context.Background(), "capacity reached", nil)
	families, err := rt.Registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
	require.NoError(t, rt.Close(context.Background()))
}

func TestInitAuth(t *testing.T) {
	_, err := InitAuth(config.JWTConfig{}, nil)
	require.Error(t, err)

	cfg := config.JWTConfig{SecretKey: "test-secret-0123456789", AccessTokenTTL: 600, ClockSkew: 5}
	ac := AuthConfig(cfg)
	assert.Equal(t, "10m0s", ac.TTL.String())
	assert.Equal(t, "5s", ac.ClockSkew.String())

	svc, err := InitAuth(cfg, nil)
	require.NoError(t, err)
	issued, err := svc.Issue(context.Background(), "u-1", "chat:read")
	require.NoError(t, err)
	claims, err := svc.Verify(context.Background(), issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
}
