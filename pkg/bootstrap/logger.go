package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/Goden-Gun/apperr-lib/pkg/config"
	"github.com/Goden-Gun/apperr-lib/pkg/kafka"
	"github.com/Goden-Gun/apperr-lib/pkg/logger"
	"github.com/Goden-Gun/apperr-lib/pkg/logsink"
)

// LoggerOptions 日志初始化选项
type LoggerOptions struct {
	// ServiceName 服务名称，用于日志文件命名
	ServiceName string
	// Output 本地输出，默认 os.Stdout
	Output io.Writer
	// Redis 安全日志写入 Redis Stream 时使用
	Redis *redis.Client
	// Kafka 日志聚合或安全日志写入 Kafka 时使用
	Kafka *kafka.Manager
	// Observer 日志管道指标
	Observer logger.Observer
	// AddHostHook 是否添加主机名（容器ID）字段
	AddHostHook bool
}

// Logging 初始化后的日志管道，Close 时依次关闭 logger 和日志文件
type Logging struct {
	*logger.Logger
	files []io.Closer
}

// Close 排空队列并关闭文件
func (l *Logging) Close(ctx context.Context) error {
	errs := []error{l.Logger.Close(ctx)}
	for _, f := range l.files {
		errs = append(errs, f.Close())
	}
	return errors.Join(errs...)
}

// hostHook 添加主机名到本地日志
type hostHook struct {
	host string
}

func (h *hostHook) Levels() []log.Level {
	return log.AllLevels
}

func (h *hostHook) Fire(entry *log.Entry) error {
	entry.Data["host"] = h.host
	return nil
}

// detectHost 检测主机名，容器内即容器ID
func detectHost() string {
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		return hostname
	}
	if data, err := os.ReadFile("/etc/hostname"); err == nil {
		if hostname := strings.TrimSpace(string(data)); hostname != "" {
			return hostname
		}
	}
	return "unknown"
}

// LoggerConfig 把配置文件中的日志配置转换为 logger.Config
func LoggerConfig(cfg config.Config) logger.Config {
	return logger.Config{
		Environment:    logger.ParseEnvironment(cfg.App.Env),
		SinkEnabled:    cfg.Log.SinkEnabled,
		Level:          cfg.Log.Level,
		Format:         cfg.Log.Format,
		QueueSize:      cfg.Log.QueueSize,
		Workers:        cfg.Log.Workers,
		MaxAttempts:    cfg.Log.MaxAttempts,
		ForwardTimeout: cfg.Log.ForwardTimeout.Duration(),
	}
}

// InitLogger 初始化日志管道：本地输出（可选文件）、聚合 sink 和安全 sink
func InitLogger(cfg config.Config, opts LoggerOptions) (*Logging, error) {
	cfg.Log.ApplyDefaults()
	out := &Logging{}
	fail := func(err error) (*Logging, error) {
		for _, f := range out.files {
			_ = f.Close()
		}
		return nil, err
	}

	filename := cfg.Log.File.Filename
	if filename == "" {
		filename = opts.ServiceName
	}
	if filename == "" {
		filename = "app"
	}
	fileCfg := func(suffix string) logsink.FileConfig {
		return logsink.FileConfig{
			Dir:          cfg.Log.File.Dir,
			Filename:     filename + suffix,
			MaxAgeDays:   cfg.Log.File.MaxAgeDays,
			RotationDays: cfg.Log.File.RotationDays,
		}
	}

	lc := LoggerConfig(cfg)
	lc.Output = opts.Output
	if lc.Output == nil {
		lc.Output = os.Stdout
	}
	if cfg.Log.File.Enabled {
		f, err := logsink.OpenRotating(fileCfg(""))
		if err != nil {
			return fail(fmt.Errorf("设置日志文件输出失败: %w", err))
		}
		out.files = append(out.files, f)
		lc.Output = io.MultiWriter(lc.Output, f)
	}

	var lopts []logger.Option
	if opts.Observer != nil {
		lopts = append(lopts, logger.WithObserver(opts.Observer))
	}
	if opts.AddHostHook {
		lopts = append(lopts, logger.WithHooks(&hostHook{host: detectHost()}))
	}

	if cfg.Log.SinkEnabled {
		switch cfg.Log.Sink.Aggregation {
		case "kafka":
			if opts.Kafka == nil {
				return fail(errors.New("aggregation sink kafka: kafka not initialized"))
			}
			lopts = append(lopts, logger.WithAggregationSink(logsink.NewKafka(opts.Kafka, cfg.Kafka.Topic)))
		case "file":
			w, err := logsink.OpenFile("aggregation", fileCfg("-aggregate"))
			if err != nil {
				return fail(err)
			}
			out.files = append(out.files, w)
			lopts = append(lopts, logger.WithAggregationSink(w))
		case "":
		default:
			return fail(fmt.Errorf("unknown aggregation sink %q", cfg.Log.Sink.Aggregation))
		}
	}

	switch cfg.Log.Sink.Security {
	case "redis":
		if opts.Redis == nil {
			return fail(errors.New("security sink redis: redis not initialized"))
		}
		lopts = append(lopts, logger.WithSecuritySink(
			logsink.NewRedisStream(opts.Redis, cfg.Log.Sink.SecurityStream, cfg.Log.Sink.SecurityMaxLen)))
	case "kafka":
		if opts.Kafka == nil {
			return fail(errors.New("security sink kafka: kafka not initialized"))
		}
		lopts = append(lopts, logger.WithSecuritySink(logsink.NewKafka(opts.Kafka, cfg.Kafka.SecurityTopic)))
	case "file":
		name := cfg.Log.Sink.SecurityLogFile
		if name == "" {
			name = filename + "-security"
		}
		fc := fileCfg("")
		fc.Filename = name
		w, err := logsink.OpenFile("security", fc)
		if err != nil {
			return fail(err)
		}
		out.files = append(out.files, w)
		lopts = append(lopts, logger.WithSecuritySink(w))
	default:
		return fail(fmt.Errorf("unknown security sink %q", cfg.Log.Sink.Security))
	}

	out.Logger = logger.New(lc, lopts...)
	return out, nil
}
