package bootstrap

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/Goden-Gun/apperr-lib/pkg/config"
	"github.com/Goden-Gun/apperr-lib/pkg/kafka"
	"github.com/Goden-Gun/apperr-lib/pkg/metrics"
)

// Runtime 进程级依赖：日志管道、Redis、Kafka、指标和追踪
type Runtime struct {
	Config   *config.Config
	Logging  *Logging
	Redis    *redis.Client
	Kafka    *kafka.Manager
	Metrics  *metrics.Observer
	Registry *prometheus.Registry

	shutdownTracing ShutdownFunc
}

// Init 按配置初始化全部依赖，只连接日志 sink 实际需要的后端
func Init(ctx context.Context, cfg *config.Config, serviceName string, opts LoggerOptions) (*Runtime, error) {
	rt := &Runtime{Config: cfg, shutdownTracing: noopShutdown}
	fail := func(err error) (*Runtime, error) {
		_ = rt.Close(ctx)
		return nil, err
	}

	if cfg.Metrics.Enabled {
		rt.Registry = prometheus.NewRegistry()
		rt.Metrics = metrics.NewObserver()
		if err := rt.Metrics.Register(rt.Registry); err != nil {
			return fail(err)
		}
		opts.Observer = rt.Metrics
	}

	sinks := cfg.Log.Sink
	if sinks.Security == "redis" {
		client, err := InitRedis(ctx, cfg.Redis)
		if err != nil {
			return fail(err)
		}
		rt.Redis = client
		opts.Redis = client
	}
	if sinks.Security == "kafka" || (cfg.Log.SinkEnabled && sinks.Aggregation == "kafka") {
		kcfg := cfg.Kafka
		kcfg.Enabled = true
		manager, err := InitKafka(kcfg)
		if err != nil {
			return fail(err)
		}
		if rt.Metrics != nil {
			manager.SetPublishObserver(rt.Metrics)
		}
		rt.Kafka = manager
		opts.Kafka = manager
	}

	shutdown, err := InitTracing(ctx, cfg.Tracing)
	if err != nil {
		return fail(err)
	}
	rt.shutdownTracing = shutdown

	if opts.ServiceName == "" {
		opts.ServiceName = serviceName
	}
	logging, err := InitLogger(*cfg, opts)
	if err != nil {
		return fail(err)
	}
	rt.Logging = logging
	return rt, nil
}

// Close 先排空日志，再关闭日志依赖的后端
func (r *Runtime) Close(ctx context.Context) error {
	var errs []error
	if r.Logging != nil {
		errs = append(errs, r.Logging.Close(ctx))
	}
	if r.Kafka != nil {
		errs = append(errs, r.Kafka.Close())
	}
	if r.Redis != nil {
		errs = append(errs, r.Redis.Close())
	}
	if r.shutdownTracing != nil {
		errs = append(errs, r.shutdownTracing(ctx))
	}
	return errors.Join(errs...)
}
