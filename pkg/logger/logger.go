// Package logger is the structured, domain-tagged logger of the error
// taxonomy.
//
// Local output goes through logrus (text in development, single-line JSON
// elsewhere). Entries are then forwarded, without blocking the caller, to an
// optional aggregation sink and, for security entries, to a security sink.
// Sink failures are written to a fallback logger and never returned.
package logger

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
)

type Fields = log.Fields
type Hook = log.Hook

// Logger is safe for concurrent use. Loggers derived with WithArea share
// the pipeline of their parent.
type Logger struct {
	core *core
	area string
}

type core struct {
	cfg      Config
	out      *log.Logger
	fallback *log.Logger

	aggregation *dispatcher
	security    *dispatcher
	noSecSink   bool

	observerMu sync.RWMutex
	observer   Observer

	dropped   atomic.Int64
	closeOnce sync.Once
	closeErr  error
}

// New builds a Logger from cfg. Workers are started for every installed
// sink; call Close to drain them.
func New(cfg Config, opts ...Option) *Logger {
	cfg.ApplyDefaults()
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &core{cfg: cfg, observer: o.observer}

	c.out = log.New()
	if cfg.Output != nil {
		c.out.SetOutput(cfg.Output)
	} else {
		c.out.SetOutput(os.Stdout)
	}
	c.out.SetFormatter(formatterFor(cfg.Format))
	for _, h := range o.hooks {
		c.out.AddHook(h)
	}

	c.fallback = log.New()
	var fb io.Writer = os.Stderr
	if cfg.Fallback != nil {
		fb = cfg.Fallback
	}
	c.fallback.SetOutput(fb)
	c.fallback.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	c.fallback.SetLevel(log.InfoLevel)

	if lvl, err := log.ParseLevel(cfg.Level); err == nil {
		c.out.SetLevel(lvl)
	} else {
		c.out.SetLevel(log.InfoLevel)
		c.fallback.Warnf("invalid log level %q, fallback to info", cfg.Level)
	}

	if o.aggregation != nil && cfg.SinkEnabled {
		c.aggregation = newDispatcher(o.aggregation, cfg.QueueSize, cfg.Workers, c.deliver)
	}
	if o.security != nil {
		c.security = newDispatcher(o.security, cfg.QueueSize, cfg.Workers, c.deliver)
	} else {
		c.noSecSink = true
	}

	return &Logger{core: c}
}

func formatterFor(format string) log.Formatter {
	if format == "text" {
		return &log.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339Nano}
	}
	return &log.JSONFormatter{TimestampFormat: time.RFC3339Nano}
}

// WithArea returns a logger that tags entries with area, e.g. "group" or
// "profile.avatar".
func (l *Logger) WithArea(area string) *Logger {
	return &Logger{core: l.core, area: area}
}

// Area returns the area tag.
func (l *Logger) Area() string { return l.area }

// Environment returns the configured environment.
func (l *Logger) Environment() Environment { return l.core.cfg.Environment }

// SetObserver installs or replaces the observer.
func (l *Logger) SetObserver(observer Observer) {
	l.core.observerMu.Lock()
	l.core.observer = observer
	l.core.observerMu.Unlock()
}

func (c *core) observerSnapshot() Observer {
	c.observerMu.RLock()
	defer c.observerMu.RUnlock()
	return c.observer
}

// Dropped returns how many aggregation entries were discarded because the
// queue was full.
func (l *Logger) Dropped() int64 { return l.core.dropped.Load() }

func (l *Logger) Debug(ctx context.Context, msg string, fields Fields) {
	l.Log(ctx, LevelDebug, msg, fields)
}

func (l *Logger) Info(ctx context.Context, msg string, fields Fields) {
	l.Log(ctx, LevelInfo, msg, fields)
}

func (l *Logger) Warning(ctx context.Context, msg string, fields Fields) {
	l.Log(ctx, LevelWarning, msg, fields)
}

func (l *Logger) Error(ctx context.Context, msg string, fields Fields) {
	l.Log(ctx, LevelError, msg, fields)
}

// Security logs a security event. It is always forwarded to the security
// sink, whatever the configured level or environment.
func (l *Logger) Security(ctx context.Context, msg string, fields Fields) {
	l.Log(ctx, LevelSecurity, msg, fields)
}

// Log is the leveled primitive behind every other method.
func (l *Logger) Log(ctx context.Context, level Level, msg string, fields Fields) {
	l.emit(ctx, level, msg, fields, nil, l.area)
}

// LogError logs err at the level derived from its classification. Errors
// outside the taxonomy are logged at error level with their text only.
func (l *Logger) LogError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	e, ok := apperr.From(err)
	if !ok {
		l.emit(ctx, LevelError, err.Error(), nil, nil, l.area)
		return
	}
	area := l.area
	if area == "" {
		area = string(e.Domain())
	}
	lr := e.ToLogFormat()
	lr.Context = sanitize(lr.Context)
	l.emit(ctx, LevelFor(e), e.DeveloperMessage(), nil, &lr, area)
}

func (l *Logger) emit(ctx context.Context, level Level, msg string, fields Fields, rec *apperr.LogRecord, area string) {
	c := l.core
	if level == LevelDebug && c.cfg.Environment != Development {
		return
	}
	enabled := c.out.IsLevelEnabled(level.logrusLevel())
	if !enabled && level != LevelSecurity {
		return
	}

	entry := Entry{
		ID:          uuid.NewString(),
		Level:       level,
		Message:     msg,
		Context:     sanitize(fields),
		Timestamp:   time.Now().UTC(),
		Area:        area,
		Environment: c.cfg.Environment,
		TraceID:     TraceID(ctx),
		Error:       rec,
	}

	if obs := c.observerSnapshot(); obs != nil {
		obs.ObserveEntry(level, area)
	}

	if enabled {
		c.write(ctx, entry)
	}

	if c.aggregation != nil {
		if !c.aggregation.enqueue(entry) {
			c.dropped.Add(1)
			if obs := c.observerSnapshot(); obs != nil {
				obs.ObserveDropped(c.aggregation.sink.Name(), level)
			}
		}
	}

	if level == LevelSecurity {
		switch {
		case c.noSecSink:
			c.spill(entry, "no security sink installed")
		case !c.security.enqueue(entry):
			c.spill(entry, "security queue unavailable")
		}
	}
}

func (c *core) write(ctx context.Context, e Entry) {
	f := log.Fields{
		"entry_id":    e.ID,
		"environment": string(e.Environment),
	}
	if e.Area != "" {
		f["area"] = e.Area
	}
	if e.TraceID != "" {
		f["trace_id"] = e.TraceID
	}
	if len(e.Context) > 0 {
		f["context"] = e.Context
	}
	if e.Level == LevelSecurity {
		f["security"] = true
	}
	if r := e.Error; r != nil {
		f["code"] = r.Code
		f["category"] = string(r.Category)
		f["severity"] = string(r.Severity)
		f["retryable"] = r.Retryable
		if len(r.Context) > 0 {
			f["context"] = r.Context
		}
		if r.Cause != "" {
			f["cause"] = r.Cause
		}
		if e.Level == LevelError || e.Level == LevelSecurity {
			f["stack"] = r.Stack
		}
	}
	c.out.WithContext(ctx).WithFields(f).Log(e.Level.logrusLevel(), e.Message)
}

// spill writes the whole entry to the fallback logger so a security event
// is never lost silently.
func (c *core) spill(e Entry, reason string) {
	raw, err := json.Marshal(e)
	if err != nil {
		c.fallback.WithField("entry_id", e.ID).Errorf("%s: encode entry: %v", reason, err)
		return
	}
	c.fallback.WithField("entry", string(raw)).Error(reason)
}

// deliver runs on a dispatcher worker. Nothing it does may escape.
func (c *core) deliver(sink Sink, e Entry) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			c.fallback.WithFields(log.Fields{"sink": sink.Name(), "entry_id": e.ID}).
				Errorf("log sink panicked: %v", r)
			if obs := c.observerSnapshot(); obs != nil {
				obs.ObserveForward(sink.Name(), time.Since(start), errSinkPanic)
			}
			if e.Level == LevelSecurity {
				c.spill(e, "security entry not delivered")
			}
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.ForwardTimeout)
	defer cancel()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.cfg.RetryInterval
	bo.MaxInterval = 10 * c.cfg.RetryInterval

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, sink.Forward(ctx, e)
	},
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(uint(c.cfg.MaxAttempts)),
		backoff.WithMaxElapsedTime(c.cfg.ForwardTimeout),
	)

	if obs := c.observerSnapshot(); obs != nil {
		obs.ObserveForward(sink.Name(), time.Since(start), err)
	}
	if err != nil {
		c.fallback.WithFields(log.Fields{"sink": sink.Name(), "entry_id": e.ID, "level": string(e.Level)}).
			WithError(err).Error("log sink forward failed")
		if e.Level == LevelSecurity {
			c.spill(e, "security entry not delivered")
		}
	}
}

var errSinkPanic = errors.New("log sink panicked")

// Close stops intake and drains queued entries until ctx is done. Entries
// logged after Close are written locally only; security entries go to the
// fallback.
func (l *Logger) Close(ctx context.Context) error {
	c := l.core
	c.closeOnce.Do(func() {
		var errs []error
		if c.aggregation != nil {
			errs = append(errs, c.aggregation.close(ctx))
		}
		if c.security != nil {
			errs = append(errs, c.security.close(ctx))
		}
		c.closeErr = errors.Join(errs...)
	})
	return c.closeErr
}
