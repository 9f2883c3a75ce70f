package logsink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"

	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

// Writer encodes entries as JSON lines to an io.Writer.
type Writer struct {
	name string

	mu  sync.Mutex
	w   io.Writer
	enc *json.Encoder
}

// NewWriter returns a sink writing to w.
func NewWriter(name string, w io.Writer) *Writer {
	return &Writer{name: name, w: w, enc: json.NewEncoder(w)}
}

func (w *Writer) Name() string { return w.name }

func (w *Writer) Forward(_ context.Context, e logger.Entry) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enc.Encode(e)
}

// Close closes the underlying writer when it is an io.Closer.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if c, ok := w.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// FileConfig describes a daily rotated log file.
type FileConfig struct {
	Dir          string
	Filename     string
	MaxAgeDays   int
	RotationDays int
}

func (c *FileConfig) applyDefaults() {
	if c.Dir == "" {
		c.Dir = "./logs"
	}
	if c.Filename == "" {
		c.Filename = "app"
	}
	if c.MaxAgeDays <= 0 {
		c.MaxAgeDays = 7
	}
	if c.RotationDays <= 0 {
		c.RotationDays = 1
	}
}

// OpenRotating opens <dir>/<filename>.%Y%m%d.log with a <filename>.log link
// to the current file.
func OpenRotating(cfg FileConfig) (io.WriteCloser, error) {
	cfg.applyDefaults()
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}
	rl, err := rotatelogs.New(
		filepath.Join(cfg.Dir, cfg.Filename+".%Y%m%d.log"),
		rotatelogs.WithLinkName(filepath.Join(cfg.Dir, cfg.Filename+".log")),
		rotatelogs.WithMaxAge(time.Duration(cfg.MaxAgeDays)*24*time.Hour),
		rotatelogs.WithRotationTime(time.Duration(cfg.RotationDays)*24*time.Hour),
	)
	if err != nil {
		return nil, err
	}
	return rl, nil
}

// OpenFile returns a Writer backed by a rotating file.
func OpenFile(name string, cfg FileConfig) (*Writer, error) {
	f, err := OpenRotating(cfg)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return NewWriter(name, f), nil
}
