package logsink

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

// maxPending bounds how many partially delivered entries a Multi remembers.
const maxPending = 1024

// Multi forwards every entry to all of its sinks. One sink failing does not
// stop the others; the failures are joined. When the logger retries a failed
// entry, sinks that already accepted it are skipped.
type Multi struct {
	sinks []logger.Sink

	mu      sync.Mutex
	pending map[string][]bool
	order   []string
}

// NewMulti fans entries out to sinks in order.
func NewMulti(sinks ...logger.Sink) *Multi {
	return &Multi{sinks: sinks, pending: make(map[string][]bool)}
}

func (m *Multi) Name() string {
	names := make([]string, len(m.sinks))
	for i, s := range m.sinks {
		names[i] = s.Name()
	}
	return "multi(" + strings.Join(names, ",") + ")"
}

func (m *Multi) Forward(ctx context.Context, e logger.Entry) error {
	done := m.delivered(e.ID)
	var errs []error
	for i, s := range m.sinks {
		if done[i] {
			continue
		}
		if err := s.Forward(ctx, e); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		done[i] = true
	}
	m.remember(e.ID, done, len(errs) == 0)
	return errors.Join(errs...)
}

func (m *Multi) delivered(id string) []bool {
	done := make([]bool, len(m.sinks))
	if id == "" {
		return done
	}
	m.mu.Lock()
	copy(done, m.pending[id])
	m.mu.Unlock()
	return done
}

func (m *Multi) remember(id string, done []bool, complete bool) {
	if id == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if complete {
		if _, ok := m.pending[id]; ok {
			delete(m.pending, id)
			m.dropOrder(id)
		}
		return
	}
	if _, ok := m.pending[id]; !ok {
		m.order = append(m.order, id)
		if len(m.order) > maxPending {
			delete(m.pending, m.order[0])
			m.order = m.order[1:]
		}
	}
	m.pending[id] = done
}

func (m *Multi) dropOrder(id string) {
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}
