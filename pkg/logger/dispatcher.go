package logger

import (
	"context"
	"sync"
)

// dispatcher is the one-way boundary between callers and a sink: callers
// enqueue without blocking and a fixed set of workers drains the queue.
type dispatcher struct {
	sink    Sink
	queue   chan Entry
	deliver func(Sink, Entry)

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func newDispatcher(sink Sink, size, workers int, deliver func(Sink, Entry)) *dispatcher {
	d := &dispatcher{
		sink:    sink,
		queue:   make(chan Entry, size),
		deliver: deliver,
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.run()
	}
	return d
}

func (d *dispatcher) run() {
	defer d.wg.Done()
	for e := range d.queue {
		d.deliver(d.sink, e)
	}
}

// enqueue reports false when the queue is full or the dispatcher is closed.
func (d *dispatcher) enqueue(e Entry) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return false
	}
	select {
	case d.queue <- e:
		return true
	default:
		return false
	}
}

// close stops intake and waits for queued entries until ctx is done.
func (d *dispatcher) close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
