// Package mainloop provides the single control thread the router runs on.
package mainloop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/switchboard/internal/application/port"
)

// Loop is an unbounded FIFO of callbacks executed by whichever goroutine
// calls Run. It is the control thread of the headless host.
type Loop struct {
	mu      sync.Mutex
	pending []func()
	stopped bool

	wake     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

var _ port.MainLoop = (*Loop)(nil)

// NewLoop creates an idle loop.
func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Post queues fn. Callbacks posted after Stop are dropped.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}

	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.pending = append(l.pending, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// AfterFunc schedules fn on the loop after d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) port.Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if t.done.CompareAndSwap(false, true) {
				fn()
			}
		})
	})
	return t
}

// Run executes callbacks until Stop is called or ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.mu.Lock()
		batch := l.pending
		l.pending = nil
		l.mu.Unlock()

		for _, fn := range batch {
			select {
			case <-l.done:
				return nil
			default:
			}
			fn()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		case <-l.wake:
		}
	}
}

// Stop ends Run and drops pending callbacks.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.mu.Lock()
		l.stopped = true
		l.pending = nil
		l.mu.Unlock()
		close(l.done)
	})
}

// Done is closed once the loop has been stopped.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

type loopTimer struct {
	timer *time.Timer
	done  atomic.Bool
}

// Stop must be called on the loop for the result to be exact: a callback
// already queued but not yet run is suppressed.
func (t *loopTimer) Stop() bool {
	if t.timer != nil {
		t.timer.Stop()
	}
	return t.done.CompareAndSwap(false, true)
}
