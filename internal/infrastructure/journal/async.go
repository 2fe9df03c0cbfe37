// Package journal decouples lifecycle event persistence from the control
// thread.
package journal

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/logging"
)

// DefaultQueueSize is used when NewAsyncJournal gets a non-positive size.
const DefaultQueueSize = 256

var (
	// ErrQueueFull is returned when an event is dropped because the writer
	// is behind.
	ErrQueueFull = errors.New("journal queue full")
	// ErrClosed is returned by Record after Close.
	ErrClosed = errors.New("journal closed")
)

// AsyncJournal queues events and writes them to a backing journal from a
// single worker goroutine. Record never blocks.
type AsyncJournal struct {
	sink    port.EventJournal
	queue   chan entity.LifecycleEvent
	done    chan struct{}
	wg      sync.WaitGroup
	closed  atomic.Bool
	dropped atomic.Int64
	ctx     context.Context
	once    sync.Once
}

// Compile-time interface check.
var _ port.EventJournal = (*AsyncJournal)(nil)

// NewAsyncJournal starts the worker. ctx carries the logger used for write
// failures; it is not used for cancellation.
func NewAsyncJournal(ctx context.Context, sink port.EventJournal, queueSize int) *AsyncJournal {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	j := &AsyncJournal{
		sink:  sink,
		queue: make(chan entity.LifecycleEvent, queueSize),
		done:  make(chan struct{}),
		ctx:   logging.WithComponent(context.WithoutCancel(ctx), "journal-worker"),
	}

	j.wg.Add(1)
	go j.worker()

	return j
}

// Record enqueues ev.
func (j *AsyncJournal) Record(_ context.Context, ev entity.LifecycleEvent) error {
	if j.closed.Load() {
		return ErrClosed
	}
	select {
	case j.queue <- ev:
		return nil
	default:
		j.dropped.Add(1)
		return ErrQueueFull
	}
}

// Dropped returns how many events were discarded because the queue was full.
func (j *AsyncJournal) Dropped() int64 {
	return j.dropped.Load()
}

// Close stops accepting events, writes everything queued, and waits for the
// worker to exit.
func (j *AsyncJournal) Close() {
	j.once.Do(func() {
		j.closed.Store(true)
		close(j.done)
	})
	j.wg.Wait()
}

func (j *AsyncJournal) worker() {
	defer j.wg.Done()
	log := logging.FromContext(j.ctx)

	for {
		select {
		case ev := <-j.queue:
			j.write(ev)
		case <-j.done:
			log.Debug().Int("remaining", len(j.queue)).Msg("draining journal queue")
			for {
				select {
				case ev := <-j.queue:
					j.write(ev)
				default:
					if n := j.dropped.Load(); n > 0 {
						log.Warn().Int64("dropped", n).Msg("journal dropped events while the writer was behind")
					}
					return
				}
			}
		}
	}
}

func (j *AsyncJournal) write(ev entity.LifecycleEvent) {
	if err := j.sink.Record(j.ctx, ev); err != nil {
		logging.FromContext(j.ctx).Warn().Err(err).Str("kind", string(ev.Kind)).Msg("failed to persist lifecycle event")
	}
}
