// Package bootstrap assembles the shell from configuration: journal, log
// sink, host platform and lifecycle supervisor.
package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/switchboard/internal/logging"
)

// Phase is one measured startup step.
type Phase struct {
	Name     string
	Duration time.Duration
}

// StartupTimer tracks how long each bootstrap phase took. Safe for
// concurrent use by the parallel init goroutines.
type StartupTimer struct {
	mu     sync.Mutex
	start  time.Time
	last   time.Time
	phases []Phase
}

// NewStartupTimer creates a timer starting from now.
func NewStartupTimer() *StartupTimer {
	now := time.Now()
	return &StartupTimer{start: now, last: now}
}

// Mark records the time since the previous mark under phase.
func (t *StartupTimer) Mark(phase string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.phases = append(t.phases, Phase{Name: phase, Duration: now.Sub(t.last)})
	t.last = now
}

// MarkDuration records a phase that was timed independently.
func (t *StartupTimer) MarkDuration(phase string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phases = append(t.phases, Phase{Name: phase, Duration: d})
}

// Phases returns the recorded phases in order.
func (t *StartupTimer) Phases() []Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Phase(nil), t.phases...)
}

// Log writes one "bootstrap timing" line at level.
func (t *StartupTimer) Log(ctx context.Context, level zerolog.Level) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).WithLevel(level).Dur("total", time.Since(t.start))
	for _, p := range t.phases {
		event = event.Dur(p.Name, p.Duration)
	}
	event.Msg("bootstrap timing")
}
