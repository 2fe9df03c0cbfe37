package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// StartupTrace tracks milestones from window creation to first reveal.
// Enabled only when the logger is at debug or trace level.
type StartupTrace struct {
	mu         sync.Mutex
	t0         time.Time
	now        func() time.Time
	milestones []Milestone
	logger     *zerolog.Logger
	finished   bool
}

// Milestone represents a timing checkpoint during startup.
type Milestone struct {
	Name    string
	Elapsed time.Duration // time since t0
	Delta   time.Duration // time since previous milestone
}

// NewStartupTrace starts a trace at the current time. A nil logger, or one
// above debug level, yields a disabled trace.
func NewStartupTrace(logger *zerolog.Logger) *StartupTrace {
	if logger == nil || logger.GetLevel() > zerolog.DebugLevel {
		return nil
	}
	return &StartupTrace{
		t0:         time.Now(),
		now:        time.Now,
		milestones: make([]Milestone, 0, 8),
		logger:     logger,
	}
}

// Mark records a milestone and emits a debug line.
func (st *StartupTrace) Mark(name string) {
	if st == nil {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.finished {
		return
	}

	elapsed := st.now().Sub(st.t0)
	var delta time.Duration
	if n := len(st.milestones); n > 0 {
		delta = elapsed - st.milestones[n-1].Elapsed
	}

	m := Milestone{Name: name, Elapsed: elapsed, Delta: delta}
	st.milestones = append(st.milestones, m)

	st.logger.Debug().
		Str("milestone", m.Name).
		Int64("t_ms", m.Elapsed.Milliseconds()).
		Int64("delta_ms", m.Delta.Milliseconds()).
		Msgf("startup_trace: %s (T+%dms)", m.Name, m.Elapsed.Milliseconds())
}

// Finish emits the summary line once; later marks are ignored.
func (st *StartupTrace) Finish() {
	if st == nil {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.finished {
		return
	}
	st.finished = true

	parts := make([]string, 0, len(st.milestones))
	for _, m := range st.milestones {
		parts = append(parts, fmt.Sprintf("%s:%d", m.Name, m.Elapsed.Milliseconds()))
	}

	st.logger.Info().
		Int64("total_ms", st.now().Sub(st.t0).Milliseconds()).
		Str("milestones", strings.Join(parts, ",")).
		Msg("startup_trace: window revealed")
}

// Milestones returns a copy of the recorded milestones.
func (st *StartupTrace) Milestones() []Milestone {
	if st == nil {
		return nil
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]Milestone, len(st.milestones))
	copy(out, st.milestones)
	return out
}
