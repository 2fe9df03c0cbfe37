package coordinator

import (
	"context"
	"time"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/logging"
)

// eventRecorder mirrors lifecycle transitions into the journal. A nil
// recorder or journal records nothing.
type eventRecorder struct {
	journal   port.EventJournal
	sessionID string
	now       func() time.Time
}

func newEventRecorder(journal port.EventJournal, sessionID string) *eventRecorder {
	return &eventRecorder{journal: journal, sessionID: sessionID, now: time.Now}
}

func (r *eventRecorder) record(ctx context.Context, ev entity.LifecycleEvent) {
	if r == nil || r.journal == nil {
		return
	}
	ev.SessionID = r.sessionID
	if ev.At.IsZero() {
		ev.At = r.now()
	}
	if err := r.journal.Record(ctx, ev); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("kind", string(ev.Kind)).Msg("failed to journal lifecycle event")
	}
}
