// Package usecase holds application operations driven by the CLI.
package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/logging"
)

// DefaultEventsLimit is used when Execute is called with a non-positive limit.
const DefaultEventsLimit = 50

// ListLifecycleEventsUseCase reads the journal tail and groups it by run.
type ListLifecycleEventsUseCase struct {
	reader port.EventJournalReader
}

// NewListLifecycleEventsUseCase creates a new ListLifecycleEventsUseCase.
func NewListLifecycleEventsUseCase(reader port.EventJournalReader) *ListLifecycleEventsUseCase {
	return &ListLifecycleEventsUseCase{reader: reader}
}

// ListLifecycleEventsOutput holds the events, newest first, and one summary
// per run, most recent run first.
type ListLifecycleEventsOutput struct {
	Events []entity.LifecycleEvent
	Runs   []entity.RunSummary
}

// Execute returns up to limit events.
func (uc *ListLifecycleEventsUseCase) Execute(ctx context.Context, limit int) (*ListLifecycleEventsOutput, error) {
	log := logging.FromContext(ctx)

	if limit <= 0 {
		limit = DefaultEventsLimit
	}

	events, err := uc.reader.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}

	runs := summarizeRuns(events)
	log.Debug().Int("events", len(events)).Int("runs", len(runs)).Msg("listed lifecycle events")

	return &ListLifecycleEventsOutput{Events: events, Runs: runs}, nil
}

// summarizeRuns expects events newest first.
func summarizeRuns(events []entity.LifecycleEvent) []entity.RunSummary {
	index := make(map[string]int)
	var runs []entity.RunSummary

	for _, ev := range events {
		i, ok := index[ev.SessionID]
		if !ok {
			i = len(runs)
			index[ev.SessionID] = i
			runs = append(runs, entity.RunSummary{SessionID: ev.SessionID, Last: ev.At})
		}
		run := &runs[i]
		run.Events++
		run.First = ev.At

		switch ev.Kind {
		case entity.EventLoadFailed:
			run.Failures++
		case entity.EventSurfaceCrashed:
			run.Crashes++
		case entity.EventNavigationIntercepted:
			run.Redirects++
		case entity.EventStartupTimeout:
			run.TimedOut = true
		}
	}
	return runs
}
