package port

import (
	"context"

	"github.com/bnema/switchboard/internal/domain/entity"
)

// EventJournal persists lifecycle events for operators and test tooling.
type EventJournal interface {
	Record(ctx context.Context, event entity.LifecycleEvent) error
}

// EventJournalReader lists journaled events, most recent first.
type EventJournalReader interface {
	Recent(ctx context.Context, limit int) ([]entity.LifecycleEvent, error)
}
