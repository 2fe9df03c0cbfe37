package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
)

const (
	insertEventQuery = `INSERT INTO lifecycle_events
		(session_id, kind, view, target, url, detail, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	recentEventsQuery = `SELECT id, session_id, kind, view, target, url, detail, occurred_at
		FROM lifecycle_events
		ORDER BY id DESC
		LIMIT ?`

	pruneEventsQuery = `DELETE FROM lifecycle_events
		WHERE id <= (SELECT id FROM lifecycle_events ORDER BY id DESC LIMIT 1 OFFSET ?)`
)

// JournalRepository stores lifecycle events.
type JournalRepository struct {
	db *sql.DB
}

// Compile-time interface checks.
var (
	_ port.EventJournal       = (*JournalRepository)(nil)
	_ port.EventJournalReader = (*JournalRepository)(nil)
)

// NewJournalRepository wraps an open journal database.
func NewJournalRepository(db *sql.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// Record appends ev.
func (r *JournalRepository) Record(ctx context.Context, ev entity.LifecycleEvent) error {
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := r.db.ExecContext(ctx, insertEventQuery,
		ev.SessionID,
		string(ev.Kind),
		string(ev.View),
		string(ev.Target),
		ev.URL,
		ev.Detail,
		at.UTC().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert lifecycle event %s: %w", ev.Kind, err)
	}
	return nil
}

// Recent returns up to limit events, most recent first.
func (r *JournalRepository) Recent(ctx context.Context, limit int) ([]entity.LifecycleEvent, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, recentEventsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("query lifecycle events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := make([]entity.LifecycleEvent, 0, limit)
	for rows.Next() {
		var (
			ev                 entity.LifecycleEvent
			kind, view, target string
			occurredAt         int64
		)
		if err := rows.Scan(&ev.ID, &ev.SessionID, &kind, &view, &target, &ev.URL, &ev.Detail, &occurredAt); err != nil {
			return nil, fmt.Errorf("scan lifecycle event: %w", err)
		}
		ev.Kind = entity.LifecycleEventKind(kind)
		ev.View = entity.ViewID(view)
		ev.Target = entity.ViewID(target)
		ev.At = time.Unix(0, occurredAt).UTC()
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lifecycle events: %w", err)
	}
	return events, nil
}

// Prune deletes all but the newest keep events and returns how many were
// removed.
func (r *JournalRepository) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := r.db.ExecContext(ctx, pruneEventsQuery, keep)
	if err != nil {
		return 0, fmt.Errorf("prune lifecycle events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune lifecycle events: %w", err)
	}
	return n, nil
}
