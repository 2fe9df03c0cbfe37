package coordinator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/logging"
)

// SurfaceRecord is the registry's view of one surface.
type SurfaceRecord struct {
	View       entity.View
	Surface    port.Surface
	State      entity.SurfaceState
	URL        string
	InstanceID uuid.UUID
	LastError  string
}

// SurfaceEntry pairs a view with its surface.
type SurfaceEntry struct {
	View    entity.ViewID
	Surface port.Surface
}

// SurfaceCreatedFunc runs after a surface is created and before it starts
// loading.
type SurfaceCreatedFunc func(ctx context.Context, view entity.ViewID, surface port.Surface)

// SurfaceRegistry exclusively owns one surface per logical view.
type SurfaceRegistry struct {
	factory   port.SurfaceFactory
	views     *entity.ViewSet
	baseURL   string
	records   map[entity.ViewID]*SurfaceRecord
	unsub     map[entity.ViewID]func()
	onCreated []SurfaceCreatedFunc
	recorder  *eventRecorder
}

// NewSurfaceRegistry creates an empty registry for views.
func NewSurfaceRegistry(factory port.SurfaceFactory, views *entity.ViewSet, baseURL string, recorder *eventRecorder) *SurfaceRegistry {
	return &SurfaceRegistry{
		factory:  factory,
		views:    views,
		baseURL:  baseURL,
		records:  make(map[entity.ViewID]*SurfaceRecord),
		unsub:    make(map[entity.ViewID]func()),
		recorder: recorder,
	}
}

// InitialURL returns the address a view's surface loads at creation.
func InitialURL(baseURL string, view entity.ViewID) string {
	return strings.TrimRight(baseURL, "/") + "/" + string(view)
}

// OnSurfaceCreated registers fn for every future surface creation.
func (r *SurfaceRegistry) OnSurfaceCreated(fn SurfaceCreatedFunc) {
	if fn != nil {
		r.onCreated = append(r.onCreated, fn)
	}
}

// CreateSurface creates the surface for view and starts loading its initial
// address. Creating a second surface for the same view is a programming
// error and fails with ErrSurfaceExists.
func (r *SurfaceRegistry) CreateSurface(ctx context.Context, view entity.ViewID) (port.Surface, error) {
	v, ok := r.views.Get(view)
	if !ok {
		return nil, fmt.Errorf("create surface %q: %w", view, ErrUnknownView)
	}
	if _, exists := r.records[view]; exists {
		return nil, fmt.Errorf("create surface %q: %w", view, ErrSurfaceExists)
	}
	return r.create(ctx, v, entity.EventSurfaceCreated)
}

// Recreate destroys the surface for view and creates a fresh one in its
// place. Only the crash policy uses this.
func (r *SurfaceRegistry) Recreate(ctx context.Context, view entity.ViewID) (port.Surface, error) {
	rec, ok := r.records[view]
	if !ok {
		if !r.views.Has(view) {
			return nil, fmt.Errorf("recreate surface %q: %w", view, ErrUnknownView)
		}
		return nil, fmt.Errorf("recreate surface %q: %w", view, ErrSurfaceNotCreated)
	}

	// The crashed record stays in place until its replacement exists.
	surface, err := r.factory.NewSurface(ctx, view)
	if err != nil {
		return nil, fmt.Errorf("recreate surface %q: %w", view, err)
	}

	r.release(view)
	rec.Surface.Destroy()
	r.adopt(ctx, rec.View, surface, entity.EventSurfaceRecreated)
	return surface, nil
}

func (r *SurfaceRegistry) create(ctx context.Context, v entity.View, kind entity.LifecycleEventKind) (port.Surface, error) {
	surface, err := r.factory.NewSurface(ctx, v.ID)
	if err != nil {
		return nil, fmt.Errorf("create surface %q: %w", v.ID, err)
	}
	r.adopt(ctx, v, surface, kind)
	return surface, nil
}

// adopt starts tracking surface as the view's surface, runs the creation
// hooks and starts the initial load.
func (r *SurfaceRegistry) adopt(ctx context.Context, v entity.View, surface port.Surface, kind entity.LifecycleEventKind) {
	log := logging.FromContext(ctx)

	rec := &SurfaceRecord{
		View:       v,
		Surface:    surface,
		State:      entity.SurfaceCreated,
		InstanceID: uuid.New(),
	}
	r.records[v.ID] = rec
	r.unsub[v.ID] = surface.Subscribe(func(ev port.SurfaceEvent) {
		r.track(ctx, rec, ev)
	})

	log.Info().
		Str("event", string(kind)).
		Str("view", string(v.ID)).
		Str("instance", rec.InstanceID.String()).
		Msg("surface created")
	r.recorder.record(ctx, entity.LifecycleEvent{Kind: kind, View: v.ID, Detail: rec.InstanceID.String()})

	for _, fn := range r.onCreated {
		fn(ctx, v.ID, surface)
	}

	r.startLoad(ctx, rec)
}

func (r *SurfaceRegistry) startLoad(ctx context.Context, rec *SurfaceRecord) {
	url := InitialURL(r.baseURL, rec.View.ID)
	rec.URL = url
	rec.State = entity.SurfaceLoading

	logging.FromContext(ctx).Debug().
		Str("view", string(rec.View.ID)).
		Str("url", url).
		Msg("loading surface")

	if err := rec.Surface.Load(ctx, url); err != nil {
		r.markFailed(ctx, rec, url, &port.LoadFailure{Description: err.Error()})
	}
}

// track keeps the record in step with the surface's own events.
func (r *SurfaceRegistry) track(ctx context.Context, rec *SurfaceRecord, ev port.SurfaceEvent) {
	if r.records[rec.View.ID] != rec {
		return
	}
	log := logging.FromContext(ctx)

	switch ev.Type {
	case port.EventLoadStarted:
		// A load rejected synchronously by the surface was already marked
		// failed; its queued start must not flip it back to loading.
		if rec.State == entity.SurfaceFailed && (ev.URL == "" || ev.URL == rec.URL) {
			return
		}
		rec.State = entity.SurfaceLoading
		if ev.URL != "" {
			rec.URL = ev.URL
		}
	case port.EventLoadFinished:
		rec.State = entity.SurfaceReady
		rec.LastError = ""
		if ev.URL != "" {
			rec.URL = ev.URL
		}
		log.Info().
			Str("event", string(entity.EventLoadFinished)).
			Str("view", string(rec.View.ID)).
			Str("url", rec.URL).
			Msg("surface load finished")
		r.recorder.record(ctx, entity.LifecycleEvent{Kind: entity.EventLoadFinished, View: rec.View.ID, URL: rec.URL})
	case port.EventLoadFailed:
		failure := ev.Failure
		if failure == nil {
			failure = &port.LoadFailure{}
		}
		r.markFailed(ctx, rec, ev.URL, failure)
	case port.EventNavigatedInPage:
		if ev.URL != "" {
			rec.URL = ev.URL
		}
	case port.EventCrashed:
		rec.State = entity.SurfaceCrashed
		reason := ""
		if ev.Crash != nil {
			reason = ev.Crash.Reason
		}
		rec.LastError = reason
		log.Error().
			Str("event", string(entity.EventSurfaceCrashed)).
			Str("view", string(rec.View.ID)).
			Str("reason", reason).
			Msg("surface crashed")
		r.recorder.record(ctx, entity.LifecycleEvent{Kind: entity.EventSurfaceCrashed, View: rec.View.ID, URL: rec.URL, Detail: reason})
	}
}

func (r *SurfaceRegistry) markFailed(ctx context.Context, rec *SurfaceRecord, url string, failure *port.LoadFailure) {
	if url == "" {
		url = rec.URL
	}
	rec.State = entity.SurfaceFailed
	rec.LastError = fmt.Sprintf("%d %s", failure.Code, failure.Description)

	logging.FromContext(ctx).Error().
		Str("event", string(entity.EventLoadFailed)).
		Str("view", string(rec.View.ID)).
		Str("url", url).
		Int("code", failure.Code).
		Str("description", failure.Description).
		Msg("surface failed to load")
	r.recorder.record(ctx, entity.LifecycleEvent{
		Kind:   entity.EventLoadFailed,
		View:   rec.View.ID,
		URL:    url,
		Detail: rec.LastError,
	})
}

// GetSurface returns the surface for view.
func (r *SurfaceRegistry) GetSurface(view entity.ViewID) (port.Surface, error) {
	rec, ok := r.records[view]
	if !ok {
		if !r.views.Has(view) {
			return nil, fmt.Errorf("surface %q: %w", view, ErrUnknownView)
		}
		return nil, fmt.Errorf("surface %q: %w", view, ErrSurfaceNotCreated)
	}
	return rec.Surface, nil
}

// Record returns a copy of the tracked record for view.
func (r *SurfaceRegistry) Record(view entity.ViewID) (SurfaceRecord, bool) {
	rec, ok := r.records[view]
	if !ok {
		return SurfaceRecord{}, false
	}
	return *rec, true
}

// All returns every created surface. Callers must not rely on the order.
func (r *SurfaceRegistry) All() []SurfaceEntry {
	out := make([]SurfaceEntry, 0, len(r.records))
	for _, id := range r.views.IDs() {
		if rec, ok := r.records[id]; ok {
			out = append(out, SurfaceEntry{View: id, Surface: rec.Surface})
		}
	}
	return out
}

// Views returns the configured view set.
func (r *SurfaceRegistry) Views() *entity.ViewSet {
	return r.views
}

func (r *SurfaceRegistry) release(view entity.ViewID) {
	if unsub, ok := r.unsub[view]; ok && unsub != nil {
		unsub()
	}
	delete(r.unsub, view)
	delete(r.records, view)
}

// Close stops tracking and destroys every surface. Used at window teardown.
func (r *SurfaceRegistry) Close() {
	for _, id := range r.views.IDs() {
		rec, ok := r.records[id]
		if !ok {
			continue
		}
		r.release(id)
		rec.Surface.Destroy()
	}
}
