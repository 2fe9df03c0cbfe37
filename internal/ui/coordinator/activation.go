package coordinator

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/logging"
)

// ActivationOptions tunes the ActivationController.
type ActivationOptions struct {
	// Inspector opens the developer inspector on each activated surface.
	Inspector bool
	// ResizeAllSurfaces applies window resizes to hidden surfaces too.
	ResizeAllSurfaces bool
}

// activationStep is one best-effort unit of an activation.
type activationStep struct {
	name string
	run  func() error
}

// ActivationController performs "switch to view V".
type ActivationController struct {
	window    port.HostWindow
	state     *RouterState
	views     *entity.ViewSet
	opts      ActivationOptions
	inspected map[port.Surface]bool
	recorder  *eventRecorder
}

// NewActivationController creates a controller bound to window and state.
func NewActivationController(
	window port.HostWindow,
	state *RouterState,
	views *entity.ViewSet,
	opts ActivationOptions,
	recorder *eventRecorder,
) *ActivationController {
	return &ActivationController{
		window:    window,
		state:     state,
		views:     views,
		opts:      opts,
		inspected: make(map[port.Surface]bool),
		recorder:  recorder,
	}
}

// SetInspectorEnabled toggles the inspector step for future activations.
func (c *ActivationController) SetInspectorEnabled(enabled bool) {
	c.opts.Inspector = enabled
}

// Activate makes view's surface the only attached content. Each step is
// attempted even if an earlier one failed; only misuse (unknown view,
// missing surface, missing window) is returned as an error.
func (c *ActivationController) Activate(ctx context.Context, view entity.ViewID) error {
	log := logging.FromContext(ctx)

	if c.window == nil || c.window.IsDestroyed() {
		return fmt.Errorf("activate %q: %w", view, ErrNoWindow)
	}
	surface, err := c.state.Registry().GetSurface(view)
	if err != nil {
		return fmt.Errorf("activate: %w", err)
	}

	previous, hadPrevious := c.state.ActiveView()
	if hadPrevious {
		log.Debug().Str("from", string(previous)).Str("to", string(view)).Msg("switching view")
	} else {
		log.Debug().Str("to", string(view)).Msg("displaying initial view")
	}

	steps := []activationStep{
		{name: "resize", run: func() error {
			bounds, err := c.window.ContentBounds()
			if err != nil {
				return err
			}
			return surface.SetBounds(bounds)
		}},
		{name: "attach", run: func() error { return c.window.SetContent(surface) }},
		{name: "title", run: func() error { return c.window.SetTitle(c.views.Title(view)) }},
		{name: "record", run: func() error {
			c.state.setActive(view)
			return nil
		}},
	}
	if c.opts.Inspector {
		steps = append(steps, activationStep{name: "inspector", run: func() error {
			if c.inspected[surface] {
				return nil
			}
			if err := surface.OpenInspector(); err != nil {
				return err
			}
			c.inspected[surface] = true
			return nil
		}})
	}

	failed := c.runSteps(ctx, view, steps)

	event := log.Info().
		Str("event", string(entity.EventActivation)).
		Str("view", string(view)).
		Strs("failed_steps", failed)
	if hadPrevious {
		event = event.Str("previous", string(previous))
	}
	event.Msg("view activated")

	c.recorder.record(ctx, entity.LifecycleEvent{
		Kind:   entity.EventActivation,
		View:   previous,
		Target: view,
		Detail: strings.Join(failed, ","),
	})
	return nil
}

func (c *ActivationController) runSteps(ctx context.Context, view entity.ViewID, steps []activationStep) []string {
	var failed []string
	for _, step := range steps {
		if err := step.run(); err != nil {
			logging.FromContext(ctx).Warn().
				Err(err).
				Str("view", string(view)).
				Str("step", step.name).
				Msg("activation step failed, continuing")
			failed = append(failed, step.name)
		}
	}
	return failed
}

// SyncGeometry applies bounds to the active surface, and to every surface
// when ResizeAllSurfaces is set. Failures are logged and skipped.
func (c *ActivationController) SyncGeometry(ctx context.Context, bounds entity.Bounds) {
	log := logging.FromContext(ctx)

	var targets []SurfaceEntry
	if c.opts.ResizeAllSurfaces {
		targets = c.state.Registry().All()
	} else if active, ok := c.state.ActiveView(); ok {
		if s := c.state.ActiveSurface(); s != nil {
			targets = []SurfaceEntry{{View: active, Surface: s}}
		}
	}

	for _, t := range targets {
		if err := t.Surface.SetBounds(bounds); err != nil {
			log.Debug().Err(err).Str("view", string(t.View)).Msg("geometry sync skipped surface")
		}
	}
	log.Trace().Str("bounds", bounds.String()).Int("surfaces", len(targets)).Msg("geometry synced")
}
