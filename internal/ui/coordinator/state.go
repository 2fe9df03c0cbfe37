package coordinator

import (
	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
)

// RouterState is the single mutable record of which view is on screen.
// It is owned by one window session, confined to the control thread, and
// only the ActivationController changes the active view.
type RouterState struct {
	active    entity.ViewID
	hasActive bool
	registry  *SurfaceRegistry
}

// NewRouterState creates a state with no active view.
func NewRouterState(registry *SurfaceRegistry) *RouterState {
	return &RouterState{registry: registry}
}

// ActiveView returns the active view; ok is false before the first activation.
func (s *RouterState) ActiveView() (view entity.ViewID, ok bool) {
	return s.active, s.hasActive
}

// ActiveSurface returns the active view's surface, or nil.
func (s *RouterState) ActiveSurface() port.Surface {
	if !s.hasActive {
		return nil
	}
	surface, err := s.registry.GetSurface(s.active)
	if err != nil {
		return nil
	}
	return surface
}

// Registry returns the registry holding every surface.
func (s *RouterState) Registry() *SurfaceRegistry {
	return s.registry
}

func (s *RouterState) setActive(view entity.ViewID) {
	s.active = view
	s.hasActive = true
}
