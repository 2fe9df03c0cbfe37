package bootstrap

import (
	"fmt"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/infrastructure/config"
	"github.com/bnema/switchboard/internal/ui/coordinator"
)

// SupervisorConfig maps the file configuration onto the supervisor's.
func SupervisorConfig(cfg *config.Config, sessionID string) (coordinator.SupervisorConfig, error) {
	views, err := cfg.ViewSet()
	if err != nil {
		return coordinator.SupervisorConfig{}, fmt.Errorf("views: %w", err)
	}
	routes, err := cfg.RouteTable()
	if err != nil {
		return coordinator.SupervisorConfig{}, fmt.Errorf("routes: %w", err)
	}

	out := coordinator.SupervisorConfig{
		BaseURL:                 cfg.Content.BaseURL,
		Views:                   views,
		Routes:                  routes,
		DefaultView:             entity.ViewID(cfg.Startup.DefaultView),
		ReadyTimeout:            cfg.Startup.ReadyTimeout,
		ReadyOnInPageNavigation: cfg.Startup.ReadyOnInPageNavigation,
		CrashPolicy:             cfg.CrashPolicy(),
		TestMode:                cfg.Content.TestMode,
		PlaceholderURL:          cfg.Content.PlaceholderURL,
		Inspector:               cfg.Debug.Inspector,
		ResizeAllSurfaces:       cfg.Window.ResizeAllSurfaces,
		Window: port.WindowOptions{
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
		},
		SessionID: sessionID,
	}
	if err := out.Validate(); err != nil {
		return coordinator.SupervisorConfig{}, err
	}
	return out, nil
}
