package config

import (
	"fmt"

	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/domain/route"
)

// DomainViews converts the configured views to domain views, in order.
func (c *Config) DomainViews() []entity.View {
	views := make([]entity.View, 0, len(c.Views))
	for _, v := range c.Views {
		views = append(views, entity.View{
			ID:         entity.ViewID(v.ID),
			Title:      v.Title,
			PathPrefix: v.PathPrefix,
		})
	}
	return views
}

// ViewSet builds the view set.
func (c *Config) ViewSet() (*entity.ViewSet, error) {
	return entity.NewViewSet(c.DomainViews())
}

// RouteTable builds the route table from the view prefixes.
func (c *Config) RouteTable() (*route.Table, error) {
	t, err := route.FromViews(c.DomainViews())
	if err != nil {
		return nil, fmt.Errorf("build route table: %w", err)
	}
	return t, nil
}

// CrashPolicy returns the configured crash policy.
func (c *Config) CrashPolicy() entity.CrashPolicy {
	return entity.CrashPolicy(c.Surfaces.CrashPolicy)
}
