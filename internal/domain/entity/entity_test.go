package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewSet(t *testing.T) {
	set, err := NewViewSet(DefaultViews())
	require.NoError(t, err)

	assert.Equal(t, []ViewID{ViewMail, ViewCalendar, ViewAccount}, set.IDs())
	assert.True(t, set.Has(ViewCalendar))
	assert.False(t, set.Has("contacts"))
	assert.Equal(t, "Proton Calendar", set.Title(ViewCalendar))
	assert.Equal(t, "contacts", set.Title("contacts"))

	v, ok := set.Get(ViewAccount)
	require.True(t, ok)
	assert.Equal(t, "/account", v.PathPrefix)
}

func TestNewViewSet_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		views []View
	}{
		{name: "empty", views: nil},
		{name: "empty id", views: []View{{ID: "", PathPrefix: "/x"}}},
		{name: "duplicate", views: []View{{ID: ViewMail}, {ID: ViewMail}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewViewSet(tt.views)
			assert.Error(t, err)
		})
	}
}

func TestViewSet_CopiesAreIndependent(t *testing.T) {
	set, err := NewViewSet(DefaultViews())
	require.NoError(t, err)

	ids := set.IDs()
	ids[0] = "changed"
	views := set.Views()
	views[0].Title = "changed"

	assert.Equal(t, ViewMail, set.IDs()[0])
	assert.Equal(t, "Proton Mail", set.Title(ViewMail))
}

func TestSurfaceState(t *testing.T) {
	assert.Equal(t, "ready", SurfaceReady.String())
	assert.Equal(t, "crashed", SurfaceCrashed.String())
	assert.Equal(t, "unknown", SurfaceState(42).String())

	assert.True(t, SurfaceFailed.IsUsable())
	assert.False(t, SurfaceCrashed.IsUsable())
}

func TestBounds(t *testing.T) {
	b := ContentBounds(1200, 800)
	assert.Equal(t, Bounds{Width: 1200, Height: 800}, b)
	assert.False(t, b.IsEmpty())
	assert.True(t, ContentBounds(0, 800).IsEmpty())
	assert.Equal(t, "1200x800+0+0", b.String())
}
