// Package entity defines domain entities for the shell.
package entity

import "fmt"

// ViewID identifies a logical view (mail, calendar, account).
type ViewID string

// Built-in logical views.
const (
	ViewMail     ViewID = "mail"
	ViewCalendar ViewID = "calendar"
	ViewAccount  ViewID = "account"
)

// String returns the view identifier.
func (id ViewID) String() string {
	return string(id)
}

// View describes one logical view: its identity, the window title shown
// while it is active, and the path prefix that routes to it.
type View struct {
	ID         ViewID
	Title      string
	PathPrefix string
}

// DefaultViews returns the built-in view set in routing order.
func DefaultViews() []View {
	return []View{
		{ID: ViewMail, Title: "Proton Mail", PathPrefix: "/mail"},
		{ID: ViewCalendar, Title: "Proton Calendar", PathPrefix: "/calendar"},
		{ID: ViewAccount, Title: "Proton Account", PathPrefix: "/account"},
	}
}

// ViewSet is the immutable set of views known to a running shell.
type ViewSet struct {
	order []ViewID
	byID  map[ViewID]View
}

// NewViewSet builds a ViewSet, rejecting empty or duplicate identifiers.
func NewViewSet(views []View) (*ViewSet, error) {
	if len(views) == 0 {
		return nil, fmt.Errorf("view set cannot be empty")
	}

	set := &ViewSet{
		order: make([]ViewID, 0, len(views)),
		byID:  make(map[ViewID]View, len(views)),
	}
	for _, v := range views {
		if v.ID == "" {
			return nil, fmt.Errorf("view id cannot be empty")
		}
		if _, dup := set.byID[v.ID]; dup {
			return nil, fmt.Errorf("duplicate view %q", v.ID)
		}
		set.order = append(set.order, v.ID)
		set.byID[v.ID] = v
	}
	return set, nil
}

// Get returns the view with the given identifier.
func (s *ViewSet) Get(id ViewID) (View, bool) {
	v, ok := s.byID[id]
	return v, ok
}

// Has reports whether id is part of the set.
func (s *ViewSet) Has(id ViewID) bool {
	_, ok := s.byID[id]
	return ok
}

// IDs returns the identifiers in configured order.
func (s *ViewSet) IDs() []ViewID {
	out := make([]ViewID, len(s.order))
	copy(out, s.order)
	return out
}

// Views returns the views in configured order.
func (s *ViewSet) Views() []View {
	out := make([]View, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Title returns the display title for id, falling back to the identifier.
func (s *ViewSet) Title(id ViewID) string {
	if v, ok := s.byID[id]; ok && v.Title != "" {
		return v.Title
	}
	return string(id)
}
