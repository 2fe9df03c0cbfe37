// Package route maps URL pathnames to logical views.
package route

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/switchboard/internal/domain/entity"
)

var (
	// ErrEmptyPrefix is returned for an entry without a path prefix.
	ErrEmptyPrefix = errors.New("route prefix cannot be empty")
	// ErrRelativePrefix is returned for a prefix that does not start with "/".
	ErrRelativePrefix = errors.New("route prefix must start with /")
	// ErrOverlappingPrefix is returned when one prefix is a prefix of another.
	ErrOverlappingPrefix = errors.New("route prefixes overlap")
	// ErrUnknownTarget is returned when an entry targets a view outside the view set.
	ErrUnknownTarget = errors.New("route targets unknown view")
)

// Entry maps a pathname prefix to a view.
type Entry struct {
	Prefix string
	View   entity.ViewID
}

// Table is an ordered, immutable list of route entries. The first entry whose
// prefix the pathname starts with wins.
type Table struct {
	entries []Entry
}

// NewTable builds a table from entries, in order. Prefixes must be absolute
// and mutually exclusive.
func NewTable(entries ...Entry) (*Table, error) {
	out := make([]Entry, 0, len(entries))
	for i, e := range entries {
		if e.Prefix == "" {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.View, ErrEmptyPrefix)
		}
		if !strings.HasPrefix(e.Prefix, "/") {
			return nil, fmt.Errorf("entry %d (%q): %w", i, e.Prefix, ErrRelativePrefix)
		}
		for _, prev := range out {
			if strings.HasPrefix(e.Prefix, prev.Prefix) || strings.HasPrefix(prev.Prefix, e.Prefix) {
				return nil, fmt.Errorf("%q and %q: %w", prev.Prefix, e.Prefix, ErrOverlappingPrefix)
			}
		}
		out = append(out, e)
	}
	return &Table{entries: out}, nil
}

// FromViews builds a table from each view's path prefix, in view order.
func FromViews(views []entity.View) (*Table, error) {
	entries := make([]Entry, 0, len(views))
	for _, v := range views {
		entries = append(entries, Entry{Prefix: v.PathPrefix, View: v.ID})
	}
	return NewTable(entries...)
}

// DefaultTable returns the built-in /mail, /calendar, /account table.
func DefaultTable() *Table {
	t, err := FromViews(entity.DefaultViews())
	if err != nil {
		panic("route: built-in table is invalid: " + err.Error())
	}
	return t
}

// Resolve returns the view owning pathname. Matching is case-sensitive and
// literal; ok is false when no prefix matches.
func (t *Table) Resolve(pathname string) (view entity.ViewID, ok bool) {
	if t == nil {
		return "", false
	}
	for _, e := range t.entries {
		if strings.HasPrefix(pathname, e.Prefix) {
			return e.View, true
		}
	}
	return "", false
}

// ResolveURL resolves raw (absolute or relative to base) and returns the
// pathname it was matched on. An unparsable URL never matches.
func (t *Table) ResolveURL(raw, base string) (pathname string, view entity.ViewID, ok bool) {
	pathname, err := Pathname(raw, base)
	if err != nil {
		return "", "", false
	}
	view, ok = t.Resolve(pathname)
	return pathname, view, ok
}

// Entries returns a copy of the ordered entries.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Validate checks that every entry targets a view in views.
func Validate(t *Table, views *entity.ViewSet) error {
	for _, e := range t.Entries() {
		if !views.Has(e.View) {
			return fmt.Errorf("%q -> %q: %w", e.Prefix, e.View, ErrUnknownTarget)
		}
	}
	return nil
}

// Pathname extracts the path of raw, resolving it against base when raw is
// relative. The path keeps its percent-encoding, so "/%6Dail" is not
// "/mail". An empty path is reported as "/".
func Pathname(raw, base string) (string, error) {
	ref, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", raw, err)
	}
	if !ref.IsAbs() && base != "" {
		baseURL, err := url.Parse(base)
		if err != nil {
			return "", fmt.Errorf("parse base %q: %w", base, err)
		}
		ref = baseURL.ResolveReference(ref)
	}
	p := ref.EscapedPath()
	if p == "" {
		return "/", nil
	}
	return p, nil
}
