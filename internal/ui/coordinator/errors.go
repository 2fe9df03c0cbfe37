package coordinator

import "errors"

var (
	// ErrUnknownView is returned when a view is not part of the configured set.
	ErrUnknownView = errors.New("unknown view")
	// ErrSurfaceExists is returned when a surface is created twice for one view.
	ErrSurfaceExists = errors.New("surface already exists")
	// ErrSurfaceNotCreated is returned when a known view has no surface yet.
	ErrSurfaceNotCreated = errors.New("surface not created")
	// ErrNoWindow is returned when activation runs without a live host window.
	ErrNoWindow = errors.New("host window not available")
	// ErrWindowExists is returned when a second window is requested.
	ErrWindowExists = errors.New("host window already exists")
)
