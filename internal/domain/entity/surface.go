package entity

// SurfaceState is the liveness of a rendering surface.
type SurfaceState int

const (
	SurfaceCreated SurfaceState = iota
	SurfaceLoading
	SurfaceReady
	SurfaceCrashed
	SurfaceFailed
)

func (s SurfaceState) String() string {
	switch s {
	case SurfaceCreated:
		return "created"
	case SurfaceLoading:
		return "loading"
	case SurfaceReady:
		return "ready"
	case SurfaceCrashed:
		return "crashed"
	case SurfaceFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsUsable reports whether the surface can still display content.
func (s SurfaceState) IsUsable() bool {
	return s != SurfaceCrashed
}

// CrashPolicy selects what happens to a surface whose renderer died.
type CrashPolicy string

const (
	// CrashPolicyKeep leaves the crashed surface in place until restart.
	CrashPolicyKeep CrashPolicy = "keep"
	// CrashPolicyRecreate replaces the crashed surface with a fresh one.
	CrashPolicyRecreate CrashPolicy = "recreate"
)
