package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilMesh indicates that a nil *mesh.Mesh was passed to Dijkstra.
	ErrNilMesh = errors.New("dijkstra: mesh is nil")

	// ErrNilSlowness indicates that no slowness function was supplied.
	ErrNilSlowness = errors.New("dijkstra: slowness is nil")

	// ErrNoSources indicates an empty source list.
	ErrNoSources = errors.New("dijkstra: no source vertices")

	// ErrVertexNotFound indicates a source id outside the mesh.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in mesh")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or
	// NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of Dijkstra.
//
// MaxDistance – vertices whose distance would exceed this value are not
// explored and keep +Inf. Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if !(max >= 0) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns the defaults: no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}
