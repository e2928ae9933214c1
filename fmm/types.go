// Package fmm defines the sentinel errors, options and result types of the
// fast-marching solver.
package fmm

import (
	"errors"

	"github.com/katalvlaran/eikon/mesh"
	"golang.org/x/exp/slog"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilMesh indicates that a nil *mesh.Mesh was passed to New or NewField.
	ErrNilMesh = errors.New("fmm: mesh is nil")

	// ErrNilSlowness indicates that a nil slowness function was passed to New.
	ErrNilSlowness = errors.New("fmm: slowness is nil")

	// ErrNoTargets indicates that Solve was called without targets.
	ErrNoTargets = errors.New("fmm: no targets given")

	// ErrNoSeeds indicates that no target produced a seed vertex (every
	// target lies outside the navigable domain).
	ErrNoSeeds = errors.New("fmm: targets seed no vertex")

	// ErrAlreadySolved indicates a second Solve without an intervening Reset.
	ErrAlreadySolved = errors.New("fmm: solver already used; call Reset first")

	// ErrVertexNotFound indicates a vertex target referencing a missing vertex.
	ErrVertexNotFound = errors.New("fmm: target vertex not found in mesh")

	// ErrNilSignedDistance indicates a vertex target without a distance function.
	ErrNilSignedDistance = errors.New("fmm: vertex target needs a signed-distance function")

	// ErrBadEpsilon indicates a non-positive geometric tolerance.
	ErrBadEpsilon = errors.New("fmm: epsilon must be positive")
)

// Update describes one change of a vertex's state. It is passed to the hook
// installed with WithUpdateHook.
//
// Seeds report Old = +Inf and Tag = Known. Improvements report Tag = Trial.
// Freezing reports Old == New and Tag = Known.
type Update struct {
	Vertex mesh.VertexID
	Old    float64
	New    float64
	Tag    mesh.Tag
}

// Result summarizes a completed Solve.
type Result struct {
	// Seeds is the number of vertices seeded from the targets.
	Seeds int
	// Frozen is the number of vertices popped from the narrow band.
	Frozen int
	// Updates is the number of times a vertex potential was lowered.
	Updates int
	// FailedWalks counts cone walks that hit the boundary without a
	// usable virtual vertex.
	FailedWalks int
}

// Options configures a Solver.
//
// Epsilon    – geometric tolerance for angle and length tests (default 1e-12).
// Logger     – diagnostics sink (default slog.Default()).
// UpdateHook – optional observer for every state change; nil disables it.
type Options struct {
	Epsilon    float64
	Logger     *slog.Logger
	UpdateHook func(Update)
}

// Option represents a functional option for configuring the Solver.
type Option func(*Options)

// WithEpsilon sets the geometric tolerance. Panics on e ≤ 0.
func WithEpsilon(e float64) Option {
	if !(e > 0) {
		panic(ErrBadEpsilon.Error())
	}
	return func(o *Options) {
		o.Epsilon = e
	}
}

// WithLogger sets the logger used for diagnostics. A nil logger restores the
// default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithUpdateHook installs an observer called synchronously on every state
// change, in the order the changes happen.
func WithUpdateHook(fn func(Update)) Option {
	return func(o *Options) {
		o.UpdateHook = fn
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Epsilon: 1e-12
//   - Logger:  slog.Default()
//   - UpdateHook: nil
func DefaultOptions() Options {
	return Options{
		Epsilon: 1e-12,
		Logger:  slog.Default(),
	}
}
