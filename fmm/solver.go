package fmm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eikon/mesh"
	"github.com/katalvlaran/eikon/slowness"
)

// Solver computes the arrival-time field of one target configuration on one
// mesh. It owns the mesh it mutates: nothing else may touch the mesh while a
// Solve is running. A Solver is single-use; Reset re-arms it for another
// target configuration.
type Solver struct {
	m    *mesh.Mesh
	f    slowness.Func
	opts Options
	band *narrowBand

	solved      bool
	result      Result
	failedWalks int
	warned      map[walkKey]struct{} // failed walks already logged this Solve
}

// walkKey identifies a cone walk by the updated vertex and the face it
// started from.
type walkKey struct {
	v mesh.VertexID
	f mesh.FaceID
}

// New returns a solver for m under slowness f.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMesh).
//  2. f must be non-nil (ErrNilSlowness).
func New(m *mesh.Mesh, f slowness.Func, opts ...Option) (*Solver, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultOptions().Logger
	}
	if m == nil {
		return nil, ErrNilMesh
	}
	if f == nil {
		return nil, ErrNilSlowness
	}

	return &Solver{
		m:    m,
		f:    f,
		opts: cfg,
		band: newNarrowBand(m.NumVertices()),
	}, nil
}

// Mesh returns the mesh the solver writes its state into.
func (s *Solver) Mesh() *mesh.Mesh { return s.m }

// Reset puts every vertex back to Far and empties the narrow band so the
// solver can run again. Without it stale Known tags would block
// propagation from a new target.
func (s *Solver) Reset() {
	s.m.ResetStates()
	s.band.reset()
	s.solved = false
	s.result = Result{}
	s.failedWalks = 0
	s.warned = nil
}

// Solve seeds the targets and runs the marching loop to completion.
//
// Stages:
//  1. Validate (ErrAlreadySolved, ErrNoTargets).
//  2. Seed: collect the minimum candidate per vertex over all targets, then
//     mark every seeded vertex Known (ErrNoSeeds if none).
//  3. Expand every seed once: recompute its non-Known neighbours.
//  4. Loop: pop the minimum Trial vertex, freeze it, recompute its
//     non-Known neighbours, until the band is empty.
//
// Solve is synchronous and cannot be cancelled; the freezing order is what
// makes the single pass correct.
func (s *Solver) Solve(targets ...Target) (Result, error) {
	// 1) Validate.
	if s.solved {
		return Result{}, ErrAlreadySolved
	}
	if len(targets) == 0 {
		return Result{}, ErrNoTargets
	}

	// 2) Seeds.
	seeds := make([]float64, s.m.NumVertices())
	for i := range seeds {
		seeds[i] = math.Inf(1)
	}
	for i, t := range targets {
		if t == nil {
			return Result{}, fmt.Errorf("%w: target %d is nil", ErrNoTargets, i)
		}
		if err := t.seed(s, seeds); err != nil {
			return Result{}, fmt.Errorf("fmm: target %d: %w", i, err)
		}
	}
	seeded := make([]mesh.VertexID, 0)
	for v, val := range seeds {
		if math.IsInf(val, 1) {
			continue
		}
		id := mesh.VertexID(v)
		s.m.SetState(id, mesh.VertexState{Potential: val, Tag: mesh.Known})
		s.emit(id, math.Inf(1), val, mesh.Known)
		seeded = append(seeded, id)
	}
	if len(seeded) == 0 {
		return Result{}, ErrNoSeeds
	}
	s.solved = true
	s.result.Seeds = len(seeded)
	s.opts.Logger.Debug("fmm: seeded", "vertices", len(seeded))

	// 3) Expand seeds.
	for _, v := range seeded {
		s.relax(v)
	}

	// 4) Main loop.
	for s.band.Len() > 0 {
		v, val := s.band.popMin()
		s.m.SetState(v, mesh.VertexState{Potential: val, Tag: mesh.Known})
		s.emit(v, val, val, mesh.Known)
		s.result.Frozen++
		s.relax(v)
	}

	s.result.FailedWalks = s.failedWalks
	s.opts.Logger.Debug("fmm: solved",
		"frozen", s.result.Frozen, "updates", s.result.Updates, "failedWalks", s.result.FailedWalks)

	return s.result, nil
}

// relax recomputes every non-Known neighbour of the freshly frozen vertex u.
func (s *Solver) relax(u mesh.VertexID) {
	for _, v := range s.m.AdjacentVertices(u) {
		if s.m.Tag(v) != mesh.Known {
			s.recompute(v)
		}
	}
}

// recompute takes the minimum candidate of v over all incident non-boundary
// faces and lowers v's potential if it improved.
//
// Transitions: Far→Trial (push) or Trial→Trial (improve).
func (s *Solver) recompute(v mesh.VertexID) {
	cost := s.f.At(s.m.Position(v))
	if math.IsInf(cost, 1) || math.IsNaN(cost) {
		return
	}

	best := math.Inf(1)
	for _, f := range s.m.AdjacentFaces(v) {
		if s.m.IsBoundary(f) {
			continue
		}
		if c := s.faceCandidate(v, f, cost); c < best {
			best = c
		}
	}

	st := s.m.State(v)
	if !(best < st.Potential) {
		return
	}
	s.m.SetState(v, mesh.VertexState{Potential: best, Tag: mesh.Trial})
	if s.band.contains(v) {
		s.band.improve(v, best)
	} else {
		s.band.push(v, best)
	}
	s.result.Updates++
	s.emit(v, st.Potential, best, mesh.Trial)
}

// emit forwards a state change to the update hook, if any.
func (s *Solver) emit(v mesh.VertexID, old, val float64, tag mesh.Tag) {
	if s.opts.UpdateHook != nil {
		s.opts.UpdateHook(Update{Vertex: v, Old: old, New: val, Tag: tag})
	}
}

// Field returns a frozen snapshot of the current field on an independent
// clone of the mesh. The snapshot may be queried from other goroutines while
// the solver is reset and re-run.
func (s *Solver) Field() *Field {
	return &Field{m: s.m.Clone()}
}
