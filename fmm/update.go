package fmm

import (
	"math"

	"github.com/katalvlaran/eikon/mesh"
	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/spatial/r2"
)

// vec converts an orb point to a gonum vector.
func vec(p orb.Point) r2.Vec { return r2.Vec{X: p[0], Y: p[1]} }

// usable reports whether v carries a value an update may read.
func (s *Solver) usable(v mesh.VertexID) bool {
	return s.m.Tag(v) != mesh.Far
}

// faceCandidate returns the candidate potential of p computed from face f,
// +Inf when the face is not feasible. cost is the slowness at p.
func (s *Solver) faceCandidate(p mesh.VertexID, f mesh.FaceID, cost float64) float64 {
	// 1) Identify A and B as the other two vertices (CCW after p).
	e := s.m.EdgeFrom(f, p)
	a := s.m.Dest(e)
	b := s.m.Edge(s.m.Edge(e).Prev).Origin

	// 2) Both must be Trial or Known.
	if !s.usable(a) || !s.usable(b) {
		return math.Inf(1)
	}

	P, A, B := vec(s.m.Position(p)), vec(s.m.Position(a)), vec(s.m.Position(b))
	ta, tb := s.m.Potential(a), s.m.Potential(b)

	// 3) Degenerate faces reduce to the one-point update.
	dA, dB := r2.Sub(A, P), r2.Sub(B, P)
	la, lb := r2.Norm(dA), r2.Norm(dB)
	if la < s.opts.Epsilon || lb < s.opts.Epsilon || r2.Norm(r2.Sub(A, B)) < s.opts.Epsilon {
		return onePoint(ta, la, tb, lb, cost)
	}

	// 4) Acute angle at p: direct two-point update.
	if r2.Dot(dA, dB)/(la*lb) > s.opts.Epsilon {
		return twoPoint(P, A, B, ta, tb, cost, s.opts.Epsilon)
	}

	// 5) Non-acute: split the face with a virtual vertex.
	d, ok := s.virtualVertex(p, a, b, f)
	if !ok {
		s.failedWalks++
		s.warnWalk(p, f)

		return math.Inf(1)
	}
	D := vec(s.m.Position(d))
	td := s.m.Potential(d)

	return math.Min(
		twoPoint(P, A, D, ta, td, cost, s.opts.Epsilon),
		twoPoint(P, D, B, td, tb, cost, s.opts.Epsilon),
	)
}

// warnWalk logs a failed cone walk once per (vertex, face) and Solve; the
// same walk fails again on every recompute of a hull vertex.
func (s *Solver) warnWalk(p mesh.VertexID, f mesh.FaceID) {
	key := walkKey{v: p, f: f}
	if _, seen := s.warned[key]; seen {
		return
	}
	if s.warned == nil {
		s.warned = make(map[walkKey]struct{})
	}
	s.warned[key] = struct{}{}
	s.opts.Logger.Warn("fmm: cone walk reached the boundary without a usable vertex",
		"vertex", int(p), "face", int(f))
}

// onePoint is the edge update min(tA + |PA|·f, tB + |PB|·f).
func onePoint(ta, la, tb, lb, cost float64) float64 {
	return math.Min(ta+la*cost, tb+lb*cost)
}

// twoPoint solves the triangle update at P from A and B.
//
// With tA ≤ tB (swapped if needed), u = tB − tA, a = |PB|, b = |PA|, c = |AB|
// and θ the angle at P, t solves
//
//	c²·t² + 2bu(a·cosθ − b)·t + b²(u² − f²a²·sin²θ) = 0
//
// (larger root). The result tA + t is accepted when the front arrives after
// both inputs (u < t) and its direction lies between PA and PB
// (a·cosθ < b(t−u)/t < a/cosθ); otherwise the one-point update is returned.
func twoPoint(P, A, B r2.Vec, ta, tb, cost, eps float64) float64 {
	if tb < ta {
		A, B = B, A
		ta, tb = tb, ta
	}
	dA, dB := r2.Sub(A, P), r2.Sub(B, P)
	b := r2.Norm(dA)
	a := r2.Norm(dB)
	one := onePoint(ta, b, tb, a, cost)

	c2 := r2.Norm2(r2.Sub(A, B))
	if a < eps || b < eps || c2 < eps*eps {
		return one
	}
	cos := r2.Dot(dA, dB) / (a * b)
	if cos <= eps {
		return one
	}
	sin2 := 1 - cos*cos

	u := tb - ta
	qb := 2 * b * u * (a*cos - b)
	qc := b * b * (u*u - cost*cost*a*a*sin2)
	disc := qb*qb - 4*c2*qc
	if disc < 0 {
		return one
	}
	t := (-qb + math.Sqrt(disc)) / (2 * c2)
	if !(u < t) {
		return one
	}
	ratio := b * (t - u) / t
	if !(a*cos < ratio && ratio < a/cos) {
		return one
	}

	return math.Min(ta+t, one)
}
