package fmm

import (
	"github.com/katalvlaran/eikon/mesh"
	"gonum.org/v1/gonum/spatial/r2"
)

// virtualVertex walks away from p across edge ab of face f looking for a
// usable vertex strictly inside the cone
//
//	{ d : d·(A−P) > 0 and d·(B−P) > 0 }
//
// bounded by PA rotated 90° toward B and PB rotated 90° toward A. Every
// vertex in that cone splits the non-acute angle at p into two acute ones.
//
// The walk keeps the crossed edge as (l, r) with l on A's side of the cone.
// In each new face the opposite vertex w either lies past one cone ray, and
// the walk leaves through the single edge the cone still overlaps, or lies
// inside the cone, and the walk follows the cone bisector. It stops with
// ok = false at a hull edge, a boundary face, or after NumFaces steps.
func (s *Solver) virtualVertex(p, a, b mesh.VertexID, f mesh.FaceID) (mesh.VertexID, bool) {
	P := vec(s.m.Position(p))
	dA := r2.Sub(vec(s.m.Position(a)), P)
	dB := r2.Sub(vec(s.m.Position(b)), P)
	nA, nB := r2.Norm(dA), r2.Norm(dB)
	bisector := r2.Add(r2.Scale(1/nA, dA), r2.Scale(1/nB, dB))
	// Sign of the A side relative to the bisector.
	sideA := r2.Cross(bisector, dA)

	l, r := a, b
	face := f
	for step := 0; step < s.m.NumFaces(); step++ {
		// 1) Cross the current edge.
		e := s.m.EdgeBetween(face, l, r)
		if e == mesh.NoEdge {
			return mesh.NoVertex, false
		}
		next, ok := s.m.FaceAcross(e)
		if !ok || s.m.IsBoundary(next) {
			return mesh.NoVertex, false
		}
		face = next
		w := s.m.Opposite(face, l, r)
		if w == mesh.NoVertex || w == p {
			return mesh.NoVertex, false
		}

		// 2) Classify w against the cone.
		dW := r2.Sub(vec(s.m.Position(w)), P)
		nW := r2.Norm(dW)
		if nW < s.opts.Epsilon {
			return mesh.NoVertex, false
		}
		sA := r2.Dot(dW, dA) / (nW * nA)
		sB := r2.Dot(dW, dB) / (nW * nB)
		inside := sA > s.opts.Epsilon && sB > s.opts.Epsilon
		if inside && s.usable(w) {
			return w, true
		}

		// 3) Pick the exit edge.
		switch {
		case inside:
			if r2.Cross(bisector, dW)*sideA > 0 {
				l = w // w on A's side: the bisector leaves through (w, r)
			} else {
				r = w
			}
		case sA <= s.opts.Epsilon && sB <= s.opts.Epsilon:
			// Behind p; the walk lost the cone.
			return mesh.NoVertex, false
		case sA <= s.opts.Epsilon:
			// Past the ray bounding A's side, i.e. beyond the B side.
			r = w
		default:
			// Past the ray bounding B's side.
			l = w
		}
	}

	return mesh.NoVertex, false
}
