package fmm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eikon/mesh"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Target is a region the front starts from (the Dirichlet boundary of the
// Eikonal equation). Implementations are provided by Points, Shapes and
// Vertices.
type Target interface {
	// seed writes candidate start values into seeds (one slot per vertex,
	// +Inf = unseeded), keeping the minimum of overlapping candidates.
	seed(s *Solver, seeds []float64) error
}

// Points returns a target made of points. Every vertex of every
// non-boundary face containing a point is seeded with |v − p|·F(v).
func Points(ps ...orb.Point) Target { return pointTarget(ps) }

// Shapes returns a target made of polygons. Every vertex of every
// non-boundary face overlapping a polygon is seeded with
// dist(v, polygon)·F(v), where the distance is 0 inside the polygon.
func Shapes(polys ...orb.Polygon) Target { return shapeTarget(polys) }

// Vertices returns a target made of pre-selected vertices and an external
// signed-distance function. The vertices and their immediate neighbours are
// seeded with max(sdf(v), 0)·F(v).
func Vertices(ids []mesh.VertexID, sdf func(orb.Point) float64) Target {
	return vertexTarget{ids: ids, sdf: sdf}
}

type pointTarget []orb.Point

func (t pointTarget) seed(s *Solver, seeds []float64) error {
	for _, p := range t {
		for _, f := range s.m.FacesContaining(p) {
			for _, v := range s.m.FaceVertices(f) {
				q := s.m.Position(v)
				offerSeed(seeds, v, planar.Distance(p, q)*s.f.At(q))
			}
		}
	}

	return nil
}

type shapeTarget []orb.Polygon

func (t shapeTarget) seed(s *Solver, seeds []float64) error {
	for _, poly := range t {
		for _, f := range s.m.FacesIntersecting(poly) {
			for _, v := range s.m.FaceVertices(f) {
				q := s.m.Position(v)
				offerSeed(seeds, v, polygonDistance(poly, q)*s.f.At(q))
			}
		}
	}

	return nil
}

type vertexTarget struct {
	ids []mesh.VertexID
	sdf func(orb.Point) float64
}

func (t vertexTarget) seed(s *Solver, seeds []float64) error {
	if t.sdf == nil {
		return ErrNilSignedDistance
	}
	for _, v := range t.ids {
		if v < 0 || int(v) >= s.m.NumVertices() {
			return fmt.Errorf("%w: %d (have %d vertices)", ErrVertexNotFound, v, s.m.NumVertices())
		}
		offerSeed(seeds, v, t.value(s, v))
		for _, u := range s.m.AdjacentVertices(v) {
			offerSeed(seeds, u, t.value(s, u))
		}
	}

	return nil
}

func (t vertexTarget) value(s *Solver, v mesh.VertexID) float64 {
	q := s.m.Position(v)

	return math.Max(t.sdf(q), 0) * s.f.At(q)
}

// offerSeed keeps the smaller of the existing and the new seed value.
// +Inf and NaN candidates are dropped.
func offerSeed(seeds []float64, v mesh.VertexID, val float64) {
	if math.IsNaN(val) || math.IsInf(val, 1) {
		return
	}
	if val < seeds[v] {
		seeds[v] = val
	}
}

// polygonDistance returns 0 for points inside poly, otherwise the distance to
// the nearest ring segment.
func polygonDistance(poly orb.Polygon, p orb.Point) float64 {
	if planar.PolygonContains(poly, p) {
		return 0
	}
	d := math.Inf(1)
	for _, ring := range poly {
		for i := 0; i+1 < len(ring); i++ {
			d = math.Min(d, planar.DistanceFromSegment(ring[i], ring[i+1], p))
		}
		if n := len(ring); n > 1 && !ring.Closed() {
			d = math.Min(d, planar.DistanceFromSegment(ring[n-1], ring[0], p))
		}
	}

	return d
}
