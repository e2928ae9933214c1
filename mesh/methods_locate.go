// File: methods_locate.go
// Role: Point location, polygon/face intersection and barycentric coordinates.
// Determinism:
//   - Candidate faces are sorted by FaceID before testing; Locate returns the
//     lowest-id non-boundary face containing the point.
// Concurrency:
//   - All methods are read-only and safe on a mesh nobody is mutating.

package mesh

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/quadtree"
)

// containEps is the barycentric tolerance for "point on edge" tests.
const containEps = 1e-9

// faceRef is a quadtree entry: a face keyed by its centroid.
type faceRef struct {
	id       FaceID
	centroid orb.Point
}

// Point implements orb.Pointer.
func (r faceRef) Point() orb.Point { return r.centroid }

// faceIndex finds faces near a point. Queries pad the search box by the
// largest centroid-to-vertex distance, so every face that can contain the
// point is returned as a candidate.
type faceIndex struct {
	tree  *quadtree.Quadtree
	reach float64
}

// newFaceIndex indexes all faces of m by centroid.
func newFaceIndex(m *Mesh) *faceIndex {
	idx := &faceIndex{tree: quadtree.New(m.bound.Pad(1e-9))}
	for f := range m.faces {
		ps := m.FacePoints(FaceID(f))
		c := orb.Point{(ps[0][0] + ps[1][0] + ps[2][0]) / 3, (ps[0][1] + ps[1][1] + ps[2][1]) / 3}
		for _, p := range ps {
			idx.reach = math.Max(idx.reach, planar.Distance(c, p))
		}
		// The centroid is inside the padded mesh bound, so Add cannot fail.
		_ = idx.tree.Add(faceRef{id: FaceID(f), centroid: c})
	}

	return idx
}

// candidates returns the ids of faces whose centroid lies in b padded by the
// index reach, ascending.
func (idx *faceIndex) candidates(b orb.Bound) []FaceID {
	found := idx.tree.InBound(nil, b.Pad(idx.reach+containEps))
	ids := make([]FaceID, 0, len(found))
	for _, p := range found {
		ids = append(ids, p.(faceRef).id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Locate returns the lowest-id non-boundary face containing p.
// ok is false when p is outside the domain or only boundary faces contain it.
func (m *Mesh) Locate(p orb.Point) (FaceID, bool) {
	for _, f := range m.index.candidates(p.Bound()) {
		if !m.faces[f].Boundary && m.Contains(f, p) {
			return f, true
		}
	}

	return NoFace, false
}

// FacesContaining returns every non-boundary face containing p (several when
// p lies on a shared edge or vertex), ascending.
func (m *Mesh) FacesContaining(p orb.Point) []FaceID {
	var out []FaceID
	for _, f := range m.index.candidates(p.Bound()) {
		if !m.faces[f].Boundary && m.Contains(f, p) {
			out = append(out, f)
		}
	}

	return out
}

// FacesIntersecting returns every non-boundary face that overlaps poly
// (shares at least one point with it), ascending.
func (m *Mesh) FacesIntersecting(poly orb.Polygon) []FaceID {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return nil
	}
	var out []FaceID
	pb := poly.Bound()
	for _, f := range m.index.candidates(pb) {
		if m.faces[f].Boundary {
			continue
		}
		if m.faceBound(f).Intersects(pb) && m.intersectsPolygon(f, poly) {
			out = append(out, f)
		}
	}

	return out
}

// Contains reports whether p lies inside f or on its edges. Degenerate
// (zero-area) faces contain nothing.
func (m *Mesh) Contains(f FaceID, p orb.Point) bool {
	l0, l1, l2, ok := m.barycentric(f, p)

	return ok && l0 >= -containEps && l1 >= -containEps && l2 >= -containEps
}

// Barycentric returns the barycentric coordinates of p with respect to the
// CCW vertices of f. ok is false for degenerate faces.
func (m *Mesh) Barycentric(f FaceID, p orb.Point) (l0, l1, l2 float64, ok bool) {
	return m.barycentric(f, p)
}

func (m *Mesh) barycentric(f FaceID, p orb.Point) (float64, float64, float64, bool) {
	ps := m.FacePoints(f)
	det := signedArea(ps[0], ps[1], ps[2])
	if math.Abs(det) < 1e-300 {
		return 0, 0, 0, false
	}
	l1 := signedArea(ps[0], p, ps[2]) / det
	l2 := signedArea(ps[0], ps[1], p) / det

	return 1 - l1 - l2, l1, l2, true
}

// faceBound returns the bounding box of f.
func (m *Mesh) faceBound(f FaceID) orb.Bound {
	ps := m.FacePoints(f)

	return ps[0].Bound().Extend(ps[1]).Extend(ps[2])
}

// intersectsPolygon tests triangle f against poly: a triangle vertex inside
// the polygon, a polygon vertex inside the triangle, or crossing edges.
func (m *Mesh) intersectsPolygon(f FaceID, poly orb.Polygon) bool {
	ps := m.FacePoints(f)
	for _, p := range ps {
		if planar.PolygonContains(poly, p) {
			return true
		}
	}
	for _, ring := range poly {
		for i, q := range ring {
			if m.Contains(f, q) {
				return true
			}
			r := ring[(i+1)%len(ring)]
			for k := 0; k < 3; k++ {
				if segmentsIntersect(ps[k], ps[(k+1)%3], q, r) {
					return true
				}
			}
		}
	}

	return false
}

// segmentsIntersect reports whether segments ab and cd share a point.
func segmentsIntersect(a, b, c, d orb.Point) bool {
	d1 := signedArea(c, d, a)
	d2 := signedArea(c, d, b)
	d3 := signedArea(a, b, c)
	d4 := signedArea(a, b, d)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	return (d1 == 0 && onSegment(c, d, a)) || (d2 == 0 && onSegment(c, d, b)) ||
		(d3 == 0 && onSegment(a, b, c)) || (d4 == 0 && onSegment(a, b, d))
}

// onSegment reports whether collinear point p lies within the box of ab.
func onSegment(a, b, p orb.Point) bool {
	return math.Min(a[0], b[0]) <= p[0] && p[0] <= math.Max(a[0], b[0]) &&
		math.Min(a[1], b[1]) <= p[1] && p[1] <= math.Max(a[1], b[1])
}
