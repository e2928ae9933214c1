package fmm

import (
	"math"

	"github.com/katalvlaran/eikon/mesh"
	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/spatial/r2"
)

// Field answers point queries against a finalized arrival-time field.
// A Field never mutates its mesh, so a Field built by Solver.Field (which
// owns a private clone) is safe for concurrent use.
type Field struct {
	m *mesh.Mesh
}

// NewField wraps an already solved mesh. The caller must not mutate m while
// the Field is in use; use Solver.Field for an independent snapshot.
func NewField(m *mesh.Mesh) (*Field, error) {
	if m == nil {
		return nil, ErrNilMesh
	}

	return &Field{m: m}, nil
}

// Mesh returns the mesh behind the field. Treat it as read-only.
func (fd *Field) Mesh() *mesh.Mesh { return fd.m }

// Potential returns the arrival time stored at v.
func (fd *Field) Potential(v mesh.VertexID) float64 { return fd.m.Potential(v) }

// Tag returns the marching tag of v.
func (fd *Field) Tag(v mesh.VertexID) mesh.Tag { return fd.m.Tag(v) }

// At returns the arrival time at p by barycentric interpolation of the
// containing face. ok is false when p is outside the domain or inside a
// boundary face; the returned value is then 0 and must be ignored.
// Unreached vertices make the result +Inf.
func (fd *Field) At(p orb.Point) (float64, bool) {
	f, ok := fd.m.Locate(p)
	if !ok {
		return 0, false
	}
	l0, l1, l2, ok := fd.m.Barycentric(f, p)
	if !ok {
		return 0, false
	}
	vs := fd.m.FaceVertices(f)
	t0, t1, t2 := fd.m.Potential(vs[0]), fd.m.Potential(vs[1]), fd.m.Potential(vs[2])
	if math.IsInf(t0, 1) || math.IsInf(t1, 1) || math.IsInf(t2, 1) {
		return math.Inf(1), true
	}

	return l0*t0 + l1*t1 + l2*t2, true
}

// Gradient returns ∇T of the linear interpolant on the face containing p.
// Consumers derive a preferred walking direction from -Gradient. ok is false
// outside the domain, in boundary or degenerate faces, and on faces with an
// unreached vertex.
func (fd *Field) Gradient(p orb.Point) (r2.Vec, bool) {
	f, ok := fd.m.Locate(p)
	if !ok {
		return r2.Vec{}, false
	}
	vs := fd.m.FaceVertices(f)
	ps := fd.m.FacePoints(f)
	t0, t1, t2 := fd.m.Potential(vs[0]), fd.m.Potential(vs[1]), fd.m.Potential(vs[2])
	if math.IsInf(t0, 1) || math.IsInf(t1, 1) || math.IsInf(t2, 1) {
		return r2.Vec{}, false
	}

	// Solve g·e1 = t1−t0, g·e2 = t2−t0.
	e1 := r2.Sub(vec(ps[1]), vec(ps[0]))
	e2 := r2.Sub(vec(ps[2]), vec(ps[0]))
	det := r2.Cross(e1, e2)
	if math.Abs(det) < 1e-300 {
		return r2.Vec{}, false
	}
	d1, d2 := t1-t0, t2-t0

	return r2.Vec{
		X: (d1*e2.Y - d2*e1.Y) / det,
		Y: (e1.X*d2 - e2.X*d1) / det,
	}, true
}
