package fmm_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/eikon/fmm"
	"github.com/katalvlaran/eikon/mesh"
	"github.com/katalvlaran/eikon/slowness"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// quietLogger discards diagnostics so test output stays clean.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

// solveGrid builds a cols×cols grid over [0,size]², solves from targets and
// returns the solved mesh.
func solveGrid(t *testing.T, cols int, size float64, d mesh.Diagonal, f slowness.Func, targets ...fmm.Target) *mesh.Mesh {
	t.Helper()
	m, err := mesh.Grid(cols, cols, size, size, mesh.WithDiagonal(d))
	require.NoError(t, err)
	s, err := fmm.New(m, f, fmm.WithLogger(quietLogger()))
	require.NoError(t, err)
	_, err = s.Solve(targets...)
	require.NoError(t, err)

	return m
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestNew_Validation(t *testing.T) {
	_, err := fmm.New(nil, slowness.Uniform(1))
	assert.ErrorIs(t, err, fmm.ErrNilMesh)

	m, err := mesh.Grid(1, 1, 1, 1)
	require.NoError(t, err)
	_, err = fmm.New(m, nil)
	assert.ErrorIs(t, err, fmm.ErrNilSlowness)

	assert.Panics(t, func() { fmm.WithEpsilon(0) })
}

func TestSolve_Validation(t *testing.T) {
	m, err := mesh.Grid(2, 2, 1, 1)
	require.NoError(t, err)
	s, err := fmm.New(m, slowness.Uniform(1), fmm.WithLogger(quietLogger()))
	require.NoError(t, err)

	_, err = s.Solve()
	assert.ErrorIs(t, err, fmm.ErrNoTargets)

	_, err = s.Solve(nil)
	assert.ErrorIs(t, err, fmm.ErrNoTargets)

	_, err = s.Solve(fmm.Points(orb.Point{5, 5}))
	assert.ErrorIs(t, err, fmm.ErrNoSeeds)

	_, err = s.Solve(fmm.Vertices([]mesh.VertexID{99}, func(orb.Point) float64 { return 0 }))
	assert.ErrorIs(t, err, fmm.ErrVertexNotFound)

	_, err = s.Solve(fmm.Vertices([]mesh.VertexID{0}, nil))
	assert.ErrorIs(t, err, fmm.ErrNilSignedDistance)

	// Failed attempts leave the mesh untouched.
	for v := 0; v < m.NumVertices(); v++ {
		assert.Equal(t, mesh.Far, m.Tag(mesh.VertexID(v)))
	}

	_, err = s.Solve(fmm.Points(orb.Point{0, 0}))
	require.NoError(t, err)
	_, err = s.Solve(fmm.Points(orb.Point{0, 0}))
	assert.ErrorIs(t, err, fmm.ErrAlreadySolved)
}

// ------------------------------------------------------------------------
// 2. Euclidean consistency on the unit square
// ------------------------------------------------------------------------

func TestUnitSquare_DiagonalThroughTarget(t *testing.T) {
	// (0,0) lies in both faces, so all four corners are seeded exactly.
	m := solveGrid(t, 1, 1, mesh.DiagonalForward, slowness.Uniform(1), fmm.Points(orb.Point{0, 0}))

	assert.InDelta(t, 0, m.Potential(mesh.GridVertex(1, 0, 0)), 1e-12)
	assert.InDelta(t, 1, m.Potential(mesh.GridVertex(1, 0, 1)), 1e-12)
	assert.InDelta(t, 1, m.Potential(mesh.GridVertex(1, 1, 0)), 1e-12)
	assert.InDelta(t, math.Sqrt2, m.Potential(mesh.GridVertex(1, 1, 1)), 1e-12)
}

func TestUnitSquare_DiagonalAcross(t *testing.T) {
	// Only the lower-left face contains (0,0); (1,1) is reached through the
	// right angle at (1,1) and a virtual vertex at (0,0).
	m := solveGrid(t, 1, 1, mesh.DiagonalBackward, slowness.Uniform(1), fmm.Points(orb.Point{0, 0}))

	assert.InDelta(t, 1, m.Potential(mesh.GridVertex(1, 0, 1)), 1e-12)
	assert.InDelta(t, 1, m.Potential(mesh.GridVertex(1, 1, 0)), 1e-12)
	far := m.Potential(mesh.GridVertex(1, 1, 1))
	assert.GreaterOrEqual(t, far, 1.0-1e-12)
	assert.LessOrEqual(t, far, math.Sqrt2+1e-12)
	for v := 0; v < m.NumVertices(); v++ {
		assert.Equal(t, mesh.Known, m.Tag(mesh.VertexID(v)))
	}
}

func TestGrid_EuclideanAccuracy(t *testing.T) {
	const cols, size = 20, 10.0
	h := size / cols
	for _, d := range []mesh.Diagonal{mesh.DiagonalForward, mesh.DiagonalBackward, mesh.DiagonalAlternate} {
		m := solveGrid(t, cols, size, d, slowness.Uniform(1), fmm.Points(orb.Point{0, 0}))
		for v := 0; v < m.NumVertices(); v++ {
			id := mesh.VertexID(v)
			want := planar.Distance(orb.Point{0, 0}, m.Position(id))
			got := m.Potential(id)
			require.Equal(t, mesh.Known, m.Tag(id), "diagonal %d vertex %d", d, v)
			assert.InDelta(t, want, got, 0.1*want+h, "diagonal %d vertex %d", d, v)
		}
	}
}

func TestGrid_SlownessScales(t *testing.T) {
	a := solveGrid(t, 8, 4, mesh.DiagonalAlternate, slowness.Uniform(1), fmm.Points(orb.Point{1, 1}))
	b := solveGrid(t, 8, 4, mesh.DiagonalAlternate, slowness.Uniform(2), fmm.Points(orb.Point{1, 1}))
	for v := 0; v < a.NumVertices(); v++ {
		assert.InDelta(t, 2*a.Potential(mesh.VertexID(v)), b.Potential(mesh.VertexID(v)), 1e-12)
	}
}

// ------------------------------------------------------------------------
// 3. Causality, determinism, superposition
// ------------------------------------------------------------------------

func TestSolve_MonotoneHistory(t *testing.T) {
	m, err := mesh.Grid(15, 15, 3, 3, mesh.WithDiagonal(mesh.DiagonalAlternate))
	require.NoError(t, err)

	history := make(map[mesh.VertexID][]fmm.Update)
	s, err := fmm.New(m, slowness.FuncOf(func(p orb.Point) float64 { return 1 + p[0]*p[1] }),
		fmm.WithLogger(quietLogger()),
		fmm.WithUpdateHook(func(u fmm.Update) { history[u.Vertex] = append(history[u.Vertex], u) }),
	)
	require.NoError(t, err)
	res, err := s.Solve(fmm.Points(orb.Point{1.5, 1.5}))
	require.NoError(t, err)
	assert.Equal(t, m.NumVertices(), res.Seeds+res.Frozen)

	for v, hs := range history {
		last := math.Inf(1)
		known := false
		for _, u := range hs {
			require.False(t, known, "vertex %d changed after it became Known", v)
			assert.LessOrEqual(t, u.New, last, "vertex %d potential increased", v)
			assert.Equal(t, last, u.Old)
			last = u.New
			known = u.Tag == mesh.Known
		}
		assert.True(t, known, "vertex %d never frozen", v)
		assert.Equal(t, last, m.Potential(v))
	}
}

func TestSolve_Deterministic(t *testing.T) {
	f := slowness.FuncOf(func(p orb.Point) float64 { return 1 + 0.5*math.Sin(p[0]) })
	a := solveGrid(t, 12, 6, mesh.DiagonalAlternate, f, fmm.Points(orb.Point{2.2, 3.1}, orb.Point{5, 0.4}))
	b := solveGrid(t, 12, 6, mesh.DiagonalAlternate, f, fmm.Points(orb.Point{2.2, 3.1}, orb.Point{5, 0.4}))
	assert.Equal(t, a.Potentials(), b.Potentials())
}

func TestSolve_Superposition(t *testing.T) {
	const cols, size = 20, 10.0
	p1, p2 := orb.Point{1.3, 1.1}, orb.Point{8.6, 7.7}
	f := slowness.Uniform(1)

	one := solveGrid(t, cols, size, mesh.DiagonalAlternate, f, fmm.Points(p1))
	two := solveGrid(t, cols, size, mesh.DiagonalAlternate, f, fmm.Points(p2))
	both := solveGrid(t, cols, size, mesh.DiagonalAlternate, f, fmm.Points(p1), fmm.Points(p2))

	for v := 0; v < both.NumVertices(); v++ {
		id := mesh.VertexID(v)
		want := math.Min(one.Potential(id), two.Potential(id))
		assert.InDelta(t, want, both.Potential(id), size/cols, "vertex %d", v)
	}
}

func TestSolve_ResetMatchesFresh(t *testing.T) {
	m, err := mesh.Grid(10, 10, 5, 5, mesh.WithDiagonal(mesh.DiagonalBackward))
	require.NoError(t, err)
	s, err := fmm.New(m, slowness.Uniform(1), fmm.WithLogger(quietLogger()))
	require.NoError(t, err)

	_, err = s.Solve(fmm.Points(orb.Point{0.2, 0.2}))
	require.NoError(t, err)
	s.Reset()
	_, err = s.Solve(fmm.Points(orb.Point{4.4, 3.9}))
	require.NoError(t, err)

	fresh := solveGrid(t, 10, 5, mesh.DiagonalBackward, slowness.Uniform(1), fmm.Points(orb.Point{4.4, 3.9}))
	assert.Equal(t, fresh.Potentials(), m.Potentials())
}

// ------------------------------------------------------------------------
// 4. Targets
// ------------------------------------------------------------------------

func TestTargets_Shapes(t *testing.T) {
	square := orb.Polygon{{{0.6, 0.6}, {1.4, 0.6}, {1.4, 1.4}, {0.6, 1.4}, {0.6, 0.6}}}
	m := solveGrid(t, 4, 4, mesh.DiagonalForward, slowness.Uniform(2), fmm.Shapes(square))

	// (1,1) is inside the shape.
	assert.Equal(t, 0.0, m.Potential(mesh.GridVertex(4, 1, 1)))
	assert.Equal(t, mesh.Known, m.Tag(mesh.GridVertex(4, 1, 1)))
	// (0,0) is a seeded corner of an intersecting face: 0.6·√2 away, cost 2.
	assert.InDelta(t, 2*0.6*math.Sqrt2, m.Potential(mesh.GridVertex(4, 0, 0)), 1e-12)
	// (2,1) is 0.6 from the right edge of the square.
	assert.InDelta(t, 2*0.6, m.Potential(mesh.GridVertex(4, 1, 2)), 1e-12)
}

func TestTargets_VerticesSeedNeighbours(t *testing.T) {
	m, err := mesh.Grid(4, 4, 4, 4)
	require.NoError(t, err)
	center := mesh.GridVertex(4, 2, 2)
	origin := m.Position(center)

	seeded := map[mesh.VertexID]float64{}
	s, err := fmm.New(m, slowness.Uniform(1),
		fmm.WithLogger(quietLogger()),
		fmm.WithUpdateHook(func(u fmm.Update) {
			if math.IsInf(u.Old, 1) && u.Tag == mesh.Known {
				seeded[u.Vertex] = u.New
			}
		}),
	)
	require.NoError(t, err)
	// Signed distance to a disc of radius 0.5 around the centre vertex.
	sdf := func(p orb.Point) float64 { return planar.Distance(p, origin) - 0.5 }
	res, err := s.Solve(fmm.Vertices([]mesh.VertexID{center}, sdf))
	require.NoError(t, err)

	require.Equal(t, 1+len(m.AdjacentVertices(center)), res.Seeds)
	assert.Equal(t, 0.0, seeded[center], "negative distance clamps to zero")
	for _, u := range m.AdjacentVertices(center) {
		assert.InDelta(t, sdf(m.Position(u)), seeded[u], 1e-12)
	}
}

func TestTargets_OverlappingKeepMinimum(t *testing.T) {
	a := solveGrid(t, 4, 4, mesh.DiagonalForward, slowness.Uniform(1),
		fmm.Points(orb.Point{0.5, 0.2}), fmm.Points(orb.Point{0.9, 0.8}))
	// Vertex (1,1) is seeded by both points.
	want := math.Min(
		planar.Distance(orb.Point{1, 1}, orb.Point{0.5, 0.2}),
		planar.Distance(orb.Point{1, 1}, orb.Point{0.9, 0.8}),
	)
	assert.InDelta(t, want, a.Potential(mesh.GridVertex(4, 1, 1)), 1e-12)
}

// ------------------------------------------------------------------------
// 5. Obstacles and boundaries
// ------------------------------------------------------------------------

func TestSolve_ObstacleRingExcludesInterior(t *testing.T) {
	ring := orb.Polygon{
		{{3, 3}, {7, 3}, {7, 7}, {3, 7}, {3, 3}},
		{{4.5, 4.5}, {5.5, 4.5}, {5.5, 5.5}, {4.5, 5.5}, {4.5, 4.5}},
	}
	f := slowness.Obstacles(slowness.Uniform(1), ring)
	m := solveGrid(t, 10, 10, mesh.DiagonalAlternate, f, fmm.Points(orb.Point{0.5, 0.5}))

	inner := mesh.GridVertex(10, 5, 5)
	assert.Equal(t, mesh.Far, m.Tag(inner))
	assert.True(t, math.IsInf(m.Potential(inner), 1))

	// Vertices inside the obstacle never get a value either.
	assert.True(t, math.IsInf(m.Potential(mesh.GridVertex(10, 4, 4)), 1))
	// The outside is fully reached.
	assert.Equal(t, mesh.Known, m.Tag(mesh.GridVertex(10, 9, 9)))
	assert.False(t, math.IsInf(m.Potential(mesh.GridVertex(10, 9, 9)), 1))
}

func TestSolve_BoundaryFacesBlock(t *testing.T) {
	// A wall of boundary faces across column 2 splits the domain.
	var wall []mesh.FaceID
	const cols = 6
	for r := 0; r < cols; r++ {
		cell := r*cols + 2
		wall = append(wall, mesh.FaceID(2*cell), mesh.FaceID(2*cell+1))
	}
	m, err := mesh.Grid(cols, cols, 6, 6, mesh.WithMeshOptions(mesh.WithBoundaryFaces(wall...)))
	require.NoError(t, err)
	s, err := fmm.New(m, slowness.Uniform(1), fmm.WithLogger(quietLogger()))
	require.NoError(t, err)
	_, err = s.Solve(fmm.Points(orb.Point{0.5, 0.5}))
	require.NoError(t, err)

	for r := 0; r <= cols; r++ {
		assert.Equal(t, mesh.Known, m.Tag(mesh.GridVertex(cols, r, 2)), "left wall edge row %d", r)
		assert.Equal(t, mesh.Far, m.Tag(mesh.GridVertex(cols, r, 4)), "right side row %d", r)
	}
}

// TestSolve_ConeWalkFailureLogs builds a single obtuse face whose cone leaves
// the mesh through a hull edge.
//
//	         P
//	A ─────────────── B
//	 Q
func TestSolve_ConeWalkFailureLogs(t *testing.T) {
	m, err := mesh.New(
		[]orb.Point{{-3, -0.5}, {-1, 0}, {1, 0}, {0, 0.2}},
		[][3]int{{1, 0, 2}, {1, 2, 3}},
	)
	require.NoError(t, err)
	q, p := mesh.VertexID(0), mesh.VertexID(3)

	var logs bytes.Buffer
	s, err := fmm.New(m, slowness.Uniform(1), fmm.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	require.NoError(t, err)
	res, err := s.Solve(fmm.Vertices([]mesh.VertexID{q}, func(x orb.Point) float64 {
		return planar.Distance(x, m.Position(q))
	}))
	require.NoError(t, err)

	assert.Equal(t, 3, res.Seeds)
	// P is recomputed once per frozen neighbour (A and B); the warning is
	// logged once for the (vertex, face) pair.
	assert.Equal(t, 2, res.FailedWalks)
	assert.Equal(t, mesh.Far, m.Tag(p))
	assert.Contains(t, logs.String(), "cone walk reached the boundary")
	assert.Equal(t, 1, strings.Count(logs.String(), "cone walk"))

	// A new run logs again.
	logs.Reset()
	s.Reset()
	_, err = s.Solve(fmm.Vertices([]mesh.VertexID{q}, func(x orb.Point) float64 {
		return planar.Distance(x, m.Position(q))
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(logs.String(), "cone walk"))
}

// shiftedLattice builds rows of cols vertices spaced 1 apart, rows dy apart,
// with every odd row shifted by 1/2. For dy < 1/2 every triangle has an
// obtuse apex (2·atan(0.5/dy), about 127° for dy = 0.25).
func shiftedLattice(t *testing.T, cols, rows int, dy float64) *mesh.Mesh {
	t.Helper()
	id := func(r, c int) int { return r*cols + c }
	points := make([]orb.Point, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			points = append(points, orb.Point{float64(c) + 0.5*float64(r%2), float64(r) * dy})
		}
	}
	var triangles [][3]int
	for r := 0; r+1 < rows; r++ {
		for c := 0; c+1 < cols; c++ {
			if r%2 == 0 {
				triangles = append(triangles,
					[3]int{id(r, c), id(r, c+1), id(r+1, c)},
					[3]int{id(r+1, c), id(r, c+1), id(r+1, c+1)})
			} else {
				triangles = append(triangles,
					[3]int{id(r, c), id(r+1, c+1), id(r+1, c)},
					[3]int{id(r, c), id(r, c+1), id(r+1, c+1)})
			}
		}
	}
	m, err := mesh.New(points, triangles)
	require.NoError(t, err)

	return m
}

func TestSolve_ObtuseLattice(t *testing.T) {
	m := shiftedLattice(t, 30, 60, 0.25)
	src := orb.Point{15, 7.5}
	s, err := fmm.New(m, slowness.Uniform(1), fmm.WithLogger(quietLogger()))
	require.NoError(t, err)
	res, err := s.Solve(fmm.Points(src))
	require.NoError(t, err)

	assert.Equal(t, m.NumVertices(), res.Seeds+res.Frozen)
	assert.LessOrEqual(t, res.FailedWalks, m.NumVertices()/10)
	for v := 0; v < m.NumVertices(); v++ {
		id := mesh.VertexID(v)
		require.Equal(t, mesh.Known, m.Tag(id), "vertex %d", v)
		d := planar.Distance(src, m.Position(id))
		if d <= 2 {
			continue
		}
		assert.InDelta(t, 0, (m.Potential(id)-d)/d, 0.08, "vertex %d at distance %.2f", v, d)
	}
}
