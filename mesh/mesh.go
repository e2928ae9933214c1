// File: mesh.go
// Role: Mesh arena type and the New constructor.
// Determinism:
//   - Face i is triangle i of the input; its half-edges are 3i, 3i+1, 3i+2.
//   - Adjacency lists are sorted by handle ascending.

package mesh

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
)

// Mesh is an arena half-edge triangulation of a planar domain.
type Mesh struct {
	vertices []Vertex
	edges    []HalfEdge
	faces    []Face

	// vertexFaces[v] lists the faces incident to v, ascending.
	vertexFaces [][]FaceID
	// vertexAdj[v] lists the distinct vertices sharing an edge with v, ascending.
	vertexAdj [][]VertexID

	states []VertexState

	bound orb.Bound
	index *faceIndex
}

// New builds a mesh from vertex positions and triangles given as triples of
// indices into points. Triangles with clockwise orientation are flipped;
// zero-area triangles are kept as they are.
//
// Stages:
//  1. Validate sizes and indices.
//  2. Emit three half-edges per triangle (CCW) and pair twins by (origin, dest).
//  3. Build per-vertex adjacency lists and the point-location index.
//  4. Apply options (boundary faces).
//
// Complexity: O(V + F log F).
func New(points []orb.Point, triangles [][3]int, opts ...Option) (*Mesh, error) {
	// 1) Validate input sizes.
	if len(points) < 3 || len(triangles) == 0 {
		return nil, ErrTooFewVertices
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Mesh{
		vertices:    make([]Vertex, len(points)),
		edges:       make([]HalfEdge, 0, 3*len(triangles)),
		faces:       make([]Face, 0, len(triangles)),
		vertexFaces: make([][]FaceID, len(points)),
		vertexAdj:   make([][]VertexID, len(points)),
		states:      make([]VertexState, len(points)),
	}
	for i, p := range points {
		m.vertices[i] = Vertex{Pos: p}
		m.states[i] = farState()
	}

	// 2) Emit half-edges, recording directed edges for twin pairing.
	directed := make(map[[2]VertexID]EdgeID, 3*len(triangles))
	for fi, t := range triangles {
		var tri [3]VertexID
		for k, idx := range t {
			if idx < 0 || idx >= len(points) {
				return nil, fmt.Errorf("%w: triangle %d uses %d (have %d vertices)", ErrVertexIndex, fi, idx, len(points))
			}
			tri[k] = VertexID(idx)
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[0] == tri[2] {
			return nil, fmt.Errorf("%w: triangle %d repeats a vertex", ErrVertexIndex, fi)
		}
		// Orient counter-clockwise.
		if signedArea(points[tri[0]], points[tri[1]], points[tri[2]]) < 0 {
			tri[1], tri[2] = tri[2], tri[1]
		}

		f := FaceID(fi)
		base := EdgeID(3 * fi)
		for k := 0; k < 3; k++ {
			e := base + EdgeID(k)
			key := [2]VertexID{tri[k], tri[(k+1)%3]}
			if prev, dup := directed[key]; dup {
				return nil, fmt.Errorf("%w: %d→%d in faces %d and %d",
					ErrNonManifoldEdge, key[0], key[1], m.edges[prev].Face, f)
			}
			directed[key] = e
			m.edges = append(m.edges, HalfEdge{
				Origin: tri[k],
				Twin:   NoEdge,
				Next:   base + EdgeID((k+1)%3),
				Prev:   base + EdgeID((k+2)%3),
				Face:   f,
			})
			m.vertexFaces[tri[k]] = append(m.vertexFaces[tri[k]], f)
		}
		m.faces = append(m.faces, Face{Edge: base})
	}
	for key, e := range directed {
		if twin, ok := directed[[2]VertexID{key[1], key[0]}]; ok {
			m.edges[e].Twin = twin
		}
	}

	// 3) Adjacency + index.
	m.buildAdjacency()
	m.bound = boundOf(points)
	m.index = newFaceIndex(m)

	// 4) Boundary faces.
	for _, f := range cfg.boundary {
		if err := m.MarkBoundary(f); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// buildAdjacency fills vertexAdj from the incident faces of each vertex.
func (m *Mesh) buildAdjacency() {
	var seen map[VertexID]struct{}
	for v := range m.vertices {
		seen = make(map[VertexID]struct{}, 2*len(m.vertexFaces[v]))
		for _, f := range m.vertexFaces[v] {
			for _, u := range m.FaceVertices(f) {
				if u != VertexID(v) {
					seen[u] = struct{}{}
				}
			}
		}
		adj := make([]VertexID, 0, len(seen))
		for u := range seen {
			adj = append(adj, u)
		}
		sort.Slice(adj, func(i, j int) bool { return adj[i] < adj[j] })
		m.vertexAdj[v] = adj
	}
}

// signedArea returns twice the signed area of triangle abc (>0 when CCW).
func signedArea(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

// boundOf returns the bounding box of all points.
func boundOf(points []orb.Point) orb.Bound {
	b := points[0].Bound()
	for _, p := range points[1:] {
		b = b.Extend(p)
	}

	return b
}
