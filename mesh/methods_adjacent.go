// File: methods_adjacent.go
// Role: Read-only accessors over the arena (positions, faces, half-edges, adjacency).
// Determinism:
//   - AdjacentVertices and AdjacentFaces return ascending handles.
// Ownership:
//   - Returned slices alias internal storage; treat them as read-only.

package mesh

import (
	"fmt"

	"github.com/paulmach/orb"
)

// NumVertices returns the vertex count.
func (m *Mesh) NumVertices() int { return len(m.vertices) }

// NumFaces returns the face count, boundary faces included.
func (m *Mesh) NumFaces() int { return len(m.faces) }

// NumEdges returns the half-edge count.
func (m *Mesh) NumEdges() int { return len(m.edges) }

// Bound returns the bounding box of all vertices.
func (m *Mesh) Bound() orb.Bound { return m.bound }

// Position returns the coordinates of v.
func (m *Mesh) Position(v VertexID) orb.Point { return m.vertices[v].Pos }

// Edge returns the half-edge record e.
func (m *Mesh) Edge(e EdgeID) HalfEdge { return m.edges[e] }

// Face returns the face record f.
func (m *Mesh) Face(f FaceID) Face { return m.faces[f] }

// Dest returns the end vertex of half-edge e.
func (m *Mesh) Dest(e EdgeID) VertexID { return m.edges[m.edges[e].Next].Origin }

// FaceEdges returns the three half-edges of f in CCW order.
func (m *Mesh) FaceEdges(f FaceID) [3]EdgeID {
	e0 := m.faces[f].Edge
	e1 := m.edges[e0].Next

	return [3]EdgeID{e0, e1, m.edges[e1].Next}
}

// FaceVertices returns the three vertices of f in CCW order.
func (m *Mesh) FaceVertices(f FaceID) [3]VertexID {
	es := m.FaceEdges(f)

	return [3]VertexID{m.edges[es[0]].Origin, m.edges[es[1]].Origin, m.edges[es[2]].Origin}
}

// FacePoints returns the positions of the three vertices of f in CCW order.
func (m *Mesh) FacePoints(f FaceID) [3]orb.Point {
	vs := m.FaceVertices(f)

	return [3]orb.Point{m.vertices[vs[0]].Pos, m.vertices[vs[1]].Pos, m.vertices[vs[2]].Pos}
}

// IsBoundary reports whether f is a boundary/exterior face.
func (m *Mesh) IsBoundary(f FaceID) bool { return m.faces[f].Boundary }

// MarkBoundary flags f as boundary/exterior.
func (m *Mesh) MarkBoundary(f FaceID) error {
	if f < 0 || int(f) >= len(m.faces) {
		return fmt.Errorf("%w: %d (have %d faces)", ErrFaceIndex, f, len(m.faces))
	}
	m.faces[f].Boundary = true

	return nil
}

// AdjacentVertices returns the vertices sharing an edge with v.
func (m *Mesh) AdjacentVertices(v VertexID) []VertexID { return m.vertexAdj[v] }

// AdjacentFaces returns the faces incident to v, boundary faces included.
func (m *Mesh) AdjacentFaces(v VertexID) []FaceID { return m.vertexFaces[v] }

// FaceAcross returns the face on the other side of half-edge e.
// ok is false on a hull edge.
func (m *Mesh) FaceAcross(e EdgeID) (FaceID, bool) {
	t := m.edges[e].Twin
	if t == NoEdge {
		return NoFace, false
	}

	return m.edges[t].Face, true
}

// EdgeFrom returns the half-edge of f that starts at v, or NoEdge if v is not
// a vertex of f.
func (m *Mesh) EdgeFrom(f FaceID, v VertexID) EdgeID {
	for _, e := range m.FaceEdges(f) {
		if m.edges[e].Origin == v {
			return e
		}
	}

	return NoEdge
}

// EdgeBetween returns the half-edge of f joining u and v in either direction,
// or NoEdge if f has no such edge.
func (m *Mesh) EdgeBetween(f FaceID, u, v VertexID) EdgeID {
	for _, e := range m.FaceEdges(f) {
		o, d := m.edges[e].Origin, m.Dest(e)
		if (o == u && d == v) || (o == v && d == u) {
			return e
		}
	}

	return NoEdge
}

// Opposite returns the vertex of f that is neither u nor v.
func (m *Mesh) Opposite(f FaceID, u, v VertexID) VertexID {
	for _, w := range m.FaceVertices(f) {
		if w != u && w != v {
			return w
		}
	}

	return NoVertex
}
