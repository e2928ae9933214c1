// File: methods_clone.go
// Role: Deep copy of a mesh.
// Concurrency:
//   - The clone shares no slices with the source; the point-location index is
//     rebuilt so no quadtree nodes are aliased either.

package mesh

// Clone returns an independent deep copy of m: geometry, topology, boundary
// flags and vertex state.
//
// Complexity: O(V + E + F log F).
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		vertices:    append([]Vertex(nil), m.vertices...),
		edges:       append([]HalfEdge(nil), m.edges...),
		faces:       append([]Face(nil), m.faces...),
		states:      append([]VertexState(nil), m.states...),
		vertexFaces: make([][]FaceID, len(m.vertexFaces)),
		vertexAdj:   make([][]VertexID, len(m.vertexAdj)),
		bound:       m.bound,
	}
	for i := range m.vertexFaces {
		c.vertexFaces[i] = append([]FaceID(nil), m.vertexFaces[i]...)
		c.vertexAdj[i] = append([]VertexID(nil), m.vertexAdj[i]...)
	}
	c.index = newFaceIndex(c)

	return c
}
