// Package mesh provides an index-based ("arena") half-edge triangle mesh for
// planar domains, together with the per-vertex solver state that the fmm
// package mutates.
//
// What:
//
//   - Vertices, half-edges and faces live in flat slices addressed by integer
//     handles (VertexID, EdgeID, FaceID). There are no pointer cycles; every
//     adjacency step (Next, Prev, Twin, Face) is an O(1) slice lookup.
//   - Faces may be flagged as boundary/exterior (holes, obstacles, the region
//     outside the domain). Boundary faces are excluded from every computation.
//   - Point location is backed by an orb/quadtree index over face centroids.
//   - Every vertex carries a VertexState{Potential, Tag}. A fresh mesh and a
//     mesh after ResetStates have all vertices Far with Potential = +Inf.
//
// Construction:
//
//	m, err := mesh.New(points, triangles, mesh.WithBoundaryFaces(7, 8))
//	m, err := mesh.Grid(10, 10, 1.0, 1.0, mesh.WithDiagonal(mesh.DiagonalAlternate))
//
// Triangles are re-oriented counter-clockwise on construction. A directed edge
// may be used by at most one triangle after orientation (ErrNonManifoldEdge).
// Half-edges without a partner are hull edges (Twin == NoEdge).
//
// Ownership & concurrency:
//
//   - A Mesh is not safe for concurrent mutation. The solver that mutates the
//     vertex state owns the mesh exclusively.
//   - Clone returns a deep copy with no shared slices, so a frozen clone can be
//     queried from many goroutines while the original keeps changing.
//
// Complexity:
//
//   - New: O(V + F log F) (edge pairing + index build).
//   - AdjacentVertices / AdjacentFaces: O(1) (precomputed, sorted).
//   - Locate: O(log F + k) where k is the number of candidate faces near p.
//   - Clone: O(V + E + F).
//
// Errors:
//
//	ErrTooFewVertices   - fewer than three vertices or no triangles.
//	ErrVertexIndex      - triangle references a missing vertex or repeats one.
//	ErrNonManifoldEdge  - a directed edge is shared by two triangles.
//	ErrFaceIndex        - boundary option references a missing face.
//	ErrBadGridSize      - Grid called with non-positive dimensions.
package mesh
