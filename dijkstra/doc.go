// Package dijkstra computes arrival times along the edges of a triangle mesh.
//
// The edge-graph distance is the classic discrete approximation of the
// Eikonal field: fronts may only travel along mesh edges, so the result is an
// upper bound of the continuous arrival time wherever the update rule of the
// fmm package succeeds. It is used as a reference and as a cheap fallback.
//
// Edge cost:
//
//	w(u, v) = |uv| · (F(u) + F(v)) / 2
//
// Edges touching an impassable vertex (F = +Inf) are never traversed, and
// edges that belong only to boundary faces are skipped.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy decrease-key heap.
//   - Space: O(V + E) in the worst case (duplicate heap entries).
//
// Options:
//
//   - WithMaxDistance(x): vertices farther than x stay at +Inf.
//
// Errors (sentinel):
//
//   - ErrNilMesh        if the mesh is nil.
//   - ErrNilSlowness    if the slowness function is nil.
//   - ErrNoSources      if no source vertex is given.
//   - ErrVertexNotFound if a source is out of range.
//   - ErrBadMaxDistance if WithMaxDistance receives a negative or NaN value (panic).
//
// Example usage:
//
//	m, _ := mesh.Grid(10, 10, 1, 1)
//	dist, err := dijkstra.Dijkstra(m, slowness.Uniform(1), []mesh.VertexID{0})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist[m.NumVertices()-1])
package dijkstra
