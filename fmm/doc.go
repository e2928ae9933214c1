// Package fmm implements the Fast Marching Method for the Eikonal equation
// |∇T(x)| = F(x) on planar triangle meshes.
//
// Given a mesh.Mesh, a slowness.Func F (time-cost per unit length) and one or
// more targets, Solve computes the minimal arrival time T at every vertex and
// stores it in place as the vertex state of the mesh. A Field answers
// continuous point queries by barycentric interpolation.
//
// Algorithm:
//
//   - Seeding: targets (Points, Shapes, Vertices) produce start values
//     distance·F(v). Overlapping seeds keep the minimum. Seeds are Known.
//   - Narrow band: an addressable min-heap holding exactly the Trial
//     vertices, ordered by potential (decrease-key via container/heap.Fix).
//   - Loop: pop the minimum, freeze it (Known), recompute every non-Known
//     neighbour over its incident non-boundary faces, insert or improve it.
//     Potentials only ever decrease; Known vertices never change again.
//   - Update rule: a face (P, A, B) is feasible when A and B are Trial or
//     Known. If the angle at P is acute the triangle two-point update is
//     solved (larger root of a quadratic) and accepted only if causal and
//     upwind; otherwise the one-point update min(T(A)+|PA|F, T(B)+|PB|F) is
//     used. If the angle is not acute, a cone walk across AB finds a usable
//     virtual vertex D inside the cone of directions acute to both PA and
//     PB; the face then yields min(update(A, D), update(D, B)).
//   - A cone walk that reaches the hull or a boundary face drops the face
//     (logged at WARN once per vertex and face each Solve); other faces
//     still contribute.
//
// Concurrency:
//
//   - A Solver is single-threaded and owns its mesh exclusively.
//   - Solver.Field returns a snapshot on a deep clone; snapshots can be
//     queried concurrently with further solves on the original mesh.
//   - Independent configurations should each use their own cloned mesh.
//
// Complexity:
//
//   - Time:  O(V log V + Σ walk lengths); each vertex is frozen once and
//     recomputed once per frozen neighbour.
//   - Space: O(V) for the band and the seeds.
//
// Errors (sentinel):
//
//	ErrNilMesh, ErrNilSlowness – constructor inputs.
//	ErrNoTargets, ErrNoSeeds   – nothing to start from.
//	ErrAlreadySolved           – Solve called twice without Reset.
//	ErrVertexNotFound          – vertex target out of range.
//	ErrNilSignedDistance       – vertex target without distance function.
//
// Queries outside the domain are not errors: Field.At reports ok = false.
//
// Example:
//
//	m, _ := mesh.Grid(50, 50, 10, 10)
//	s, _ := fmm.New(m, slowness.Uniform(1))
//	if _, err := s.Solve(fmm.Points(orb.Point{0, 0})); err != nil {
//	    log.Fatal(err)
//	}
//	t, ok := s.Field().At(orb.Point{3, 4})
package fmm
