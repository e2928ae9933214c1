// Package eikon computes arrival-time fields on planar triangle meshes by
// solving the Eikonal equation |∇T| = F with the Fast Marching Method.
//
// What is it for?
//
//	Crowd and agent navigation: given exits (targets) and a walking cost
//	per unit length (slowness), the field T tells every position how long
//	the way out takes, and -∇T points along the fastest route.
//
// Under the hood, everything is organized under these subpackages:
//
//	mesh/     arena half-edge triangle mesh, grids, point location, vertex state
//	slowness/ cost fields: uniform, functional, obstacles, scaling
//	fmm/      the solver: targets, narrow band, update rule, cone walk, Field queries
//	dijkstra/ edge-graph arrival times, a reference upper bound
//	meshio/   YAML mesh documents
//
// Quick ASCII example:
//
//	(0,1)───(1,1)
//	  │   ╱   │        T(0,0) = 0
//	  │  ╱    │        T(1,0) = T(0,1) = 1
//	  │ ╱     │        T(1,1) = √2
//	(0,0)───(1,0)
//
// Getting started:
//
//	m, _ := mesh.Grid(1, 1, 1, 1)
//	s, _ := fmm.New(m, slowness.Uniform(1))
//	s.Solve(fmm.Points(orb.Point{0, 0}))
//	t, _ := s.Field().At(orb.Point{0.5, 0.5})
//
// A runnable scenario lives in examples/evacuation.
package eikon
