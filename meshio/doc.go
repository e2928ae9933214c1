// Package meshio reads and writes triangle meshes as YAML documents.
//
// A document lists vertex coordinates, triangles as vertex index triples and
// the ids of boundary (exterior) faces:
//
//	vertices:
//	  - [0, 0]
//	  - [1, 0]
//	  - [0, 1]
//	triangles:
//	  - [0, 1, 2]
//	boundary: []
//
// Decoding runs the same validation as mesh.New; every failure wraps
// ErrDecode so callers can branch with errors.Is. Triangles are written back
// in the counter-clockwise order the mesh stores them, so a decode of an
// encoded mesh yields identical topology.
package meshio
