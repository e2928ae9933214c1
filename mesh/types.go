package mesh

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
)

// Sentinel errors for mesh construction.
var (
	// ErrTooFewVertices indicates that the input cannot form a single triangle.
	ErrTooFewVertices = errors.New("mesh: need at least three vertices and one triangle")

	// ErrVertexIndex indicates a triangle referencing a missing or repeated vertex.
	ErrVertexIndex = errors.New("mesh: invalid vertex index in triangle")

	// ErrNonManifoldEdge indicates a directed edge shared by two triangles.
	ErrNonManifoldEdge = errors.New("mesh: edge shared by more than two faces")

	// ErrFaceIndex indicates a reference to a face that does not exist.
	ErrFaceIndex = errors.New("mesh: face index out of range")

	// ErrBadGridSize indicates non-positive structured grid dimensions.
	ErrBadGridSize = errors.New("mesh: grid dimensions must be positive")
)

// VertexID addresses a vertex in the mesh arena.
type VertexID int32

// EdgeID addresses a half-edge in the mesh arena.
type EdgeID int32

// FaceID addresses a triangle in the mesh arena.
type FaceID int32

// Null handles.
const (
	NoVertex VertexID = -1
	NoEdge   EdgeID   = -1
	NoFace   FaceID   = -1
)

// Tag is the tri-state marker of a vertex during fast marching.
type Tag uint8

const (
	// Far vertices carry no usable value yet.
	Far Tag = iota
	// Trial vertices hold a tentative value and sit in the narrow band.
	Trial
	// Known vertices are frozen.
	Known
)

// String returns the lower-case name of the tag.
func (t Tag) String() string {
	switch t {
	case Far:
		return "far"
	case Trial:
		return "trial"
	case Known:
		return "known"
	default:
		return "unknown"
	}
}

// VertexState is the solver-owned state attached to each vertex.
type VertexState struct {
	// Potential is the tentative or final arrival time, +Inf when unset.
	Potential float64
	// Tag is the marching state of the vertex.
	Tag Tag
}

// farState is the state every vertex starts in.
func farState() VertexState {
	return VertexState{Potential: math.Inf(1), Tag: Far}
}

// Vertex is a mesh node. Positions never change after construction.
type Vertex struct {
	Pos orb.Point
}

// HalfEdge is one oriented side of a triangle edge.
//
// Origin is the start vertex; the end vertex is Edge(Next).Origin.
// Twin is the opposite half-edge in the adjacent face, NoEdge on the hull.
type HalfEdge struct {
	Origin VertexID
	Twin   EdgeID
	Next   EdgeID
	Prev   EdgeID
	Face   FaceID
}

// Face is a triangle. Edge is its first half-edge; Boundary marks faces that
// must be ignored by every computation.
type Face struct {
	Edge     EdgeID
	Boundary bool
}

// Option configures a Mesh during New.
type Option func(*config)

type config struct {
	boundary []FaceID
}

// WithBoundaryFaces marks the given faces as boundary/exterior.
// Face ids are triangle indices in the order passed to New.
func WithBoundaryFaces(ids ...FaceID) Option {
	return func(c *config) {
		c.boundary = append(c.boundary, ids...)
	}
}
