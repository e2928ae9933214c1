// File: grid.go
// Role: Structured triangulation of an axis-aligned rectangle.
//
// Model:
//   - (cols+1)×(rows+1) vertices in row-major order; vertex (r, c) has id
//     r*(cols+1)+c and position (c*width/cols, r*height/rows).
//   - Each cell is split into two triangles along the diagonal selected by
//     WithDiagonal. Faces are emitted cell by cell, row-major, two per cell.
//
// Determinism:
//   - Equal arguments produce identical meshes (ids, orientation, order).

package mesh

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Diagonal selects how Grid splits each rectangular cell.
type Diagonal int

const (
	// DiagonalForward splits every cell along (x0,y0)-(x1,y1).
	DiagonalForward Diagonal = iota
	// DiagonalBackward splits every cell along (x1,y0)-(x0,y1).
	DiagonalBackward
	// DiagonalAlternate alternates Forward/Backward in a checkerboard pattern.
	DiagonalAlternate
)

// GridOption configures Grid.
type GridOption func(*gridConfig)

type gridConfig struct {
	diagonal Diagonal
	origin   orb.Point
	meshOpts []Option
}

// WithDiagonal selects the split diagonal. Panics on an unknown value.
func WithDiagonal(d Diagonal) GridOption {
	if d < DiagonalForward || d > DiagonalAlternate {
		panic("mesh: WithDiagonal(unknown diagonal)")
	}
	return func(c *gridConfig) { c.diagonal = d }
}

// WithOrigin shifts the lower-left corner of the grid to p.
func WithOrigin(p orb.Point) GridOption {
	return func(c *gridConfig) { c.origin = p }
}

// WithMeshOptions forwards options to New.
func WithMeshOptions(opts ...Option) GridOption {
	return func(c *gridConfig) { c.meshOpts = append(c.meshOpts, opts...) }
}

// Grid builds a cols×rows cell triangulation of a width×height rectangle.
//
// Errors: ErrBadGridSize when cols, rows, width or height is not positive.
// Complexity: O(cols·rows).
func Grid(cols, rows int, width, height float64, opts ...GridOption) (*Mesh, error) {
	// 1) Validate parameters early.
	if cols < 1 || rows < 1 || !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("%w: cols=%d rows=%d width=%g height=%g",
			ErrBadGridSize, cols, rows, width, height)
	}
	cfg := gridConfig{diagonal: DiagonalForward}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Vertices in row-major order.
	stride := cols + 1
	points := make([]orb.Point, 0, stride*(rows+1))
	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			points = append(points, orb.Point{
				cfg.origin[0] + float64(c)*width/float64(cols),
				cfg.origin[1] + float64(r)*height/float64(rows),
			})
		}
	}

	// 3) Two triangles per cell.
	triangles := make([][3]int, 0, 2*cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v00 := r*stride + c
			v10 := v00 + 1
			v01 := v00 + stride
			v11 := v01 + 1

			forward := cfg.diagonal == DiagonalForward ||
				(cfg.diagonal == DiagonalAlternate && (r+c)%2 == 0)
			if forward {
				triangles = append(triangles, [3]int{v00, v10, v11}, [3]int{v00, v11, v01})
			} else {
				triangles = append(triangles, [3]int{v00, v10, v01}, [3]int{v10, v11, v01})
			}
		}
	}

	return New(points, triangles, cfg.meshOpts...)
}

// GridVertex returns the id of vertex (row, col) in a mesh built by Grid with
// the given number of columns.
func GridVertex(cols, row, col int) VertexID {
	return VertexID(row*(cols+1) + col)
}
