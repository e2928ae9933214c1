// Package slowness defines cost-per-length fields F(x) for the Eikonal
// equation |∇T(x)| = F(x).
//
// A slowness is a time-cost per unit length: crossing a segment of length d
// at slowness f costs d·f. Values must be strictly positive wherever the
// front can reach; +Inf marks impassable regions. Zero, negative or NaN
// values are caller errors and are not checked on the hot path.
//
// Constructors:
//
//	Uniform(c)                 – constant c everywhere (panics on c ≤ 0).
//	FuncOf(fn)                 – adapts a plain function.
//	Obstacles(base, polys...)  – +Inf inside any polygon, base elsewhere.
//	Scaled(base, k)            – k·base (panics on k ≤ 0).
package slowness

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Func maps a position to a positive cost per unit length.
type Func interface {
	At(p orb.Point) float64
}

// FuncOf adapts an ordinary function to Func.
type FuncOf func(p orb.Point) float64

// At implements Func.
func (fn FuncOf) At(p orb.Point) float64 { return fn(p) }

type uniform float64

func (u uniform) At(orb.Point) float64 { return float64(u) }

// Uniform returns the constant slowness c. Panics on c ≤ 0 or NaN.
func Uniform(c float64) Func {
	if !(c > 0) {
		panic("slowness: Uniform requires c > 0")
	}

	return uniform(c)
}

type obstacles struct {
	base  Func
	polys []orb.Polygon
	bound []orb.Bound
}

// Obstacles returns a slowness equal to base outside the polygons and +Inf
// inside any of them (holes of a polygon are passable).
func Obstacles(base Func, polys ...orb.Polygon) Func {
	if base == nil {
		panic("slowness: Obstacles(nil base)")
	}
	o := obstacles{base: base}
	for _, p := range polys {
		if len(p) == 0 {
			continue
		}
		o.polys = append(o.polys, p)
		o.bound = append(o.bound, p.Bound())
	}

	return o
}

func (o obstacles) At(p orb.Point) float64 {
	for i, poly := range o.polys {
		if o.bound[i].Contains(p) && planar.PolygonContains(poly, p) {
			return math.Inf(1)
		}
	}

	return o.base.At(p)
}

type scaled struct {
	base Func
	k    float64
}

func (s scaled) At(p orb.Point) float64 { return s.k * s.base.At(p) }

// Scaled returns k·base. Panics on k ≤ 0 or a nil base.
func Scaled(base Func, k float64) Func {
	if base == nil || !(k > 0) {
		panic("slowness: Scaled requires a base and k > 0")
	}

	return scaled{base: base, k: k}
}
