// Package geometry implements the integer axis-aligned geometry the
// packing engine is built on: cuboids, prioritized free spaces, and the
// maximal free-space decomposition of a container.
package geometry

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned when a cuboid would have a non-positive
// extent on some axis.
var ErrInvalidGeometry = errors.New("geometry: max coordinates must be greater than min coordinates")

// Aabb is an axis-aligned cuboid with integer coordinates. It is a pure
// value and is never mutated after construction.
type Aabb struct {
	Xmin, Xmax int
	Ymin, Ymax int
	Zmin, Zmax int
}

// NewAabb validates and creates a cuboid. Zero extent on any axis is
// rejected.
func NewAabb(xmin, xmax, ymin, ymax, zmin, zmax int) (Aabb, error) {
	if xmax <= xmin || ymax <= ymin || zmax <= zmin {
		return Aabb{}, ErrInvalidGeometry
	}
	return Aabb{xmin, xmax, ymin, ymax, zmin, zmax}, nil
}

// L returns the extent along x.
func (a Aabb) L() int { return a.Xmax - a.Xmin }

// W returns the extent along y.
func (a Aabb) W() int { return a.Ymax - a.Ymin }

// H returns the extent along z.
func (a Aabb) H() int { return a.Zmax - a.Zmin }

// Volume returns l*w*h.
func (a Aabb) Volume() int { return a.L() * a.W() * a.H() }

// StrictIntersects reports whether both cuboids overlap with positive
// length on every axis.
func (a Aabb) StrictIntersects(b Aabb) bool {
	return a.Xmin < b.Xmax && a.Xmax > b.Xmin &&
		a.Ymin < b.Ymax && a.Ymax > b.Ymin &&
		a.Zmin < b.Zmax && a.Zmax > b.Zmin
}

// Intersects reports whether both cuboids overlap or touch.
func (a Aabb) Intersects(b Aabb) bool {
	return a.Xmin <= b.Xmax && a.Xmax >= b.Xmin &&
		a.Ymin <= b.Ymax && a.Ymax >= b.Ymin &&
		a.Zmin <= b.Zmax && a.Zmax >= b.Zmin
}

// Contains reports whether a fully encloses b.
func (a Aabb) Contains(b Aabb) bool {
	return a.Xmin <= b.Xmin && a.Xmax >= b.Xmax &&
		a.Ymin <= b.Ymin && a.Ymax >= b.Ymax &&
		a.Zmin <= b.Zmin && a.Zmax >= b.Zmax
}

// CanHold reports whether b fits inside a by dimensions alone, ignoring
// position.
func (a Aabb) CanHold(b Aabb) bool {
	return a.L() >= b.L() && a.W() >= b.W() && a.H() >= b.H()
}

// Subtract returns the parts of a outside b as up to six axis slabs,
// one per face of b that cuts into a. The slabs overlap each other;
// callers needing a maximal set prune containment afterwards.
func (a Aabb) Subtract(b Aabb) []Aabb {
	var out []Aabb
	if b.Xmax < a.Xmax {
		out = append(out, Aabb{b.Xmax, a.Xmax, a.Ymin, a.Ymax, a.Zmin, a.Zmax})
	}
	if b.Ymax < a.Ymax {
		out = append(out, Aabb{a.Xmin, a.Xmax, b.Ymax, a.Ymax, a.Zmin, a.Zmax})
	}
	if b.Zmax < a.Zmax {
		out = append(out, Aabb{a.Xmin, a.Xmax, a.Ymin, a.Ymax, b.Zmax, a.Zmax})
	}
	if b.Xmin > a.Xmin {
		out = append(out, Aabb{a.Xmin, b.Xmin, a.Ymin, a.Ymax, a.Zmin, a.Zmax})
	}
	if b.Ymin > a.Ymin {
		out = append(out, Aabb{a.Xmin, a.Xmax, a.Ymin, b.Ymin, a.Zmin, a.Zmax})
	}
	if b.Zmin > a.Zmin {
		out = append(out, Aabb{a.Xmin, a.Xmax, a.Ymin, a.Ymax, a.Zmin, b.Zmin})
	}
	return out
}

// Intersection returns the overlap of both cuboids. ok is false when
// they do not strictly intersect.
func (a Aabb) Intersection(b Aabb) (Aabb, bool) {
	if !a.StrictIntersects(b) {
		return Aabb{}, false
	}
	return Aabb{
		maxInt(a.Xmin, b.Xmin), minInt(a.Xmax, b.Xmax),
		maxInt(a.Ymin, b.Ymin), minInt(a.Ymax, b.Ymax),
		maxInt(a.Zmin, b.Zmin), minInt(a.Zmax, b.Zmax),
	}, true
}

func (a Aabb) String() string {
	return fmt.Sprintf("Aabb(x=%d..%d, y=%d..%d, z=%d..%d)",
		a.Xmin, a.Xmax, a.Ymin, a.Ymax, a.Zmin, a.Zmax)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
