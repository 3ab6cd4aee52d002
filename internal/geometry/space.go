package geometry

import "github.com/piwi3910/CubeStow/internal/model"

// Dims is the interior size of a container block, the frame against
// which space priorities are computed.
type Dims struct {
	L, W, H int
}

// Interior returns the container interior as a cuboid at the origin.
func (d Dims) Interior() (Aabb, error) {
	return NewAabb(0, d.L, 0, d.W, 0, d.H)
}

// Config carries the per-engine knobs that govern space semantics.
// It is fixed for the duration of a packing computation.
type Config struct {
	Filling           model.FillingPolicy
	VerticalStability bool
}

// ConfigFrom extracts the geometry configuration from pack settings.
func ConfigFrom(s model.PackSettings) Config {
	return Config{Filling: s.Filling, VerticalStability: s.VerticalStability}
}

// Space is a free cuboid inside a container block, annotated with the
// corner it anchors placements to and a priority under the filling
// policy. Lower priority is filled first.
type Space struct {
	Aabb
	Corner   [3]int
	Priority int
}

// NewSpace builds a space from a cuboid and computes its anchor corner
// and priority against the container dims.
//
// The priority is a Manhattan-style distance of the anchor corner to the
// nearest eligible container corner. The origin policy pins the anchor
// to the space's min corner; bottom-up scales the z term so lower layers
// always win; free also allows ceiling-anchored corners.
func NewSpace(a Aabb, cont Dims, cfg Config) Space {
	s := Space{Aabb: a, Corner: [3]int{a.Xmin, a.Ymin, a.Zmin}}

	dx, dy, dz := a.Xmin, a.Ymin, a.Zmin
	if cfg.Filling == model.FillingBottomUp {
		dz = 1000 * a.Zmin
	}
	if cfg.Filling != model.FillingOrigin {
		if cont.L-a.Xmax < a.Xmin {
			dx = cont.L - a.Xmax
			s.Corner[0] = a.Xmax
		}
		if cont.W-a.Ymax < a.Ymin {
			dy = cont.W - a.Ymax
			s.Corner[1] = a.Ymax
		}
	}
	if cfg.Filling == model.FillingFree && cont.H-a.Zmax < a.Zmin {
		dz = cont.H - a.Zmax
		s.Corner[2] = a.Zmax
	}

	s.Priority = dx + dy + dz
	return s
}

// SubtractPlaced returns the spaces left after carving a placed cuboid
// out of this one. It matches Aabb.Subtract except for the slab above
// the placed box: with vertical stability on, only the placed box's top
// face counts as supportable free space, so the +z slab is restricted to
// its xy footprint. Every emitted space recomputes its priority against
// the container dims.
func (s Space) SubtractPlaced(placed Aabb, cont Dims, cfg Config) []Space {
	var out []Space
	emit := func(a Aabb) {
		out = append(out, NewSpace(a, cont, cfg))
	}

	if placed.Xmax < s.Xmax {
		emit(Aabb{placed.Xmax, s.Xmax, s.Ymin, s.Ymax, s.Zmin, s.Zmax})
	}
	if placed.Ymax < s.Ymax {
		emit(Aabb{s.Xmin, s.Xmax, placed.Ymax, s.Ymax, s.Zmin, s.Zmax})
	}
	if placed.Zmax < s.Zmax {
		if cfg.VerticalStability {
			emit(Aabb{placed.Xmin, placed.Xmax, placed.Ymin, placed.Ymax, placed.Zmax, s.Zmax})
		} else {
			emit(Aabb{s.Xmin, s.Xmax, s.Ymin, s.Ymax, placed.Zmax, s.Zmax})
		}
	}
	if placed.Xmin > s.Xmin {
		emit(Aabb{s.Xmin, placed.Xmin, s.Ymin, s.Ymax, s.Zmin, s.Zmax})
	}
	if placed.Ymin > s.Ymin {
		emit(Aabb{s.Xmin, s.Xmax, s.Ymin, placed.Ymin, s.Zmin, s.Zmax})
	}
	if placed.Zmin > s.Zmin {
		emit(Aabb{s.Xmin, s.Xmax, s.Ymin, s.Ymax, s.Zmin, placed.Zmin})
	}
	return out
}
