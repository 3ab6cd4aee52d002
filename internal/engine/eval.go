package engine

import "github.com/piwi3910/CubeStow/internal/geometry"

// EvalFunc scores a candidate block for a space inside a container.
// Higher is better.
type EvalFunc func(b *Block, space geometry.Space, container *Block) float64

// ConstraintFunc decides whether a candidate block is admissible for a
// space inside a container. Constraints have no side effects.
type ConstraintFunc func(b *Block, space geometry.Space, container *Block) bool

// EvalOccupiedVolume prefers the block that loads the most box volume.
func EvalOccupiedVolume(b *Block, _ geometry.Space, _ *Block) float64 {
	return float64(b.Occupied)
}

// EvalSpaceFillRatio prefers the block that covers the largest share of
// the target space's volume.
func EvalSpaceFillRatio(b *Block, space geometry.Space, _ *Block) float64 {
	sv := space.Volume()
	if sv == 0 {
		return 0
	}
	return float64(b.Occupied) / float64(sv)
}

// FitsSpace admits only blocks that fit the target space axis-wise.
func FitsSpace(b *Block, space geometry.Space, _ *Block) bool {
	return b.FitsSpace(space)
}

// MaxWeight returns a constraint that rejects blocks whose weight would
// push the container past the given payload limit.
func MaxWeight(limit int) ConstraintFunc {
	return func(b *Block, _ geometry.Space, container *Block) bool {
		return container.Weight+b.Weight <= limit
	}
}
