package engine

import (
	"github.com/piwi3910/CubeStow/internal/geometry"
	"github.com/piwi3910/CubeStow/internal/model"
)

// Packer runs the greedy block-building placement loop.
type Packer struct {
	Settings model.PackSettings
}

// New creates a packer with the given settings.
func New(settings model.PackSettings) *Packer {
	return &Packer{Settings: settings}
}

// Pack loads an instance into its container using the default
// evaluation (most occupied volume) and the fit constraint, plus a
// payload-limit constraint when the settings carry one.
func (p *Packer) Pack(inst model.Instance) model.PackResult {
	constraints := []ConstraintFunc{FitsSpace}
	if p.Settings.MaxWeight > 0 {
		constraints = append(constraints, MaxWeight(p.Settings.MaxWeight))
	}
	return p.PackWith(inst, EvalOccupiedVolume, constraints)
}

// PackWith loads an instance under a caller-chosen evaluation and
// constraint set. The loop repeatedly takes the highest-priority free
// space, picks the best feasible candidate block for it, and places the
// block at the space's anchor corner; a space with no feasible block is
// discarded. The loop ends when no usable space remains.
func (p *Packer) PackWith(inst model.Instance, eval EvalFunc, constraints []ConstraintFunc) model.PackResult {
	cfg := geometry.ConfigFrom(p.Settings)
	container := NewContainerBlock(inst.L, inst.W, inst.H, cfg)
	remaining := inst.Items()

	blocks := GenerateGeneralBlocks(remaining, container, p.Settings.MinFillRatio, p.Settings.MaxBlocks)

	result := model.PackResult{L: inst.L, W: inst.W, H: inst.H}

	for {
		container.Free.Filter(remaining)
		space, ok := container.Free.ClosestSpace()
		if !ok {
			break
		}

		blocks = RemoveUnconstructable(blocks, remaining)
		block, ok := Best(blocks, space, container, eval, constraints)
		if !ok {
			// Nothing admissible for this space; retire it and move on.
			container.Free.Remove(space)
			continue
		}

		x, y, z := anchorPosition(space, block)
		if err := container.Add(block, x, y, z); err != nil {
			container.Free.Remove(space)
			continue
		}
		remaining.Sub(block.Items)

		result.Placements = append(result.Placements, model.Placement{
			X: x, Y: y, Z: z,
			L: block.L, W: block.W, H: block.H,
			Items: block.Items.Counts(),
		})
	}

	result.Occupied = container.Occupied
	result.Weight = container.Weight

	unplaced := make(map[int]int)
	remaining.Each(func(bt model.BoxType, n int) {
		if n > 0 {
			unplaced[bt.ID] = n
		}
	})
	if len(unplaced) > 0 {
		result.Unplaced = unplaced
	}
	return result
}

// anchorPosition translates a space's anchor corner into the min corner
// of the block to place: on any axis whose anchor sits at the space's
// max face, the block extends backwards from that face.
func anchorPosition(space geometry.Space, b *Block) (x, y, z int) {
	x = space.Xmin
	if space.Corner[0] == space.Xmax {
		x = space.Xmax - b.L
	}
	y = space.Ymin
	if space.Corner[1] == space.Ymax {
		y = space.Ymax - b.W
	}
	z = space.Zmin
	if space.Corner[2] == space.Zmax {
		z = space.Zmax - b.H
	}
	return x, y, z
}
