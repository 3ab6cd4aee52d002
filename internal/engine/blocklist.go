package engine

import (
	"github.com/piwi3910/CubeStow/internal/geometry"
	"github.com/piwi3910/CubeStow/internal/model"
)

// BlockList is an ordered list of candidate blocks. Order is the
// generation order, which makes selection deterministic.
type BlockList []*Block

// GenerateSimpleBlocks emits one leaf block per admissible orientation
// of every box type in the set.
func GenerateSimpleBlocks(items *model.ItemSet) BlockList {
	var blocks BlockList
	items.Each(func(bt model.BoxType, n int) {
		if n <= 0 {
			return
		}
		for _, o := range bt.Orientations() {
			blocks = append(blocks, NewLeafBlock(bt, o))
		}
	})
	return blocks
}

// GenerateGeneralBlocks runs the classic iterative pairwise composition:
// starting from the simple blocks, each round joins every block of the
// previous round's output with every known block along each axis,
// keeping candidates that are constructible from the pool, fit the
// container, and pass the fill-ratio gate. Rounds continue until a round
// produces nothing new or the list reaches maxBlocks.
func GenerateGeneralBlocks(items *model.ItemSet, container *Block, minFillRatio float64, maxBlocks int) BlockList {
	blocks := GenerateSimpleBlocks(items)
	prev := append(BlockList(nil), blocks...)

	for len(blocks) < maxBlocks {
		var fresh BlockList
	round:
		for _, b1 := range prev {
			for _, b2 := range blocks {
				for _, candidate := range generateJoins(b1, b2, minFillRatio) {
					if candidate.IsConstructible(items) && candidate.FitsIn(container) {
						fresh = append(fresh, candidate)
						if len(blocks)+len(fresh) >= maxBlocks {
							break round
						}
					}
				}
			}
		}
		if len(fresh) == 0 {
			break
		}
		blocks = append(blocks, fresh...)
		prev = fresh
	}
	return blocks
}

// generateJoins enumerates the joins of an ordered pair: one candidate
// per axis, built on a copy of b1. Orientation variants need no extra
// enumeration here because simple blocks already materialize every
// admissible orientation, and composition visits all ordered pairs.
func generateJoins(b1, b2 *Block, minFillRatio float64) []*Block {
	var out []*Block
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		candidate := b1.Clone()
		if candidate.Join(b2, axis, minFillRatio) {
			out = append(out, candidate)
		}
	}
	return out
}

// Best scans the candidates in order and returns the block with the
// highest evaluation among those satisfying every constraint. The first
// maximum seen wins ties; ok is false when no candidate is feasible.
func Best(blocks BlockList, space geometry.Space, container *Block, eval EvalFunc, constraints []ConstraintFunc) (*Block, bool) {
	var best *Block
	bestEval := 0.0
scan:
	for _, b := range blocks {
		for _, ctr := range constraints {
			if !ctr(b, space, container) {
				continue scan
			}
		}
		ev := eval(b, space, container)
		if best == nil || ev > bestEval {
			best = b
			bestEval = ev
		}
	}
	return best, best != nil
}

// RemoveUnconstructable returns the blocks still buildable from the
// inventory, preserving order. Used between placements as the pool
// shrinks.
func RemoveUnconstructable(blocks BlockList, items *model.ItemSet) BlockList {
	kept := blocks[:0]
	for _, b := range blocks {
		if b.IsConstructible(items) {
			kept = append(kept, b)
		}
	}
	return kept
}
