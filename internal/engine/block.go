// Package engine implements the block-building construction search for
// the container loading problem: candidate block generation, selection
// under pluggable evaluation and constraints, and the greedy placement
// loop that fills a container.
package engine

import (
	"github.com/piwi3910/CubeStow/internal/geometry"
	"github.com/piwi3910/CubeStow/internal/model"
)

// Axis selects the stacking direction for block joins.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Block is a cuboidal aggregate of boxes. A leaf block is a single box
// in one orientation; general blocks are built by joining; a container
// block additionally owns free space and the placed children.
//
// Generated candidate blocks are treated as immutable once they enter a
// block list.
type Block struct {
	L, W, H  int
	Volume   int
	Occupied int
	Weight   int
	Items    *model.ItemSet
	Children []geometry.Aabb
	Free     *geometry.FreeSpace
	Tokens   []string
}

// NewLeafBlock creates a block holding a single box in the given
// orientation. Leaf blocks carry no free space and no children.
func NewLeafBlock(bt model.BoxType, o model.Orientation) *Block {
	l, w, h := bt.Oriented(o)
	items := model.NewItemSet()
	items.AddItem(bt, 1)
	return &Block{
		L: l, W: w, H: h,
		Volume:   bt.Volume(),
		Occupied: bt.Volume(),
		Weight:   bt.Weight,
		Items:    items,
	}
}

// NewCompositeBlock creates a block of the given dimensions composed of
// the given items. Occupied volume and weight are summed from the items.
func NewCompositeBlock(l, w, h int, items *model.ItemSet) *Block {
	b := &Block{
		L: l, W: w, H: h,
		Volume: l * w * h,
		Items:  model.NewItemSet(),
	}
	if items != nil {
		b.Items.Add(items)
		b.Occupied = items.TotalVolume()
		b.Weight = items.TotalWeight()
	}
	return b
}

// NewContainerBlock creates an empty container whose free space is a
// single space covering the whole interior.
func NewContainerBlock(l, w, h int, cfg geometry.Config) *Block {
	return &Block{
		L: l, W: w, H: h,
		Volume: l * w * h,
		Items:  model.NewItemSet(),
		Free:   geometry.NewFreeSpace(geometry.Dims{L: l, W: w, H: h}, cfg),
	}
}

// Clone copies the scalar fields, items, and tokens. Free space and
// children are not carried; the caller reconstructs them if needed.
func (b *Block) Clone() *Block {
	return &Block{
		L: b.L, W: b.W, H: b.H,
		Volume:   b.Volume,
		Occupied: b.Occupied,
		Weight:   b.Weight,
		Items:    b.Items.Clone(),
		Tokens:   append([]string(nil), b.Tokens...),
	}
}

// Dims returns the block's interior dimensions.
func (b *Block) Dims() geometry.Dims {
	return geometry.Dims{L: b.L, W: b.W, H: b.H}
}

// FillRatio returns occupied volume over enclosing volume.
func (b *Block) FillRatio() float64 {
	if b.Volume == 0 {
		return 0
	}
	return float64(b.Occupied) / float64(b.Volume)
}

// FitsIn reports whether the block fits inside other axis-wise.
func (b *Block) FitsIn(other *Block) bool {
	return b.L <= other.L && b.W <= other.W && b.H <= other.H
}

// FitsSpace reports whether the block fits the given free space in its
// current orientation.
func (b *Block) FitsSpace(s geometry.Space) bool {
	return b.L <= s.L() && b.W <= s.W() && b.H <= s.H()
}

// Add places child at (x, y, z) in block-local coordinates: the child's
// bounding box joins the children list, occupied volume, weight, and
// items accumulate, and the free space is cropped. The caller checks
// fit and inventory beforehand; there is no rollback.
func (b *Block) Add(child *Block, x, y, z int) error {
	box, err := geometry.NewAabb(x, x+child.L, y, y+child.W, z, z+child.H)
	if err != nil {
		return err
	}
	b.Children = append(b.Children, box)
	b.Occupied += child.Occupied
	b.Weight += child.Weight
	b.Items.Add(child.Items)
	if b.Free != nil {
		b.Free.Crop(box)
	}
	return nil
}

// Join grows this block by stacking other along the given axis: the
// stacking dimension is summed, the other two take the max. The join
// only happens when the combined occupied volume fills at least
// minFillRatio of the new enclosing volume; otherwise the block is left
// unchanged and false is returned. Joined blocks do not track child
// positions.
func (b *Block) Join(other *Block, axis Axis, minFillRatio float64) bool {
	var l, w, h int
	switch axis {
	case AxisX:
		l = b.L + other.L
		w = maxInt(b.W, other.W)
		h = maxInt(b.H, other.H)
	case AxisY:
		l = maxInt(b.L, other.L)
		w = b.W + other.W
		h = maxInt(b.H, other.H)
	case AxisZ:
		l = maxInt(b.L, other.L)
		w = maxInt(b.W, other.W)
		h = b.H + other.H
	default:
		return false
	}

	volume := l * w * h
	if float64(b.Occupied+other.Occupied)/float64(volume) < minFillRatio {
		return false
	}

	b.L, b.W, b.H = l, w, h
	b.Volume = volume
	b.Occupied += other.Occupied
	b.Weight += other.Weight
	b.Items.Add(other.Items)
	return true
}

// IsConstructible reports whether the block can be built from the given
// inventory.
func (b *Block) IsConstructible(items *model.ItemSet) bool {
	return b.Items.LessEqual(items)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
