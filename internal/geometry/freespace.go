package geometry

import (
	"sort"
	"strings"

	"github.com/piwi3910/CubeStow/internal/model"
)

// FreeSpace tracks the empty cuboids inside one container block as a
// maximal set: spaces may overlap, but no live space is fully contained
// in another.
type FreeSpace struct {
	spaces []Space
	cont   Dims
	cfg    Config
}

// NewFreeSpace creates the free space of an empty container: a single
// space covering the whole interior.
func NewFreeSpace(cont Dims, cfg Config) *FreeSpace {
	fs := &FreeSpace{cont: cont, cfg: cfg}
	if interior, err := cont.Interior(); err == nil {
		fs.spaces = append(fs.spaces, NewSpace(interior, cont, cfg))
	}
	return fs
}

// Spaces returns the live spaces. The slice is shared; callers must not
// mutate it.
func (f *FreeSpace) Spaces() []Space { return f.spaces }

// Len returns the number of live spaces.
func (f *FreeSpace) Len() int { return len(f.spaces) }

// Crop updates the set after a cuboid has been placed. Spaces touching
// the placement are pulled out; those in strict overlap are replaced by
// their remainders, boundary-touching ones re-enter unchanged. The new
// pieces are pruned to a maximal set before rejoining the untouched
// spaces.
func (f *FreeSpace) Crop(placed Aabb) {
	var kept, touched []Space
	for _, s := range f.spaces {
		if s.Intersects(placed) {
			touched = append(touched, s)
		} else {
			kept = append(kept, s)
		}
	}
	if len(touched) == 0 {
		return
	}

	var fresh []Space
	for _, s := range touched {
		if s.StrictIntersects(placed) {
			fresh = append(fresh, s.SubtractPlaced(placed, f.cont, f.cfg)...)
		} else {
			fresh = append(fresh, s)
		}
	}

	f.spaces = append(kept, removeNonmaximal(fresh)...)
}

// ClosestSpace returns the live space with the lowest priority. The
// first-seen space wins ties; ok is false when the set is empty.
func (f *FreeSpace) ClosestSpace() (Space, bool) {
	if len(f.spaces) == 0 {
		return Space{}, false
	}
	best := f.spaces[0]
	for _, s := range f.spaces[1:] {
		if s.Priority < best.Priority {
			best = s
		}
	}
	return best, true
}

// Remove drops a specific space from the live set.
func (f *FreeSpace) Remove(target Space) {
	for i, s := range f.spaces {
		if s.Aabb == target.Aabb {
			f.spaces = append(f.spaces[:i], f.spaces[i+1:]...)
			return
		}
	}
}

// Filter drops every space that cannot fit any box type with a positive
// remaining count. Fit is axis-aligned against the type's stated
// dimensions; rotations are materialized as separate blocks upstream,
// not applied here.
func (f *FreeSpace) Filter(items *model.ItemSet) {
	kept := f.spaces[:0]
	for _, s := range f.spaces {
		if fitsAny(s, items) {
			kept = append(kept, s)
		}
	}
	f.spaces = kept
}

func fitsAny(s Space, items *model.ItemSet) bool {
	found := false
	items.Each(func(bt model.BoxType, n int) {
		if found || n <= 0 {
			return
		}
		if s.L() >= bt.L && s.W() >= bt.W && s.H() >= bt.H {
			found = true
		}
	})
	return found
}

// removeNonmaximal prunes spaces fully contained in another of the same
// batch. Sorting by volume descending lets a single forward pass keep
// only maximal spaces; exact duplicates collapse to one.
func removeNonmaximal(spaces []Space) []Space {
	sort.SliceStable(spaces, func(i, j int) bool {
		return spaces[i].Volume() > spaces[j].Volume()
	})

	dropped := make([]bool, len(spaces))
	for i := range spaces {
		if dropped[i] {
			continue
		}
		for j := i + 1; j < len(spaces); j++ {
			if dropped[j] {
				continue
			}
			if spaces[i].Contains(spaces[j].Aabb) {
				dropped[j] = true
			}
		}
	}

	out := spaces[:0]
	for i, s := range spaces {
		if !dropped[i] {
			out = append(out, s)
		}
	}
	return out
}

func (f *FreeSpace) String() string {
	var b strings.Builder
	for i, s := range f.spaces {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.String())
	}
	return b.String()
}
