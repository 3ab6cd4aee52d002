package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(t *testing.T, xmin, xmax, ymin, ymax, zmin, zmax int) Aabb {
	t.Helper()
	a, err := NewAabb(xmin, xmax, ymin, ymax, zmin, zmax)
	require.NoError(t, err)
	return a
}

func TestNewAabbRejectsEmptyExtent(t *testing.T) {
	_, err := NewAabb(0, 0, 0, 10, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = NewAabb(0, 10, 5, 5, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = NewAabb(0, 10, 0, 10, 3, 2)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestAabbDerivedValues(t *testing.T) {
	a := box(t, 1, 5, 2, 8, 3, 6)
	assert.Equal(t, 4, a.L())
	assert.Equal(t, 6, a.W())
	assert.Equal(t, 3, a.H())
	assert.Equal(t, 72, a.Volume())
}

func TestIntersectStrictVsTouch(t *testing.T) {
	a := box(t, 0, 10, 0, 10, 0, 10)
	touching := box(t, 10, 20, 0, 10, 0, 10)
	overlapping := box(t, 5, 15, 0, 10, 0, 10)
	apart := box(t, 11, 20, 0, 10, 0, 10)

	assert.False(t, a.StrictIntersects(touching))
	assert.True(t, a.Intersects(touching))

	assert.True(t, a.StrictIntersects(overlapping))
	assert.True(t, a.Intersects(overlapping))

	assert.False(t, a.StrictIntersects(apart))
	assert.False(t, a.Intersects(apart))
}

func TestContains(t *testing.T) {
	outer := box(t, 0, 10, 0, 10, 0, 10)
	inner := box(t, 2, 8, 2, 8, 2, 8)

	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
	assert.True(t, outer.Contains(outer), "containment is reflexive")
}

func TestCanHoldIgnoresPosition(t *testing.T) {
	a := box(t, 100, 110, 100, 110, 100, 110)
	b := box(t, 0, 5, 0, 5, 0, 5)
	assert.True(t, a.CanHold(b))
	assert.False(t, b.CanHold(a))
}

func TestSubtractCenterPiece(t *testing.T) {
	a := box(t, 0, 10, 0, 10, 0, 10)
	b := box(t, 2, 8, 2, 8, 2, 8)

	pieces := a.Subtract(b)
	require.Len(t, pieces, 6)

	// The pieces overlap, but their union is exactly A minus B:
	// vol(A) - vol(A∩B) = 1000 - 216 = 784 by inclusion over the
	// disjoint slabs per axis side.
	inter, ok := a.Intersection(b)
	require.True(t, ok)
	assert.Equal(t, 216, inter.Volume())

	covered := unionVolume(a, pieces)
	assert.Equal(t, 784, covered)
}

func TestSubtractCornerPlacement(t *testing.T) {
	a := box(t, 0, 20, 0, 20, 0, 20)
	b := box(t, 0, 10, 0, 10, 0, 10)

	pieces := a.Subtract(b)
	require.Len(t, pieces, 3, "corner placement cuts only the three max faces")

	covered := unionVolume(a, pieces)
	assert.Equal(t, a.Volume()-b.Volume(), covered)
}

func TestSubtractNonCuttingBox(t *testing.T) {
	a := box(t, 0, 10, 0, 10, 0, 10)
	b := box(t, 0, 10, 0, 10, 0, 10)
	assert.Empty(t, a.Subtract(b), "subtracting an identical box leaves nothing")

	bigger := box(t, -5, 15, -5, 15, -5, 15)
	assert.Empty(t, a.Subtract(bigger))
}

// unionVolume counts the integer cells of base covered by at least one
// piece. Brute force over unit cells keeps the check independent of the
// subtraction logic.
func unionVolume(base Aabb, pieces []Aabb) int {
	count := 0
	for x := base.Xmin; x < base.Xmax; x++ {
		for y := base.Ymin; y < base.Ymax; y++ {
			for z := base.Zmin; z < base.Zmax; z++ {
				for _, p := range pieces {
					if x >= p.Xmin && x < p.Xmax &&
						y >= p.Ymin && y < p.Ymax &&
						z >= p.Zmin && z < p.Zmax {
						count++
						break
					}
				}
			}
		}
	}
	return count
}
