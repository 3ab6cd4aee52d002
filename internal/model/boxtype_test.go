package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxTypeVolume(t *testing.T) {
	bt := NewBoxType(1, 10, 20, 30)
	assert.Equal(t, 6000, bt.Volume())
}

func TestOrientationsAllRotations(t *testing.T) {
	bt := NewBoxType(1, 10, 20, 30)

	orients := bt.Orientations()
	assert.Len(t, orients, 6)
	assert.ElementsMatch(t, []Orientation{
		OrientLWH, OrientWHL, OrientHWL, OrientLHW, OrientHLW, OrientWLH,
	}, orients)
}

func TestOrientationsRestricted(t *testing.T) {
	bt := NewBoxType(1, 10, 20, 30)
	bt.RotL = false
	bt.RotW = false
	bt.RotH = false

	// Only the identity remains when nothing may stand upright.
	assert.Equal(t, []Orientation{OrientLWH}, bt.Orientations())

	bt.RotH = true
	assert.Equal(t, []Orientation{OrientLWH, OrientWLH}, bt.Orientations())

	bt.RotL = true
	assert.Equal(t, []Orientation{OrientLWH, OrientWHL, OrientHWL, OrientWLH}, bt.Orientations())
}

func TestOrientedDims(t *testing.T) {
	bt := NewBoxType(1, 10, 20, 30)

	cases := []struct {
		o       Orientation
		l, w, h int
	}{
		{OrientLWH, 10, 20, 30},
		{OrientWHL, 20, 30, 10},
		{OrientHWL, 30, 20, 10},
		{OrientLHW, 10, 30, 20},
		{OrientHLW, 30, 10, 20},
		{OrientWLH, 20, 10, 30},
	}
	for _, c := range cases {
		l, w, h := bt.Oriented(c.o)
		assert.Equal(t, c.l, l, "orientation %s length", c.o)
		assert.Equal(t, c.w, w, "orientation %s width", c.o)
		assert.Equal(t, c.h, h, "orientation %s height", c.o)
	}
}

func TestOrientedPreservesVolume(t *testing.T) {
	bt := NewBoxType(1, 7, 11, 13)
	for _, o := range bt.Orientations() {
		l, w, h := bt.Oriented(o)
		assert.Equal(t, bt.Volume(), l*w*h, "orientation %s", o)
	}
}
