package model

// BoxType describes one type of box in a loading instance. The rotation
// flags state which of the three original axes may become the vertical
// axis when the box is oriented inside the container.
type BoxType struct {
	ID     int  `json:"id"`
	L      int  `json:"l"`
	W      int  `json:"w"`
	H      int  `json:"h"`
	RotL   bool `json:"rot_l"`
	RotW   bool `json:"rot_w"`
	RotH   bool `json:"rot_h"`
	Weight int  `json:"weight"`
}

// NewBoxType creates a box type with all rotations allowed and unit weight.
func NewBoxType(id, l, w, h int) BoxType {
	return BoxType{ID: id, L: l, W: w, H: h, RotL: true, RotW: true, RotH: true, Weight: 1}
}

// Volume returns l*w*h.
func (b BoxType) Volume() int {
	return b.L * b.W * b.H
}

// Orientation names which original axis occupies each block axis, in
// order (length, width, height). "whl" means the original width lies
// along the block length and the original length stands vertical.
type Orientation string

const (
	OrientLWH Orientation = "lwh"
	OrientWHL Orientation = "whl"
	OrientHWL Orientation = "hwl"
	OrientLHW Orientation = "lhw"
	OrientHLW Orientation = "hlw"
	OrientWLH Orientation = "wlh"
)

// Orientations returns the admissible orientations of the box: the
// identity always, plus every permutation whose vertical axis is
// permitted by the corresponding rotation flag. A box with all three
// flags set yields all six permutations.
func (b BoxType) Orientations() []Orientation {
	out := []Orientation{OrientLWH}
	if b.RotL {
		out = append(out, OrientWHL, OrientHWL)
	}
	if b.RotW {
		out = append(out, OrientLHW, OrientHLW)
	}
	if b.RotH {
		out = append(out, OrientWLH)
	}
	return out
}

// Oriented returns the box dimensions as seen through the given
// orientation, in block axis order (length, width, height).
func (b BoxType) Oriented(o Orientation) (l, w, h int) {
	dims := [3]int{}
	for i, axis := range o {
		switch axis {
		case 'l':
			dims[i] = b.L
		case 'w':
			dims[i] = b.W
		case 'h':
			dims[i] = b.H
		}
	}
	return dims[0], dims[1], dims[2]
}
