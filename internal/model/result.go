package model

// Placement records one block placed into the container: its position,
// its enclosing dimensions, and the boxes it aggregates.
type Placement struct {
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Z     int         `json:"z"`
	L     int         `json:"l"`
	W     int         `json:"w"`
	H     int         `json:"h"`
	Items map[int]int `json:"items"` // Box type id -> count
}

// Volume returns the enclosing volume of the placed block.
func (p Placement) Volume() int {
	return p.L * p.W * p.H
}

// BoxCount returns how many boxes the placement aggregates.
func (p Placement) BoxCount() int {
	total := 0
	for _, n := range p.Items {
		total += n
	}
	return total
}

// PackResult holds the outcome of packing one instance.
type PackResult struct {
	L          int         `json:"l"`
	W          int         `json:"w"`
	H          int         `json:"h"`
	Placements []Placement `json:"placements"`
	Occupied   int         `json:"occupied_volume"` // Summed box volume actually loaded
	Weight     int         `json:"weight"`
	Unplaced   map[int]int `json:"unplaced,omitempty"` // Box type id -> count left over
}

// ContainerVolume returns the interior volume of the container.
func (r PackResult) ContainerVolume() int {
	return r.L * r.W * r.H
}

// Efficiency returns the volume utilization percentage.
func (r PackResult) Efficiency() float64 {
	cv := r.ContainerVolume()
	if cv == 0 {
		return 0
	}
	return float64(r.Occupied) / float64(cv) * 100.0
}

// BoxesPlaced returns the total number of boxes loaded.
func (r PackResult) BoxesPlaced() int {
	total := 0
	for _, p := range r.Placements {
		total += p.BoxCount()
	}
	return total
}

// UnplacedCount returns the total number of boxes left over.
func (r PackResult) UnplacedCount() int {
	total := 0
	for _, n := range r.Unplaced {
		total += n
	}
	return total
}

// Project ties everything together for save/load.
type Project struct {
	Name     string       `json:"name"`
	Instance Instance     `json:"instance"`
	Settings PackSettings `json:"settings"`
	Result   *PackResult  `json:"result,omitempty"`
}

// NewProject returns an empty project with default settings.
func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Instance: Instance{L: 587, W: 233, H: 220},
		Settings: DefaultSettings(),
	}
}
