package model

import (
	"time"

	"github.com/google/uuid"
)

// CartonPreset represents a reusable carton size definition.
type CartonPreset struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	L      int    `json:"l"`
	W      int    `json:"w"`
	H      int    `json:"h"`
	Weight int    `json:"weight"`
}

// NewCartonPreset creates a new CartonPreset with a generated ID.
func NewCartonPreset(name string, l, w, h, weight int) CartonPreset {
	return CartonPreset{
		ID:     uuid.New().String()[:8],
		Name:   name,
		L:      l,
		W:      w,
		H:      h,
		Weight: weight,
	}
}

// ToBoxType converts a preset into a box type for use in an instance.
func (cp CartonPreset) ToBoxType(id int) BoxType {
	bt := NewBoxType(id, cp.L, cp.W, cp.H)
	bt.Weight = cp.Weight
	return bt
}

// DefaultCartonPresets returns common carton sizes in centimeters.
func DefaultCartonPresets() []CartonPreset {
	return []CartonPreset{
		NewCartonPreset("Small parcel 30x25x20", 30, 25, 20, 2),
		NewCartonPreset("Medium carton 60x40x40", 60, 40, 40, 8),
		NewCartonPreset("Large carton 80x60x60", 80, 60, 60, 15),
		NewCartonPreset("Half euro-mod 60x40x30", 60, 40, 30, 6),
		NewCartonPreset("Wardrobe box 50x50x100", 50, 50, 100, 12),
	}
}

// ProjectTemplate represents a reusable project configuration that
// captures the instance and settings but not packing results.
type ProjectTemplate struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	Instance    Instance     `json:"instance"`
	Settings    PackSettings `json:"settings"`
}

// NewProjectTemplate creates a new template from the given project data.
// It copies the instance and settings but intentionally excludes results.
func NewProjectTemplate(name, description string, instance Instance, settings PackSettings) ProjectTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return ProjectTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Instance:    copyInstance(instance),
		Settings:    settings,
	}
}

// ToProject creates a new Project from this template.
func (t ProjectTemplate) ToProject(projectName string) Project {
	return Project{
		Name:     projectName,
		Instance: copyInstance(t.Instance),
		Settings: t.Settings,
	}
}

func copyInstance(in Instance) Instance {
	cp := in
	cp.Boxes = make([]BoxQuantity, len(in.Boxes))
	copy(cp.Boxes, in.Boxes)
	return cp
}

// TemplateStore holds a collection of project templates.
type TemplateStore struct {
	Templates []ProjectTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{Templates: []ProjectTemplate{}}
}

// Add appends a template to the store.
func (s *TemplateStore) Add(t ProjectTemplate) {
	s.Templates = append(s.Templates, t)
}

// Remove deletes the template with the given ID. Returns true if found.
func (s *TemplateStore) Remove(id string) bool {
	for i, t := range s.Templates {
		if t.ID == id {
			s.Templates = append(s.Templates[:i], s.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the template with the given ID.
func (s *TemplateStore) Find(id string) (ProjectTemplate, bool) {
	for _, t := range s.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return ProjectTemplate{}, false
}
