package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackResultEfficiency(t *testing.T) {
	r := PackResult{
		L: 20, W: 20, H: 20,
		Occupied: 4000,
	}
	assert.InDelta(t, 50.0, r.Efficiency(), 1e-9)

	empty := PackResult{}
	assert.Equal(t, 0.0, empty.Efficiency())
}

func TestPackResultCounts(t *testing.T) {
	r := PackResult{
		Placements: []Placement{
			{L: 10, W: 10, H: 10, Items: map[int]int{1: 2}},
			{L: 10, W: 10, H: 10, Items: map[int]int{1: 1, 2: 1}},
		},
		Unplaced: map[int]int{2: 3},
	}
	assert.Equal(t, 4, r.BoxesPlaced())
	assert.Equal(t, 3, r.UnplacedCount())
}

func TestInstanceItems(t *testing.T) {
	in := Instance{
		L: 100, W: 100, H: 100,
		Boxes: []BoxQuantity{
			{Type: NewBoxType(1, 10, 10, 10), Quantity: 4},
			{Type: NewBoxType(2, 20, 10, 10), Quantity: 2},
		},
	}
	items := in.Items()
	assert.Equal(t, 4, items.Count(1))
	assert.Equal(t, 2, items.Count(2))
	assert.Equal(t, 8000, in.CargoVolume())
	assert.Equal(t, 1000000, in.ContainerVolume())
}

func TestCalculateLoadEstimate(t *testing.T) {
	boxes := []BoxQuantity{
		{Type: NewBoxType(1, 10, 10, 10), Quantity: 10}, // 10000 volume
	}
	est := CalculateLoadEstimate(boxes, 20, 20, 20, 50.0, 100.0)

	assert.Equal(t, 10000, est.CargoVolume)
	assert.Equal(t, 8000, est.ContainerVolume)
	assert.InDelta(t, 1.25, est.ContainersExact, 1e-9)
	assert.Equal(t, 2, est.ContainersMin)
	// 1.25 * 1.5 = 1.875, ceiling 2
	assert.Equal(t, 2, est.ContainersWithWaste)
	assert.InDelta(t, 200.0, est.EstimatedCost, 1e-9)
}

func TestAppConfigApplyToSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultFilling = FillingBottomUp
	cfg.DefaultMinFillRatio = 0.9

	s := DefaultSettings()
	cfg.ApplyToSettings(&s)
	assert.Equal(t, FillingBottomUp, s.Filling)
	assert.InDelta(t, 0.9, s.MinFillRatio, 1e-9)
}

func TestAppConfigAddRecentProject(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecentProject("/a", 3)
	cfg.AddRecentProject("/b", 3)
	cfg.AddRecentProject("/a", 3)
	assert.Equal(t, []string{"/a", "/b"}, cfg.RecentProjects)

	cfg.AddRecentProject("/c", 3)
	cfg.AddRecentProject("/d", 3)
	assert.Equal(t, []string{"/d", "/c", "/a"}, cfg.RecentProjects)
}

func TestTemplateRoundTrip(t *testing.T) {
	inst := Instance{
		L: 587, W: 233, H: 220,
		Boxes: []BoxQuantity{{Type: NewBoxType(1, 30, 25, 20), Quantity: 5}},
	}
	tpl := NewProjectTemplate("Standard", "test", inst, DefaultSettings())
	assert.NotEmpty(t, tpl.ID)

	p := tpl.ToProject("My Load")
	assert.Equal(t, "My Load", p.Name)
	assert.Equal(t, inst.L, p.Instance.L)
	assert.Len(t, p.Instance.Boxes, 1)

	// Template and project boxes are independent copies.
	p.Instance.Boxes[0].Quantity = 99
	assert.Equal(t, 5, tpl.Instance.Boxes[0].Quantity)
}

func TestTemplateStore(t *testing.T) {
	store := NewTemplateStore()
	tpl := NewProjectTemplate("A", "", Instance{L: 1, W: 1, H: 1}, DefaultSettings())
	store.Add(tpl)

	found, ok := store.Find(tpl.ID)
	assert.True(t, ok)
	assert.Equal(t, "A", found.Name)

	assert.True(t, store.Remove(tpl.ID))
	assert.False(t, store.Remove(tpl.ID))
	assert.Empty(t, store.Templates)
}

func TestCartonPresetToBoxType(t *testing.T) {
	presets := DefaultCartonPresets()
	assert.NotEmpty(t, presets)

	bt := presets[0].ToBoxType(7)
	assert.Equal(t, 7, bt.ID)
	assert.Equal(t, presets[0].L, bt.L)
	assert.Equal(t, presets[0].Weight, bt.Weight)
	assert.True(t, bt.RotL)
}
