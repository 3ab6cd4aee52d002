package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/CubeStow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleResult() model.PackResult {
	return model.PackResult{
		L: 587, W: 233, H: 220,
		Placements: []model.Placement{
			{X: 0, Y: 0, Z: 0, L: 200, W: 100, H: 80, Items: map[int]int{1: 4}},
			{X: 200, Y: 0, Z: 0, L: 150, W: 100, H: 80, Items: map[int]int{2: 2}},
			{X: 0, Y: 0, Z: 80, L: 200, W: 100, H: 60, Items: map[int]int{1: 2, 3: 1}},
		},
		Occupied: 4840000,
		Weight:   9,
	}
}

func TestSplitLayers(t *testing.T) {
	layers := splitLayers(sampleResult())
	require.Len(t, layers, 2)
	assert.Equal(t, 0, layers[0].z)
	assert.Len(t, layers[0].placements, 2)
	assert.Equal(t, 80, layers[1].z)
	assert.Len(t, layers[1].placements, 1)
}

func TestExportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "load.pdf")
	err := ExportPDF(path, sampleResult(), model.DefaultSettings())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportPDFEmptyResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "load.pdf")
	err := ExportPDF(path, model.PackResult{L: 10, W: 10, H: 10}, model.DefaultSettings())
	assert.Error(t, err)
}

func TestExportLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	err := ExportLabels(path, sampleResult())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportLabelsEmptyResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	err := ExportLabels(path, model.PackResult{})
	assert.Error(t, err)
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(sampleResult())
	require.Len(t, labels, 3)
	assert.Equal(t, 1, labels[0].Sequence)
	assert.Equal(t, 4, labels[0].Boxes)
	assert.Equal(t, 80, labels[2].Z)
	assert.Equal(t, 3, labels[2].Boxes)
}

func TestExportExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.xlsx")
	require.NoError(t, ExportExcel(path, sampleResult()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Placements")
	assert.Contains(t, sheets, "Summary")

	// Header row plus first placement.
	header, err := f.GetCellValue("Placements", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Seq", header)

	length, err := f.GetCellValue("Placements", "E2")
	require.NoError(t, err)
	assert.Equal(t, "200", length)

	items, err := f.GetCellValue("Placements", "I4")
	require.NoError(t, err)
	assert.Equal(t, "2x#1, 1x#3", items)
}

func TestFormatItems(t *testing.T) {
	assert.Equal(t, "", formatItems(nil))
	assert.Equal(t, "3x#1", formatItems(map[int]int{1: 3}))
	assert.Equal(t, "1x#2, 4x#5", formatItems(map[int]int{5: 4, 2: 1}))
}

func TestExportDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "load.dxf")
	require.NoError(t, ExportDXF(path, sampleResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "LINE")
	assert.Contains(t, content, "CONTAINER")
	assert.Contains(t, content, "BLOCKS")
	// 12 container edges + 12 per placement.
	assert.GreaterOrEqual(t, strings.Count(content, "LINE"), 48)
}
