// Package export provides functionality for exporting container packing
// results to various file formats.
package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/CubeStow/internal/model"
)

// blockColor represents an RGB color for a placed block.
type blockColor struct {
	R, G, B int
}

// blockColors is the rotation of fill colors for placed blocks.
var blockColors = []blockColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 18.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// layer groups the placements that start at one z level.
type layer struct {
	z          int
	placements []model.Placement
}

// splitLayers buckets placements by the z coordinate they rest on,
// bottom first. This gives one loading step per page: everything in a
// layer can be loaded before the next layer starts.
func splitLayers(result model.PackResult) []layer {
	byZ := make(map[int][]model.Placement)
	for _, p := range result.Placements {
		byZ[p.Z] = append(byZ[p.Z], p)
	}
	zs := make([]int, 0, len(byZ))
	for z := range byZ {
		zs = append(zs, z)
	}
	sort.Ints(zs)

	layers := make([]layer, 0, len(zs))
	for _, z := range zs {
		layers = append(layers, layer{z: z, placements: byZ[z]})
	}
	return layers
}

// ExportPDF generates a PDF document of the packing result: one page per
// loading layer with a top-view diagram, followed by a summary page.
func ExportPDF(path string, result model.PackResult, settings model.PackSettings) error {
	if len(result.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	layers := splitLayers(result)
	for i, ly := range layers {
		pdf.AddPage()
		renderLayerPage(pdf, result, ly, i+1, len(layers))
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result, settings)

	return pdf.OutputFileAndClose(path)
}

// renderLayerPage draws the top view of a single loading layer.
func renderLayerPage(pdf *fpdf.Fpdf, result model.PackResult, ly layer, layerNum, layerCount int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Layer %d/%d at z=%d (container %d x %d x %d)",
		layerNum, layerCount, ly.z, result.L, result.W, result.H)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	boxes := 0
	volume := 0
	for _, p := range ly.placements {
		boxes += p.BoxCount()
		volume += p.Volume()
	}
	stats := fmt.Sprintf("Blocks: %d | Boxes: %d | Layer block volume: %d", len(ly.placements), boxes, volume)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scaleX := drawWidth / float64(result.L)
	scaleY := drawHeight / float64(result.W)
	scale := math.Min(scaleX, scaleY)

	canvasW := float64(result.L) * scale
	canvasH := float64(result.W) * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Container floor
	pdf.SetFillColor(225, 225, 225)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	for i, p := range ly.placements {
		col := blockColors[i%len(blockColors)]
		bw := float64(p.L) * scale
		bh := float64(p.W) * scale
		bx := offsetX + float64(p.X)*scale
		by := offsetY + float64(p.Y)*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(bx, by, bw, bh, "FD")

		if bw > 15 && bh > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(bw, bh))
			pdf.SetTextColor(0, 0, 0)

			label := fmt.Sprintf("%d box", p.BoxCount())
			if p.BoxCount() != 1 {
				label += "es"
			}
			dims := fmt.Sprintf("%dx%dx%d", p.L, p.W, p.H)

			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < bw-2 {
				pdf.SetXY(bx+(bw-labelW)/2, by+bh/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if bh > 14 && dimsW < bw-2 {
				pdf.SetXY(bx+(bw-dimsW)/2, by+bh/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, result, scale, offsetX, offsetY, canvasW, canvasH)
}

// labelFontSize picks a font size that fits the block rectangle.
func labelFontSize(w, h float64) float64 {
	size := math.Min(w, h) / 3
	if size > 8 {
		size = 8
	}
	if size < 4 {
		size = 4
	}
	return size
}

// drawDimensionAnnotations adds length and width labels outside the container rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, result model.PackResult, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	lengthLabel := fmt.Sprintf("%d", result.L)
	lLabelW := pdf.GetStringWidth(lengthLabel)
	pdf.SetXY(offsetX+(canvasW-lLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(lLabelW, 4, lengthLabel, "", 0, "C", false, 0, "")

	widthLabel := fmt.Sprintf("%d", result.W)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX-3-wLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage draws the final summary page with overall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.PackResult, settings model.PackSettings) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Container Loading Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Container", fmt.Sprintf("%d x %d x %d", result.L, result.W, result.H)},
		{"Blocks Placed", fmt.Sprintf("%d", len(result.Placements))},
		{"Boxes Loaded", fmt.Sprintf("%d", result.BoxesPlaced())},
		{"Volume Utilization", fmt.Sprintf("%.1f%%", result.Efficiency())},
		{"Payload Weight", fmt.Sprintf("%d", result.Weight)},
		{"Boxes Left Over", fmt.Sprintf("%d", result.UnplacedCount())},
	}

	for _, item := range summaryItems {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(80, 6, item.value, "", 0, "L", false, 0, "")
		y += 7
	}

	y += 4
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Engine Settings", "", 0, "L", false, 0, "")
	y += 9

	settingItems := []struct {
		label string
		value string
	}{
		{"Filling Policy", string(settings.Filling)},
		{"Vertical Stability", fmt.Sprintf("%t", settings.VerticalStability)},
		{"Min Fill Ratio", fmt.Sprintf("%.2f", settings.MinFillRatio)},
		{"Max Blocks", fmt.Sprintf("%d", settings.MaxBlocks)},
	}

	for _, item := range settingItems {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(80, 6, item.value, "", 0, "L", false, 0, "")
		y += 7
	}
}
