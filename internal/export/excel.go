package export

import (
	"fmt"
	"sort"

	"github.com/piwi3910/CubeStow/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportExcel writes a placement manifest workbook: a Placements sheet
// with one row per placed block in loading order, and a Summary sheet
// with overall statistics.
func ExportExcel(path string, result model.PackResult) error {
	f := excelize.NewFile()
	defer f.Close()

	const placementsSheet = "Placements"
	if err := f.SetSheetName("Sheet1", placementsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"Seq", "X", "Y", "Z", "Length", "Width", "Height", "Boxes", "Box Types", "Block Volume"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(placementsSheet, cell, h); err != nil {
			return err
		}
	}

	for i, p := range result.Placements {
		row := i + 2
		values := []interface{}{
			i + 1, p.X, p.Y, p.Z, p.L, p.W, p.H, p.BoxCount(), formatItems(p.Items), p.Volume(),
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(placementsSheet, cell, v); err != nil {
				return err
			}
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	summary := [][]interface{}{
		{"Container", fmt.Sprintf("%d x %d x %d", result.L, result.W, result.H)},
		{"Container Volume", result.ContainerVolume()},
		{"Blocks Placed", len(result.Placements)},
		{"Boxes Loaded", result.BoxesPlaced()},
		{"Occupied Volume", result.Occupied},
		{"Volume Utilization %", result.Efficiency()},
		{"Payload Weight", result.Weight},
		{"Boxes Left Over", result.UnplacedCount()},
	}
	for r, pair := range summary {
		for c, v := range pair {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

// formatItems renders an items map as "2x#1, 1x#3" in type id order.
func formatItems(items map[int]int) string {
	ids := make([]int, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%dx#%d", items[id], id)
	}
	return out
}
