package export

import (
	"fmt"

	"github.com/piwi3910/CubeStow/internal/model"
	"github.com/yofu/dxf"
	dxfcolor "github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
)

// ExportDXF writes a 3D wireframe drawing of the packing: the container
// outline on one layer and every placed block's edges on another. The
// drawing opens in any CAD viewer for visual inspection of the load.
func ExportDXF(path string, result model.PackResult) error {
	d := dxf.NewDrawing()

	if _, err := d.AddLayer("CONTAINER", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("dxf: add container layer: %w", err)
	}
	drawBox(d, 0, 0, 0, result.L, result.W, result.H)

	if _, err := d.AddLayer("BLOCKS", dxfcolor.Red, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("dxf: add blocks layer: %w", err)
	}
	for _, p := range result.Placements {
		drawBox(d, p.X, p.Y, p.Z, p.L, p.W, p.H)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("dxf: save %s: %w", path, err)
	}
	return nil
}

// drawBox emits the twelve edges of a cuboid as LINE entities.
func drawBox(d *drawing.Drawing, x, y, z, l, w, h int) {
	x0, y0, z0 := float64(x), float64(y), float64(z)
	x1, y1, z1 := float64(x+l), float64(y+w), float64(z+h)

	// Bottom rectangle
	d.Line(x0, y0, z0, x1, y0, z0)
	d.Line(x1, y0, z0, x1, y1, z0)
	d.Line(x1, y1, z0, x0, y1, z0)
	d.Line(x0, y1, z0, x0, y0, z0)

	// Top rectangle
	d.Line(x0, y0, z1, x1, y0, z1)
	d.Line(x1, y0, z1, x1, y1, z1)
	d.Line(x1, y1, z1, x0, y1, z1)
	d.Line(x0, y1, z1, x0, y0, z1)

	// Vertical edges
	d.Line(x0, y0, z0, x0, y0, z1)
	d.Line(x1, y0, z0, x1, y0, z1)
	d.Line(x1, y1, z0, x1, y1, z1)
	d.Line(x0, y1, z0, x0, y1, z1)
}
