package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/StairMason/internal/model"
)

// dxfRowSpacing is the vertical gap between surface rows in drawing units (cm).
const dxfRowSpacing = 10.0

// ExportDXF writes the slab cutting plan as a DXF drawing, one row of
// rectangles per covered surface, so the layout can be taken into CAD or a
// stone saw. Coordinates are in centimeters; rows are stacked top to bottom
// in plan order with treads and fronts on separate layers.
func ExportDXF(path string, plan *model.SlabPlan) error {
	if plan == nil || len(plan.Results) == 0 {
		return fmt.Errorf("no cutting plan to export")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer("TREADS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	if _, err := d.AddLayer("FRONTS", dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
		return err
	}
	if _, err := d.AddLayer("LABELS", dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
		return err
	}

	y := 0.0
	for _, r := range plan.Results {
		rowDepth := rowDepthOf(r)

		layer := "TREADS"
		if r.Location == model.LocationFront {
			layer = "FRONTS"
		}
		if err := d.ChangeLayer(layer); err != nil {
			return err
		}

		x := 0.0
		for _, p := range r.Pieces {
			drawRect(d, x, y-p.Depth, p.Width, p.Depth)
			x += p.Width
		}

		if err := d.ChangeLayer("LABELS"); err != nil {
			return err
		}
		label := fmt.Sprintf("Step %d %s", r.Step+1, r.Location)
		if _, err := d.Text(label, x+5, y-rowDepth/2, 0, 3); err != nil {
			return err
		}

		y -= rowDepth + dxfRowSpacing
	}

	return d.SaveAs(path)
}

// rowDepthOf returns the deepest piece of a surface row, used for row spacing.
func rowDepthOf(r model.SlabPlacementResult) float64 {
	depth := 0.0
	for _, p := range r.Pieces {
		if p.Depth > depth {
			depth = p.Depth
		}
	}
	return depth
}

// drawRect draws an axis-aligned rectangle as four line entities.
func drawRect(d *drawing.Drawing, x, y, w, h float64) {
	d.Line(x, y, 0, x+w, y, 0)
	d.Line(x+w, y, 0, x+w, y+h, 0)
	d.Line(x+w, y+h, 0, x, y+h, 0)
	d.Line(x, y+h, 0, x, y, 0)
}
