// Package export provides functionality for exporting finished stair
// estimates to various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/StairMason/internal/model"
)

// pieceColor represents an RGB color for a placed slab piece.
type pieceColor struct {
	R, G, B int
}

// pieceColors mirrors the color scheme used in the UI layout canvas widget.
var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	rowHeight    = 6.0
)

// ExportPDF generates a PDF report of a stair estimate: a summary page, a
// per-step course and quantity table, and a slab cutting plan with a drawn
// layout for every covered surface.
func ExportPDF(path string, est *model.Estimate) error {
	if est == nil || est.Plan == nil {
		return fmt.Errorf("no estimate to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderSummaryPage(pdf, est)

	pdf.AddPage()
	renderCoursePage(pdf, est)

	renderSlabPages(pdf, est.Slabs)

	return pdf.OutputFileAndClose(path)
}

// renderSummaryPage draws the overall numbers of the estimate.
func renderSummaryPage(pdf *fpdf.Fpdf, est *model.Estimate) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Stair Estimate", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	y = renderKeyValues(pdf, y, "Measurements", []kv{
		{"Total height", fmt.Sprintf("%.1f cm", est.Inputs.TotalHeight)},
		{"Total width", fmt.Sprintf("%.1f cm", est.Inputs.TotalWidth)},
		{"Desired step height", fmt.Sprintf("%.1f cm", est.Inputs.StepHeight)},
		{"Desired step tread", fmt.Sprintf("%.1f cm", est.Inputs.StepTread)},
	})

	y = renderKeyValues(pdf, y, "Step Plan", []kv{
		{"Steps", fmt.Sprintf("%d", est.Plan.StepCount)},
		{"Regular step height", fmt.Sprintf("%.2f cm", est.Plan.RegularStepHeight)},
		{"First step height", fmt.Sprintf("%.2f cm", est.Plan.FirstStepHeight)},
		{"Step width", fmt.Sprintf("%.1f cm", est.Plan.StepWidth)},
		{"Total run length", fmt.Sprintf("%.1f cm", est.Plan.TotalLength)},
	})

	items := []kv{}
	for _, c := range est.Totals.Counts {
		items = append(items, kv{c.MaterialName, fmt.Sprintf("%d units", c.Units)})
	}
	items = append(items, kv{"Mortar", fmt.Sprintf("%.1f kg", est.Totals.MortarKg)})
	y = renderKeyValues(pdf, y, "Masonry Units", items)

	y = renderKeyValues(pdf, y, "Finishing Slabs", []kv{
		{"Slab size", est.Settings.SlabSize},
		{"Tread slabs", fmt.Sprintf("%d", est.Slabs.TotalStepSlabs)},
		{"Front slabs", fmt.Sprintf("%d", est.Slabs.TotalFrontSlabs)},
		{"Cuts", fmt.Sprintf("%d", est.Slabs.TotalCuts)},
		{"Leftover waste pieces", fmt.Sprintf("%d", len(est.Slabs.LeftoverWaste))},
	})

	if len(est.Pricing) > 0 {
		items = items[:0]
		for _, line := range est.Pricing {
			items = append(items, kv{
				fmt.Sprintf("%s (%d x %.2f)", line.MaterialName, line.Units, line.PricePerUnit),
				fmt.Sprintf("%.2f", line.Total),
			})
		}
		items = append(items, kv{"Total", fmt.Sprintf("%.2f", est.PricedTotal())})
		renderKeyValues(pdf, y, "Cost (informational)", items)
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by StairMason - Stair Construction Estimator", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

type kv struct {
	label string
	value string
}

// renderKeyValues draws a titled block of label/value rows and returns the
// next free y position.
func renderKeyValues(pdf *fpdf.Fpdf, y float64, title string, items []kv) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, title, "", 0, "L", false, 0, "")
	y += 9

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(70, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}
	return y + 4
}

// renderCoursePage draws the per-step course selection table.
func renderCoursePage(pdf *fpdf.Fpdf, est *model.Estimate) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Course Selection", "", 0, "L", false, 0, "")

	y := marginTop + 14

	colWidths := []float64{15, 25, 65, 20, 25, 30}
	headers := []string{"Step", "Height", "Material", "Stack", "Mortar", "Note"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], rowHeight, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += rowHeight

	pdf.SetFont("Helvetica", "", 9)
	for i, c := range est.Courses {
		note := ""
		if c.NeedsCutting {
			note = "cut to height"
		}
		rowData := []string{
			fmt.Sprintf("%d", c.Step+1),
			fmt.Sprintf("%.2f cm", est.Plan.Steps[i].Height),
			c.MaterialName,
			fmt.Sprintf("%d", c.UnitsInStack),
			fmt.Sprintf("%.2f cm", c.MortarHeight),
			note,
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], rowHeight, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += rowHeight
	}
}

// renderSlabPages draws the cutting plan, one drawn row per covered surface,
// starting pages as needed.
func renderSlabPages(pdf *fpdf.Fpdf, plan *model.SlabPlan) {
	if plan == nil || len(plan.Results) == 0 {
		return
	}

	// Scale every row against the widest surface so proportions hold
	// across the whole plan.
	maxWidth := 0.0
	for _, r := range plan.Results {
		w := 0.0
		for _, p := range r.Pieces {
			w += p.Width
		}
		maxWidth = math.Max(maxWidth, w)
	}
	if maxWidth == 0 {
		return
	}
	scale := (pageWidth - marginLeft - marginRight) / maxWidth

	const rowBlock = 22.0
	y := pageHeight // force a page on the first row

	for _, r := range plan.Results {
		if y+rowBlock > pageHeight-marginBottom {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "B", 14)
			pdf.SetXY(marginLeft, marginTop)
			pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Slab Cutting Plan", "", 0, "L", false, 0, "")
			y = marginTop + 14
		}

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(marginLeft, y)
		title := fmt.Sprintf("Step %d %s: %s", r.Step+1, r.Location, r.Description)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, title, "", 0, "L", false, 0, "")

		renderPieceRow(pdf, r, marginLeft, y+5, scale)
		y += rowBlock
	}
}

// renderPieceRow draws one surface's pieces side by side, to scale.
func renderPieceRow(pdf *fpdf.Fpdf, r model.SlabPlacementResult, x, y, scale float64) {
	const barHeight = 10.0

	pdf.SetLineWidth(0.3)
	for i, p := range r.Pieces {
		col := pieceColors[i%len(pieceColors)]
		w := p.Width * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		style := "FD"
		if p.FromWaste {
			// waste pieces render hollow so they stand out on site
			style = "D"
		}
		pdf.Rect(x, y, w, barHeight, style)

		label := fmt.Sprintf("%.0fx%.0f", p.Width, p.Depth)
		if p.Cut {
			label += " *"
		}
		pdf.SetFont("Helvetica", "", 6)
		labelW := pdf.GetStringWidth(label)
		if labelW < w-1 {
			pdf.SetXY(x+(w-labelW)/2, y+barHeight/2-1.5)
			pdf.CellFormat(labelW, 3, label, "", 0, "C", false, 0, "")
		}

		x += w + 1
	}

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetXY(x+2, y+barHeight/2-1.5)
	note := "* cut to size"
	if r.WasteUsed {
		note = "from waste: " + r.WasteSource
	}
	pdf.CellFormat(40, 3, note, "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
