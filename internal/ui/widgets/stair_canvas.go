package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/StairMason/internal/model"
)

// Piece colors, cycled through for visual distinction.
var pieceColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

// wasteFill marks pieces taken from the reuse inventory.
var wasteFill = color.NRGBA{R: 158, G: 158, B: 158, A: 160}

// ─── Surface Canvas ────────────────────────────────────────

// SurfaceCanvas renders the slab pieces laid on one step surface, to scale.
type SurfaceCanvas struct {
	widget.BaseWidget
	result    model.SlabPlacementResult
	scale     float32 // pixels per cm, shared across surfaces for comparability
	maxHeight float32
}

func NewSurfaceCanvas(result model.SlabPlacementResult, scale, maxH float32) *SurfaceCanvas {
	sc := &SurfaceCanvas{
		result:    result,
		scale:     scale,
		maxHeight: maxH,
	}
	sc.ExtendBaseWidget(sc)
	return sc
}

func (sc *SurfaceCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newSurfaceCanvasRenderer(sc)
}

type surfaceCanvasRenderer struct {
	sc      *SurfaceCanvas
	objects []fyne.CanvasObject
}

func newSurfaceCanvasRenderer(sc *SurfaceCanvas) *surfaceCanvasRenderer {
	r := &surfaceCanvasRenderer{sc: sc}
	r.rebuild()
	return r
}

// rowDepth returns the deepest piece in the row, which sets the drawn height.
func (sc *SurfaceCanvas) rowDepth() float32 {
	var depth float32
	for _, p := range sc.result.Pieces {
		if d := float32(p.Depth); d > depth {
			depth = d
		}
	}
	return depth
}

func (r *surfaceCanvasRenderer) rebuild() {
	r.objects = nil

	scale := r.sc.scale
	depth := r.sc.rowDepth()
	if depth*scale > r.sc.maxHeight {
		scale = r.sc.maxHeight / depth
	}

	x := float32(0)
	for i, p := range r.sc.result.Pieces {
		pw := float32(p.Width) * scale
		ph := float32(p.Depth) * scale

		fill := pieceColors[i%len(pieceColors)]
		if p.FromWaste {
			fill = wasteFill
		}

		pieceRect := canvas.NewRectangle(fill)
		pieceRect.Resize(fyne.NewSize(pw, ph))
		pieceRect.Move(fyne.NewPos(x, 0))
		r.objects = append(r.objects, pieceRect)

		border := canvas.NewRectangle(color.Transparent)
		border.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		border.StrokeWidth = 1
		if p.Cut {
			border.StrokeColor = color.NRGBA{R: 200, G: 0, B: 0, A: 255}
			border.StrokeWidth = 2
		}
		border.Resize(fyne.NewSize(pw, ph))
		border.Move(fyne.NewPos(x, 0))
		r.objects = append(r.objects, border)

		// Label (only if big enough)
		if pw > 34 && ph > 14 {
			label := canvas.NewText(fmt.Sprintf("%.0fx%.0f", p.Width, p.Depth), color.Black)
			label.TextSize = 10
			label.Move(fyne.NewPos(x+3, 2))
			r.objects = append(r.objects, label)
		}

		x += pw + 2 // small visual joint between pieces
	}
}

func (r *surfaceCanvasRenderer) Layout(size fyne.Size)        {}
func (r *surfaceCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *surfaceCanvasRenderer) Destroy()                     {}
func (r *surfaceCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *surfaceCanvasRenderer) MinSize() fyne.Size {
	scale := r.sc.scale
	depth := r.sc.rowDepth()
	if depth*scale > r.sc.maxHeight {
		scale = r.sc.maxHeight / depth
	}
	var width float32
	for _, p := range r.sc.result.Pieces {
		width += float32(p.Width)*scale + 2
	}
	return fyne.NewSize(width, depth*scale)
}

// ─── Cross-Section Canvas ──────────────────────────────────

// ProfileCanvas draws the stair cross-section: the masonry mass under each
// step, seen from the side.
type ProfileCanvas struct {
	widget.BaseWidget
	plan      *model.StepPlan
	maxWidth  float32
	maxHeight float32
}

func NewProfileCanvas(plan *model.StepPlan, maxW, maxH float32) *ProfileCanvas {
	pc := &ProfileCanvas{
		plan:      plan,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	pc.ExtendBaseWidget(pc)
	return pc
}

func (pc *ProfileCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newProfileCanvasRenderer(pc)
}

type profileCanvasRenderer struct {
	pc      *ProfileCanvas
	objects []fyne.CanvasObject
}

func newProfileCanvasRenderer(pc *ProfileCanvas) *profileCanvasRenderer {
	r := &profileCanvasRenderer{pc: pc}
	r.rebuild()
	return r
}

// profileScale fits the whole run and rise into the widget bounds.
func (pc *ProfileCanvas) profileScale() float32 {
	plan := pc.plan
	if plan == nil || plan.TotalLength <= 0 {
		return 1
	}
	totalRise := float32(0)
	for _, s := range plan.Steps {
		totalRise += float32(s.Height)
	}
	scaleX := pc.maxWidth / float32(plan.TotalLength)
	scaleY := pc.maxHeight / totalRise
	if scaleY < scaleX {
		return scaleY
	}
	return scaleX
}

func (r *profileCanvasRenderer) rebuild() {
	r.objects = nil

	plan := r.pc.plan
	if plan == nil || len(plan.Steps) == 0 {
		return
	}
	scale := r.pc.profileScale()

	totalRise := float32(0)
	for _, s := range plan.Steps {
		totalRise += float32(s.Height) * scale
	}

	masonry := color.NRGBA{R: 189, G: 154, B: 122, A: 255} // mortar tan
	outline := color.NRGBA{R: 80, G: 60, B: 40, A: 255}

	// Each step is the solid mass from the ground up to its top surface.
	x := float32(0)
	rise := float32(0)
	for i, s := range plan.Steps {
		rise += float32(s.Height) * scale
		tread := float32(s.Tread) * scale

		block := canvas.NewRectangle(masonry)
		block.Resize(fyne.NewSize(tread, rise))
		block.Move(fyne.NewPos(x, totalRise-rise))
		r.objects = append(r.objects, block)

		border := canvas.NewRectangle(color.Transparent)
		border.StrokeColor = outline
		border.StrokeWidth = 1.5
		border.Resize(fyne.NewSize(tread, rise))
		border.Move(fyne.NewPos(x, totalRise-rise))
		r.objects = append(r.objects, border)

		if tread > 26 && rise > 14 {
			label := canvas.NewText(fmt.Sprintf("%d", i+1), color.Black)
			label.TextSize = 10
			label.Move(fyne.NewPos(x+tread/2-4, totalRise-rise+2))
			r.objects = append(r.objects, label)
		}

		x += tread
	}
}

func (r *profileCanvasRenderer) Layout(size fyne.Size)        {}
func (r *profileCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *profileCanvasRenderer) Destroy()                     {}
func (r *profileCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *profileCanvasRenderer) MinSize() fyne.Size {
	plan := r.pc.plan
	if plan == nil || len(plan.Steps) == 0 {
		return fyne.NewSize(0, 0)
	}
	scale := r.pc.profileScale()
	totalRise := float32(0)
	for _, s := range plan.Steps {
		totalRise += float32(s.Height) * scale
	}
	return fyne.NewSize(float32(plan.TotalLength)*scale, totalRise)
}

// ─── Slab Plan Rendering ───────────────────────────────────

// RenderSlabResults creates a scrollable container of all slab placements.
func RenderSlabResults(plan *model.SlabPlan) fyne.CanvasObject {
	if plan == nil || len(plan.Results) == 0 {
		return widget.NewLabel("No results yet. Enter the measurements, then run the estimate.")
	}

	// One shared scale so surfaces are visually comparable.
	widest := 0.0
	for _, res := range plan.Results {
		w := 0.0
		for _, p := range res.Pieces {
			w += p.Width
		}
		if w > widest {
			widest = w
		}
	}
	scale := float32(1)
	if widest > 0 {
		scale = 600 / float32(widest)
	}

	var items []fyne.CanvasObject
	for _, res := range plan.Results {
		title := fmt.Sprintf("Step %d %s: %s", res.Step+1, res.Location, res.Description)
		if res.WasteUsed {
			title += fmt.Sprintf(" (reusing cut from %s)", res.WasteSource)
		}
		header := widget.NewLabel(title)
		header.TextStyle = fyne.TextStyle{Bold: true}

		items = append(items, header, NewSurfaceCanvas(res, scale, 80), widget.NewSeparator())
	}

	if len(plan.LeftoverWaste) > 0 {
		leftoverHeader := widget.NewLabel("Leftover cut pieces (reusable on a future job):")
		leftoverHeader.TextStyle = fyne.TextStyle{Bold: true}
		items = append(items, leftoverHeader)
		for _, w := range plan.LeftoverWaste {
			items = append(items, widget.NewLabel(fmt.Sprintf(
				"  %.1f x %.1f cm from %s", w.Width, w.Length, w.Source,
			)))
		}
	}

	summary := widget.NewLabel(fmt.Sprintf(
		"Total: %d tread slabs, %d front slabs, %d cuts",
		plan.TotalStepSlabs, plan.TotalFrontSlabs, plan.TotalCuts,
	))
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, summary)

	return container.NewVScroll(container.NewVBox(items...))
}
