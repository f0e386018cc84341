package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/piwi3910/StairMason/internal/model"
)

// dimensionTolerance is the slack under which a piece counts as already
// matching the needed size, so reusing it costs no cut.
const dimensionTolerance = 0.1

// SlabPlanner lays finishing slabs over every step's tread and front face,
// cutting stock sheets to size and banking the off-cuts so later steps can
// reuse them. Steps are processed in ascending order, tread before front;
// because the waste pool carries across iterations the result is
// deliberately order-dependent: later steps may consume waste from earlier
// ones, never the other way round.
//
// A planner instance owns its waste inventory for the duration of one Plan
// call and must not be shared across concurrent runs.
type SlabPlanner struct {
	Slab      model.SlabSize
	Placement model.SlabPlacement
	GapMM     float64
	Policy    model.CutPolicy
	Overhangs model.Overhangs
	Sides     model.SideConfig

	// WastePolicy selects which banked piece to consume first. Nil means
	// SmallestAreaFirst.
	WastePolicy SelectionPolicy

	inventory *WasteInventory
	cuts      int
}

// NewSlabPlanner builds a planner from the user-facing settings.
func NewSlabPlanner(settings model.EstimateSettings, overhangs model.Overhangs, sides model.SideConfig) *SlabPlanner {
	return &SlabPlanner{
		Slab:      model.FindSlabSize(settings.SlabSize),
		Placement: settings.Placement,
		GapMM:     settings.GapMM,
		Policy:    settings.Policy,
		Overhangs: overhangs,
		Sides:     sides,
	}
}

// Plan covers every step surface and returns the placement results together
// with the cut count and whatever waste survived the run.
func (p *SlabPlanner) Plan(plan *model.StepPlan) *model.SlabPlan {
	p.inventory = NewWasteInventory(p.WastePolicy)
	p.cuts = 0

	result := &model.SlabPlan{}
	frontWidth := plan.TotalWidth - 2*p.Overhangs.Side

	for i, step := range plan.Steps {
		tread := p.coverSurface(i, model.LocationTread, plan.TotalWidth, step.Tread)
		result.Results = append(result.Results, tread)
		result.TotalStepSlabs += tread.UnitsNeeded

		front := p.coverSurface(i, model.LocationFront, frontWidth, step.Height)
		p.trimFrontOverhang(&front)
		result.Results = append(result.Results, front)
		result.TotalFrontSlabs += front.UnitsNeeded
	}

	result.TotalCuts = p.cuts
	result.LeftoverWaste = p.inventory.Pieces()
	return result
}

// coverSurface plans one step surface of required width W and depth D.
// Reusable waste is tried first; only when no banked piece (or pair) can
// span the surface are new sheets counted.
func (p *SlabPlanner) coverSurface(step int, location model.SlabLocation, W, D float64) model.SlabPlacementResult {
	result := model.SlabPlacementResult{Step: step, Location: location}

	if piece, ok := p.takeSingleWaste(W, D); ok {
		p.coverFromSinglePiece(&result, piece, W, D)
		return result
	}
	if a, b, ok := p.takePairedWaste(W, D); ok {
		p.coverFromPairedPieces(&result, a, b, W, D)
		return result
	}

	p.coverFromNewSheets(&result, step, location, W, D)
	return result
}

// takeSingleWaste looks for one banked piece that spans the whole surface
// in either orientation.
func (p *SlabPlanner) takeSingleWaste(W, D float64) (model.WastePiece, bool) {
	return p.inventory.TakeMatching(func(piece model.WastePiece) bool {
		if piece.Width >= W && piece.Length >= D {
			return true
		}
		return piece.CanBeRotated && piece.Length >= W && piece.Width >= D
	})
}

// takePairedWaste looks for two banked pieces that can span the surface
// side by side, each deep enough on its own.
func (p *SlabPlanner) takePairedWaste(W, D float64) (model.WastePiece, model.WastePiece, bool) {
	fitsDepth := func(piece model.WastePiece) bool {
		return wasteSpan(piece, D) > 0
	}
	return p.inventory.TakePair(fitsDepth, func(a, b model.WastePiece) bool {
		return wasteSpan(a, D)+wasteSpan(b, D) >= W
	})
}

// wasteSpan returns the widest run a piece can contribute while still
// covering depth D, or 0 when it cannot cover the depth at all.
func wasteSpan(piece model.WastePiece, D float64) float64 {
	span := 0.0
	if piece.Length >= D {
		span = piece.Width
	}
	if piece.CanBeRotated && piece.Width >= D && piece.Length > span {
		span = piece.Length
	}
	return span
}

// coverFromSinglePiece lays one reused piece across the whole surface.
func (p *SlabPlanner) coverFromSinglePiece(result *model.SlabPlacementResult, piece model.WastePiece, W, D float64) {
	// Orient the piece so its width runs across the surface.
	usedW, usedL := piece.Width, piece.Length
	if !(usedW >= W && usedL >= D) {
		usedW, usedL = usedL, usedW
	}

	cut := usedW > W+dimensionTolerance || usedL > D+dimensionTolerance
	if cut {
		p.cuts++
		p.bankTrimRemainder(piece, usedW, usedL, W, D)
	}

	result.UnitsNeeded = 0
	result.WasteUsed = true
	result.WasteSource = piece.Source
	result.Cuts = boolToCut(cut)
	result.Pieces = []model.SlabPiece{{Width: W, Depth: D, Cut: cut, FromWaste: true}}
	result.Description = fmt.Sprintf("1 x %s from waste (%s)%s",
		formatDims(W, D), piece.Source, cutSuffix(cut))
}

// coverFromPairedPieces lays two reused pieces side by side.
func (p *SlabPlanner) coverFromPairedPieces(result *model.SlabPlacementResult, a, b model.WastePiece, W, D float64) {
	spanA := wasteSpan(a, D)
	if spanA > W {
		spanA = W
	}
	spanB := W - spanA

	cutA := wasteSpan(a, D) > spanA+dimensionTolerance || wasteDepth(a, D) > D+dimensionTolerance
	cutB := wasteSpan(b, D) > spanB+dimensionTolerance || wasteDepth(b, D) > D+dimensionTolerance
	if cutA {
		p.cuts++
		p.bankTrimRemainder(a, wasteSpan(a, D), wasteDepth(a, D), spanA, D)
	}
	if cutB {
		p.cuts++
		p.bankTrimRemainder(b, wasteSpan(b, D), wasteDepth(b, D), spanB, D)
	}

	source := a.Source + " + " + b.Source
	result.UnitsNeeded = 0
	result.WasteUsed = true
	result.WasteSource = source
	result.Cuts = boolToCut(cutA) + boolToCut(cutB)
	result.Pieces = []model.SlabPiece{
		{Width: spanA, Depth: D, Cut: cutA, FromWaste: true},
		{Width: spanB, Depth: D, Cut: cutB, FromWaste: true},
	}
	result.Description = fmt.Sprintf("1 x %s%s + 1 x %s%s from waste (%s)",
		formatDims(spanA, D), cutSuffix(cutA), formatDims(spanB, D), cutSuffix(cutB), source)
}

// wasteDepth returns the depth-direction size of the piece in the
// orientation chosen by wasteSpan.
func wasteDepth(piece model.WastePiece, D float64) float64 {
	if piece.Length >= D {
		if !(piece.CanBeRotated && piece.Width >= D && piece.Length > piece.Width) {
			return piece.Length
		}
	}
	return piece.Width
}

// bankTrimRemainder pushes the larger leftover strip of a trimmed reused
// piece back into the pool.
func (p *SlabPlanner) bankTrimRemainder(piece model.WastePiece, usedW, usedL, W, D float64) {
	widthStrip := model.NewWastePiece(usedW-W, usedL, "remaining from "+piece.Source)
	depthStrip := model.NewWastePiece(W, usedL-D, "remaining from "+piece.Source)
	switch {
	case widthStrip.Usable() && (!depthStrip.Usable() || widthStrip.Area() >= depthStrip.Area()):
		p.inventory.Put(widthStrip)
	case depthStrip.Usable():
		p.inventory.Put(depthStrip)
	}
}

// coverFromNewSheets counts the new stock sheets needed for the surface and
// applies the configured cutting policy to the uneven remainder.
func (p *SlabPlanner) coverFromNewSheets(result *model.SlabPlacementResult, step int, location model.SlabLocation, W, D float64) {
	slabW := p.Slab.SpanWidth(p.Placement)
	slabL := p.Slab.SpanLength(p.Placement)
	gap := p.GapMM / 10 // mm to cm

	sheets := int(math.Ceil(W / slabW))
	if sheets < 1 {
		sheets = 1
	}
	totalGaps := float64(sheets-1) * gap
	source := fmt.Sprintf("step %d %s", step+1, location)

	// The row divides evenly: full sheets only, nothing to cut.
	if W >= float64(sheets)*slabW+totalGaps {
		result.UnitsNeeded = sheets
		for i := 0; i < sheets; i++ {
			result.Pieces = append(result.Pieces, model.SlabPiece{Width: slabW, Depth: slabL})
		}
		result.Description = fmt.Sprintf("%d x %s", sheets, formatDims(slabW, slabL))
		return
	}

	policy := p.Policy
	if policy == model.TwoCuts && sheets < 2 {
		policy = model.OneCut
	}

	switch policy {
	case model.TwoCuts:
		full := sheets - 2
		remaining := W - float64(full)*slabW - totalGaps
		half := remaining / 2

		result.UnitsNeeded = full + 2
		result.Pieces = append(result.Pieces, model.SlabPiece{Width: half, Depth: D, Cut: true})
		for i := 0; i < full; i++ {
			result.Pieces = append(result.Pieces, model.SlabPiece{Width: slabW, Depth: slabL})
		}
		result.Pieces = append(result.Pieces, model.SlabPiece{Width: half, Depth: D, Cut: true})

		result.Cuts = 2
		p.cuts += 2
		for i := 0; i < 2; i++ {
			p.bankSheetOffcuts(slabW, slabL, half, D, source)
			if slabL > D+dimensionTolerance {
				result.Cuts++
				p.cuts++
			}
		}
		result.Description = fmt.Sprintf("%d x %s + 2 x %s (cut)",
			full, formatDims(slabW, slabL), formatDims(half, D))
		if full == 0 {
			result.Description = fmt.Sprintf("2 x %s (cut)", formatDims(half, D))
		}

	default: // OneCut
		full := sheets - 1
		remaining := W - float64(full)*slabW - totalGaps

		result.UnitsNeeded = full + 1
		for i := 0; i < full; i++ {
			result.Pieces = append(result.Pieces, model.SlabPiece{Width: slabW, Depth: slabL})
		}
		result.Pieces = append(result.Pieces, model.SlabPiece{Width: remaining, Depth: D, Cut: true})

		result.Cuts = 1
		p.cuts++
		if slabL > D+dimensionTolerance {
			result.Cuts++
			p.cuts++
		}
		p.bankSheetOffcuts(slabW, slabL, remaining, D, source)

		if full > 0 {
			result.Description = fmt.Sprintf("%d x %s + 1 x %s (cut)",
				full, formatDims(slabW, slabL), formatDims(remaining, D))
		} else {
			result.Description = fmt.Sprintf("1 x %s (cut)", formatDims(remaining, D))
		}
	}
}

// bankSheetOffcuts pushes the off-cuts of one trimmed sheet into the pool:
// the strip left by the width cut, and the strip left by shortening the
// sheet to the surface depth.
func (p *SlabPlanner) bankSheetOffcuts(slabW, slabL, usedW, D float64, source string) {
	if slabW-usedW >= model.MinWasteDimension {
		p.inventory.Put(model.NewWastePiece(slabW-usedW, slabL, source))
	}
	if slabL > D+dimensionTolerance && usedW >= model.MinWasteDimension {
		p.inventory.Put(model.NewWastePiece(usedW, slabL-D, source))
	}
}

// trimFrontOverhang narrows the outermost front pieces by the side overhang
// on each built flank. These cuts are caused by the overhang, not by the
// row running out of width, and are annotated as such.
func (p *SlabPlanner) trimFrontOverhang(result *model.SlabPlacementResult) {
	if p.Overhangs.Side <= 0 || len(result.Pieces) == 0 {
		return
	}
	overhangCuts := 0

	trim := func(i int) {
		piece := &result.Pieces[i]
		if piece.Width-p.Overhangs.Side <= 0 {
			return
		}
		piece.Width -= p.Overhangs.Side
		if !piece.Cut {
			piece.Cut = true
			result.Cuts++
			p.cuts++
			overhangCuts++
		}
	}

	if p.Sides.Left {
		trim(0)
	}
	if p.Sides.Right {
		trim(len(result.Pieces) - 1)
	}

	if overhangCuts > 0 && !strings.Contains(result.Description, "side overhang") {
		result.Description += fmt.Sprintf(" (%d cut for side overhang)", overhangCuts)
	}
}

func formatDims(w, d float64) string {
	return fmt.Sprintf("%.1fx%.1f cm", w, d)
}

func cutSuffix(cut bool) string {
	if cut {
		return " (cut)"
	}
	return ""
}

func boolToCut(cut bool) int {
	if cut {
		return 1
	}
	return 0
}
