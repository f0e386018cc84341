package engine

import (
	"math"

	"github.com/piwi3910/StairMason/internal/model"
)

const (
	// jointLength is the horizontal mortar joint added to every unit's
	// laid length, in cm.
	jointLength = 1.0

	// sideBlockAllowance is the width claimed by the side masonry at each
	// built flank, subtracted from the front rows, in cm.
	sideBlockAllowance = 20.0
)

// QuantifyUnits converts the per-step course assignments into masonry unit
// counts for the front, side and back faces of every step, aggregated per
// material, plus a flat mortar estimate.
func QuantifyUnits(plan *model.StepPlan, courses []model.CourseAssignment, materials []model.MaterialOption, sides model.SideConfig) *model.MaterialTotals {
	totals := &model.MaterialTotals{}

	treadBefore := 0.0
	for i, course := range courses {
		material := model.FindMaterialByID(materials, course.MaterialID)
		if material == nil {
			continue
		}
		effectiveLength := material.Length + jointLength

		// Front face: every step's front is carried up through all the
		// steps above it, so lower steps need proportionally more rows.
		frontWidth := plan.TotalWidth - sideBlockAllowance*float64(sides.BuiltSides())
		if frontWidth < 0 {
			frontWidth = 0
		}
		blocksPerRow := int(math.Ceil(frontWidth / effectiveLength))
		rows := plan.StepCount - i
		frontUnits := blocksPerRow * rows * course.UnitsInStack

		// Side faces: each built side runs from this step's front to the
		// end of the stair.
		sideUnits := 0
		if sides.Left || sides.Right {
			remainingLength := plan.TotalLength - treadBefore
			blocksPerSide := int(math.Ceil(remainingLength / effectiveLength))
			if blocksPerSide < 1 {
				blocksPerSide = 1
			}
			perSide := course.UnitsInStack * blocksPerSide
			if sides.Left {
				sideUnits += perSide
			}
			if sides.Right {
				sideUnits += perSide
			}
		}

		// Back face: one closing row behind every step but the first,
		// narrowed by whatever the side units already occupy.
		backUnits := 0
		if i > 0 && sides.Back {
			backWidth := plan.TotalWidth - material.Width*float64(sides.BuiltSides())
			if backWidth > 0 {
				backUnits = int(math.Ceil(backWidth / effectiveLength))
			}
		}

		stepUnits := frontUnits + sideUnits + backUnits
		totals.Add(material.ID, material.Name, stepUnits)
		totals.Details = append(totals.Details, model.CourseDetail{
			Step:       i,
			Material:   material.Name,
			FrontUnits: frontUnits,
			SideUnits:  sideUnits,
			BackUnits:  backUnits,
		})

		if i < len(plan.Steps) {
			treadBefore += plan.Steps[i].Tread
		}
	}

	totals.MortarKg = float64(totals.TotalUnits()) * model.MortarKgPerUnit
	return totals
}
