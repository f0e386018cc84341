// Package engine implements the stair estimation pipeline: step geometry
// planning, masonry course selection, unit quantity aggregation, and
// finishing-slab cutting with waste reuse.
package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/StairMason/internal/model"
)

// PlanSteps partitions the overall stair measurements into a whole number
// of uniform steps. The first step absorbs the rounding remainder, so its
// height may differ from the rest; that is expected, not an error.
func PlanSteps(in model.StairInputs) (*model.StepPlan, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	adjustedHeight := in.TotalHeight - in.Slab.Top
	stepCount := int(math.Round(adjustedHeight / in.StepHeight))
	if stepCount <= 0 {
		return nil, fmt.Errorf("height %.1f at step height %.1f: %w",
			adjustedHeight, in.StepHeight, model.ErrInvalidStepCount)
	}

	regularHeight := in.StepHeight
	firstHeight := adjustedHeight - regularHeight*float64(stepCount-1)

	adjustedTread := in.StepTread - in.Overhang.Front
	if adjustedTread <= 0 {
		return nil, fmt.Errorf("front overhang %.1f eats the whole tread: %w",
			in.Overhang.Front, model.ErrMissingMeasurement)
	}
	lastTread := adjustedTread - in.Slab.Front
	if lastTread <= 0 {
		return nil, fmt.Errorf("front slab %.1f leaves no tread on the last step: %w",
			in.Slab.Front, model.ErrMissingMeasurement)
	}

	stepWidth := in.TotalWidth
	sideAllowance := in.Overhang.Side + in.Slab.Side
	if in.Sides.Left {
		stepWidth -= sideAllowance
	}
	if in.Sides.Right {
		stepWidth -= sideAllowance
	}
	if stepWidth <= 0 {
		return nil, fmt.Errorf("width %.1f with side allowance %.1f: %w",
			in.TotalWidth, sideAllowance, model.ErrInvalidStepWidth)
	}

	steps := make([]model.StepDimension, stepCount)
	for i := range steps {
		height := regularHeight
		if i == 0 {
			height = firstHeight
		}
		steps[i] = model.StepDimension{
			Height:  height,
			Tread:   treadFor(in.Config, adjustedTread, in.Slab.Front, i == stepCount-1),
			IsFirst: i == 0,
		}
	}

	totalLength := adjustedTread*float64(stepCount-1) + lastTread

	return &model.StepPlan{
		Steps:             steps,
		StepCount:         stepCount,
		TotalLength:       totalLength,
		StepWidth:         stepWidth,
		TotalWidth:        in.TotalWidth,
		RegularStepHeight: regularHeight,
		FirstStepHeight:   firstHeight,
	}, nil
}

// treadFor resolves one step's tread depth. Both step configurations
// shorten only the last tread by the front slab thickness; keeping the
// config parameter here means an intended divergence between the two modes
// only ever touches this function.
func treadFor(_ model.StepConfig, adjustedTread, frontSlab float64, isLast bool) float64 {
	if isLast {
		return adjustedTread - frontSlab
	}
	return adjustedTread
}
