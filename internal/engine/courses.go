package engine

import (
	"math"

	"github.com/piwi3910/StairMason/internal/model"
)

// courseCandidate is one viable material/stack-count pairing for a step.
type courseCandidate struct {
	material model.MaterialOption
	stacked  int
	mortar   float64
	score    float64 // distance from the ideal joint, lower is better
}

// SelectCourses picks, for every step, the masonry unit and stack height
// whose leftover mortar gap best approximates the ideal joint. Selection is
// local per step: it never trades one step's fit against another's.
//
// Ties between materials are broken by declaration order: a later material
// only displaces an earlier candidate when it is strictly better.
func SelectCourses(steps []model.StepDimension, materials []model.MaterialOption, orientation model.Orientation) ([]model.CourseAssignment, error) {
	if len(materials) == 0 {
		return nil, model.ErrNoMaterialSelected
	}

	assignments := make([]model.CourseAssignment, len(steps))
	for i, step := range steps {
		assignments[i] = selectCourseForStep(i, step.Height, materials, orientation)
	}
	return assignments, nil
}

// selectCourseForStep evaluates every material against one step height.
func selectCourseForStep(stepIndex int, stepHeight float64, materials []model.MaterialOption, orientation model.Orientation) model.CourseAssignment {
	var best *courseCandidate

search:
	for _, m := range materials {
		placedHeight := m.PlacedHeight(orientation)
		if placedHeight <= 0 {
			continue
		}

		// A single unit within a hair of the step height needs no
		// mortar bed at all.
		if math.Abs(stepHeight-placedHeight) < model.ExactFitTolerance {
			exact := courseCandidate{material: m, stacked: 1, mortar: 0}
			return assignmentFrom(stepIndex, exact, false, orientation)
		}

		// Walk stack counts from the tallest that still fits downward,
		// keeping every stack whose leftover lands in the mortar window.
		for stacked := int(math.Floor(stepHeight / placedHeight)); stacked >= 1; stacked-- {
			remaining := stepHeight - float64(stacked)*placedHeight
			if remaining < model.MortarMin || remaining > model.MortarMax {
				continue
			}
			candidate := courseCandidate{
				material: m,
				stacked:  stacked,
				mortar:   remaining,
				score:    math.Abs(remaining - model.MortarIdeal),
			}
			if best == nil || candidate.score < best.score {
				c := candidate
				best = &c
			}
			if candidate.score <= model.SnapTolerance {
				break search
			}
		}

		// Flat-laid bricks get a whole-course shortcut: a step height
		// near an integer multiple of the brick course is acceptable
		// even when the leftover falls outside the mortar window.
		if m.Kind == model.KindBrick && orientation == model.OrientationFlat {
			courses := math.Round(stepHeight / m.CourseHeight)
			if courses >= 1 {
				diff := math.Abs(stepHeight - courses*m.CourseHeight)
				if diff <= model.MortarMax {
					mortar := math.Max(0, stepHeight-courses*m.CourseHeight)
					candidate := courseCandidate{
						material: m,
						stacked:  int(courses),
						mortar:   mortar,
						score:    math.Abs(mortar - model.MortarIdeal),
					}
					if best == nil || candidate.score < best.score {
						c := candidate
						best = &c
					}
					if diff <= model.BrickCourseSnap {
						break search
					}
				}
			}
		}
	}

	if best != nil {
		return assignmentFrom(stepIndex, *best, false, orientation)
	}

	// Nothing landed in the mortar window for any material: overshoot
	// with the smallest possible excess and cut the top course down.
	return assignmentFrom(stepIndex, fallbackCandidate(stepHeight, materials, orientation), true, orientation)
}

// fallbackCandidate picks the material/stack pair that overshoots the step
// height by the least, for steps no stack fits cleanly.
func fallbackCandidate(stepHeight float64, materials []model.MaterialOption, orientation model.Orientation) courseCandidate {
	var best courseCandidate
	bestOver := math.Inf(1)
	for _, m := range materials {
		placedHeight := m.PlacedHeight(orientation)
		if placedHeight <= 0 {
			continue
		}
		stacked := int(math.Ceil(stepHeight / placedHeight))
		if stacked < 1 {
			stacked = 1
		}
		over := float64(stacked)*placedHeight - stepHeight
		if over < bestOver {
			bestOver = over
			best = courseCandidate{material: m, stacked: stacked, mortar: 0}
		}
	}
	return best
}

func assignmentFrom(stepIndex int, c courseCandidate, needsCutting bool, orientation model.Orientation) model.CourseAssignment {
	return model.CourseAssignment{
		Step:         stepIndex,
		MaterialID:   c.material.ID,
		MaterialName: c.material.Name,
		UnitsInStack: c.stacked,
		MortarHeight: c.mortar,
		NeedsCutting: needsCutting,
		Orientation:  orientation,
	}
}
