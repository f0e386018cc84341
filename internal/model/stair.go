package model

import "fmt"

// StepConfig selects how step fronts relate to treads when the stair is
// assembled. Both modes currently shorten the last tread by the front slab
// thickness; the mode is kept as an explicit input so the two assembly
// styles can diverge in one place if they ever need to.
type StepConfig string

const (
	FrontsOnTop   StepConfig = "frontsOnTop"   // treads rest on top of the front slabs
	StepsToFronts StepConfig = "stepsToFronts" // treads butt against the front slabs
)

// SideConfig describes which faces of the stair are built up in masonry.
// An unbuilt side abuts an existing wall and needs no units or allowances.
type SideConfig struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
	Back  bool `json:"back"`
}

// BuiltSides returns how many of the left/right sides are built (0..2).
func (s SideConfig) BuiltSides() int {
	n := 0
	if s.Left {
		n++
	}
	if s.Right {
		n++
	}
	return n
}

// Overhangs holds how far the finishing slabs protrude past the masonry
// core, in cm.
type Overhangs struct {
	Front float64 `json:"front"`
	Side  float64 `json:"side"`
}

// SlabThickness holds the finishing slab thickness per face, in cm.
type SlabThickness struct {
	Top   float64 `json:"top"`
	Side  float64 `json:"side"`
	Front float64 `json:"front"`
}

// StairInputs are the overall measurements of one staircase. All lengths
// are in centimeters.
type StairInputs struct {
	TotalHeight float64       `json:"total_height"`
	TotalWidth  float64       `json:"total_width"`
	StepTread   float64       `json:"step_tread"`
	StepHeight  float64       `json:"step_height"`
	Slab        SlabThickness `json:"slab_thickness"`
	Overhang    Overhangs     `json:"overhang"`
	Sides       SideConfig    `json:"sides"`
	Config      StepConfig    `json:"step_config"`
}

// Validate checks that every measurement used as a divisor or subtrahend is
// present and positive. It runs before any computation so a failed run
// never produces partial output.
func (in StairInputs) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"total height", in.TotalHeight},
		{"total width", in.TotalWidth},
		{"step tread", in.StepTread},
		{"step height", in.StepHeight},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("%s: %w", c.name, ErrMissingMeasurement)
		}
	}
	if in.Slab.Top < 0 || in.Slab.Side < 0 || in.Slab.Front < 0 {
		return fmt.Errorf("slab thickness: %w", ErrMissingMeasurement)
	}
	if in.Overhang.Front < 0 || in.Overhang.Side < 0 {
		return fmt.Errorf("overhang: %w", ErrMissingMeasurement)
	}
	return nil
}

// StepDimension is the resolved geometry of a single step. Instances are
// produced once by the geometry planner and never mutated afterwards.
type StepDimension struct {
	Height  float64 `json:"height"`
	Tread   float64 `json:"tread"`
	IsFirst bool    `json:"is_first"`
}

// StepPlan is the geometry planner's full output: the ordered steps plus
// the derived overall figures every later stage needs.
type StepPlan struct {
	Steps             []StepDimension `json:"steps"`
	StepCount         int             `json:"step_count"`
	TotalLength       float64         `json:"total_length"`
	StepWidth         float64         `json:"step_width"`   // width left for the masonry core
	TotalWidth        float64         `json:"total_width"`  // original overall width
	RegularStepHeight float64         `json:"regular_step_height"`
	FirstStepHeight   float64         `json:"first_step_height"`
}
