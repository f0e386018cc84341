package model

// Mortar joint tolerances for course selection, in cm. A stack whose
// leftover gap falls inside [MortarMin, MortarMax] is an acceptable fit;
// MortarIdeal is the joint the selector steers towards.
const (
	MortarMin   = 0.5
	MortarMax   = 3.0
	MortarIdeal = 1.0

	// ExactFitTolerance is the slack under which a single unit counts as
	// an exact match for the step height, needing no mortar bed at all.
	ExactFitTolerance = 0.1

	// SnapTolerance is how close to the ideal joint a candidate must be
	// for the selector to stop searching further materials.
	SnapTolerance = 0.3

	// BrickCourseSnap is the acceptance distance for the whole-course
	// shortcut available to flat-laid bricks.
	BrickCourseSnap = 1.5
)

// MortarKgPerUnit is the flat mortar allowance per laid unit.
const MortarKgPerUnit = 0.5

// CourseAssignment is the course selector's verdict for one step: which
// unit to use, how many to stack, and the mortar gap left over. When no
// stack lands inside the mortar window the step's top course has to be cut
// down and NeedsCutting is set.
type CourseAssignment struct {
	Step         int         `json:"step"`
	MaterialID   string      `json:"material_id"`
	MaterialName string      `json:"material_name"`
	UnitsInStack int         `json:"units_in_stack"`
	MortarHeight float64     `json:"mortar_height"`
	NeedsCutting bool        `json:"needs_cutting"`
	Orientation  Orientation `json:"orientation"`
}

// CourseDetail is the per-step breakdown retained for reporting.
type CourseDetail struct {
	Step       int    `json:"step"`
	Material   string `json:"material"`
	FrontUnits int    `json:"front_units"`
	SideUnits  int    `json:"side_units"`
	BackUnits  int    `json:"back_units"`
}

// MaterialCount is the aggregate number of units needed of one material.
type MaterialCount struct {
	MaterialID   string `json:"material_id"`
	MaterialName string `json:"material_name"`
	Units        int    `json:"units"`
}

// MaterialTotals aggregates unit counts across all steps plus the mortar
// estimate derived from them.
type MaterialTotals struct {
	Counts   []MaterialCount `json:"counts"`
	Details  []CourseDetail  `json:"details"`
	MortarKg float64         `json:"mortar_kg"`
}

// TotalUnits returns the unit count summed over all materials.
func (t MaterialTotals) TotalUnits() int {
	total := 0
	for _, c := range t.Counts {
		total += c.Units
	}
	return total
}

// Add accumulates units for a material, creating its entry on first use.
func (t *MaterialTotals) Add(id, name string, units int) {
	for i := range t.Counts {
		if t.Counts[i].MaterialID == id {
			t.Counts[i].Units += units
			return
		}
	}
	t.Counts = append(t.Counts, MaterialCount{MaterialID: id, MaterialName: name, Units: units})
}
