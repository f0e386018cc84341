package model

// EstimateSettings bundles the choices that accompany the raw stair
// measurements: which units may be used, how bricks are laid, and how the
// finishing slabs are stocked and cut.
type EstimateSettings struct {
	MaterialIDs []string      `json:"material_ids"` // empty = whole catalogue
	Orientation Orientation   `json:"orientation"`
	SlabSize    string        `json:"slab_size"` // catalogue name
	Placement   SlabPlacement `json:"placement"`
	GapMM       float64       `json:"gap_mm"`
	Policy      CutPolicy     `json:"cut_policy"`
}

// DefaultEstimateSettings returns settings matching the most common job:
// any catalogue unit, bricks on their side, 40x40 slabs laid long-ways with
// a 3 mm joint and a single end cut per row.
func DefaultEstimateSettings() EstimateSettings {
	return EstimateSettings{
		Orientation: OrientationOnSide,
		SlabSize:    "40 x 40",
		Placement:   PlacementLongWays,
		GapMM:       3,
		Policy:      OneCut,
	}
}

// PriceLine is a display-only cost line for one material. Prices come from
// an external lookup after the quantities are fixed; they never influence
// the plan itself.
type PriceLine struct {
	MaterialName string  `json:"material_name"`
	Units        int     `json:"units"`
	PricePerUnit float64 `json:"price_per_unit"`
	Total        float64 `json:"total"`
}

// Estimate is the combined output of one full estimation run.
type Estimate struct {
	Inputs   StairInputs        `json:"inputs"`
	Settings EstimateSettings   `json:"settings"`
	Plan     *StepPlan          `json:"plan"`
	Courses  []CourseAssignment `json:"courses"`
	Totals   *MaterialTotals    `json:"totals"`
	Slabs    *SlabPlan          `json:"slabs"`
	Pricing  []PriceLine        `json:"pricing,omitempty"`
}

// PricedTotal sums the priced lines. Materials without a known price
// contribute nothing.
func (e Estimate) PricedTotal() float64 {
	var total float64
	for _, l := range e.Pricing {
		total += l.Total
	}
	return total
}
