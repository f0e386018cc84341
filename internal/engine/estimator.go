package engine

import (
	"github.com/piwi3910/StairMason/internal/model"
)

// PriceLookup resolves the per-unit price of a material by name. It is an
// external collaborator used for display only; prices never influence any
// planning decision. The second result is false when no price is known.
type PriceLookup func(materialName string) (float64, bool)

// Estimator runs the full estimation pipeline: step geometry, course
// selection, unit quantities, and the slab cutting plan. Each call starts
// from an empty waste inventory; estimates share no state.
type Estimator struct {
	Settings model.EstimateSettings
	Prices   PriceLookup // optional
}

// NewEstimator returns an estimator with the given settings.
func NewEstimator(settings model.EstimateSettings) *Estimator {
	return &Estimator{Settings: settings}
}

// Estimate computes a complete stair estimate. It either fully succeeds or
// returns a validation error before producing any output.
func (e *Estimator) Estimate(inputs model.StairInputs, catalogue []model.MaterialOption) (*model.Estimate, error) {
	materials := e.selectedMaterials(catalogue)

	plan, err := PlanSteps(inputs)
	if err != nil {
		return nil, err
	}

	courses, err := SelectCourses(plan.Steps, materials, e.Settings.Orientation)
	if err != nil {
		return nil, err
	}

	totals := QuantifyUnits(plan, courses, materials, inputs.Sides)

	planner := NewSlabPlanner(e.Settings, inputs.Overhang, inputs.Sides)
	slabs := planner.Plan(plan)

	estimate := &model.Estimate{
		Inputs:   inputs,
		Settings: e.Settings,
		Plan:     plan,
		Courses:  courses,
		Totals:   totals,
		Slabs:    slabs,
	}
	if e.Prices != nil {
		estimate.Pricing = priceLines(totals, e.Prices)
	}
	return estimate, nil
}

// selectedMaterials filters the catalogue down to the configured IDs; an
// empty selection means the whole catalogue.
func (e *Estimator) selectedMaterials(catalogue []model.MaterialOption) []model.MaterialOption {
	if len(e.Settings.MaterialIDs) == 0 {
		return catalogue
	}
	var selected []model.MaterialOption
	for _, id := range e.Settings.MaterialIDs {
		if m := model.FindMaterialByID(catalogue, id); m != nil {
			selected = append(selected, *m)
		}
	}
	return selected
}

// priceLines attaches known prices to the aggregated counts.
func priceLines(totals *model.MaterialTotals, lookup PriceLookup) []model.PriceLine {
	var lines []model.PriceLine
	for _, c := range totals.Counts {
		price, ok := lookup(c.MaterialName)
		if !ok {
			continue
		}
		lines = append(lines, model.PriceLine{
			MaterialName: c.MaterialName,
			Units:        c.Units,
			PricePerUnit: price,
			Total:        price * float64(c.Units),
		})
	}
	return lines
}
