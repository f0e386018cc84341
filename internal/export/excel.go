package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/StairMason/internal/model"
)

// ExportExcel writes the bill of materials of an estimate to an XLSX
// workbook: a summary sheet, the per-step course table, and the slab
// cutting plan.
func ExportExcel(path string, est *model.Estimate) error {
	if est == nil || est.Plan == nil {
		return fmt.Errorf("no estimate to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	summary := f.GetSheetName(0)
	if err := f.SetSheetName(summary, "Summary"); err != nil {
		return err
	}
	if err := writeSummarySheet(f, "Summary", est); err != nil {
		return err
	}
	if err := writeCourseSheet(f, est); err != nil {
		return err
	}
	if err := writeSlabSheet(f, est.Slabs); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeSummarySheet(f *excelize.File, sheet string, est *model.Estimate) error {
	rows := [][]interface{}{
		{"Stair estimate"},
		{},
		{"Steps", est.Plan.StepCount},
		{"Regular step height (cm)", est.Plan.RegularStepHeight},
		{"First step height (cm)", est.Plan.FirstStepHeight},
		{"Step width (cm)", est.Plan.StepWidth},
		{"Total run length (cm)", est.Plan.TotalLength},
		{},
		{"Material", "Units"},
	}
	for _, c := range est.Totals.Counts {
		rows = append(rows, []interface{}{c.MaterialName, c.Units})
	}
	rows = append(rows,
		[]interface{}{"Mortar (kg)", est.Totals.MortarKg},
		[]interface{}{},
		[]interface{}{"Slab size", est.Settings.SlabSize},
		[]interface{}{"Tread slabs", est.Slabs.TotalStepSlabs},
		[]interface{}{"Front slabs", est.Slabs.TotalFrontSlabs},
		[]interface{}{"Cuts", est.Slabs.TotalCuts},
	)

	if len(est.Pricing) > 0 {
		rows = append(rows, []interface{}{}, []interface{}{"Material", "Units", "Price/unit", "Total"})
		for _, line := range est.Pricing {
			rows = append(rows, []interface{}{line.MaterialName, line.Units, line.PricePerUnit, line.Total})
		}
		rows = append(rows, []interface{}{"Total", "", "", est.PricedTotal()})
	}

	return writeRows(f, sheet, rows)
}

func writeCourseSheet(f *excelize.File, est *model.Estimate) error {
	const sheet = "Courses"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Step", "Height (cm)", "Material", "Units in stack", "Mortar (cm)", "Needs cutting"},
	}
	for i, c := range est.Courses {
		rows = append(rows, []interface{}{
			c.Step + 1,
			est.Plan.Steps[i].Height,
			c.MaterialName,
			c.UnitsInStack,
			c.MortarHeight,
			c.NeedsCutting,
		})
	}
	return writeRows(f, sheet, rows)
}

func writeSlabSheet(f *excelize.File, plan *model.SlabPlan) error {
	const sheet = "Slab plan"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Step", "Surface", "New sheets", "Cuts", "From waste", "Description"},
	}
	if plan != nil {
		for _, r := range plan.Results {
			rows = append(rows, []interface{}{
				r.Step + 1,
				string(r.Location),
				r.UnitsNeeded,
				r.Cuts,
				r.WasteUsed,
				r.Description,
			})
		}
		rows = append(rows, []interface{}{}, []interface{}{"Leftover waste", "Width (cm)", "Length (cm)", "Source"})
		for i, w := range plan.LeftoverWaste {
			rows = append(rows, []interface{}{i + 1, w.Width, w.Length, w.Source})
		}
	}
	return writeRows(f, sheet, rows)
}

// writeRows fills a sheet from the top-left corner, one slice per row.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}
