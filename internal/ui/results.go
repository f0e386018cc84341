package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/StairMason/internal/engine"
	"github.com/piwi3910/StairMason/internal/ui/widgets"
)

// ─── Results Panel ─────────────────────────────────────────

func (a *App) buildResultsPanel() fyne.CanvasObject {
	a.resultContainer = container.NewStack(
		widget.NewLabel("No results yet. Enter the measurements, then run the estimate."),
	)
	return a.resultContainer
}

func (a *App) refreshResults() {
	if a.resultContainer == nil {
		return
	}
	a.resultContainer.RemoveAll()
	a.resultContainer.Add(a.renderEstimate())
	a.resultContainer.Refresh()
}

// renderEstimate builds the full results view for the current estimate.
func (a *App) renderEstimate() fyne.CanvasObject {
	est := a.estimate
	if est == nil {
		return widget.NewLabel("No results yet. Enter the measurements, then run the estimate.")
	}

	planSection := widget.NewCard("Step Plan", "",
		container.NewVBox(
			container.NewGridWithColumns(2,
				widget.NewLabel("Steps"), widget.NewLabel(fmt.Sprintf("%d", est.Plan.StepCount)),
				widget.NewLabel("Regular step height"), widget.NewLabel(fmt.Sprintf("%.2f cm", est.Plan.RegularStepHeight)),
				widget.NewLabel("First step height"), widget.NewLabel(fmt.Sprintf("%.2f cm", est.Plan.FirstStepHeight)),
				widget.NewLabel("Step width (core)"), widget.NewLabel(fmt.Sprintf("%.1f cm", est.Plan.StepWidth)),
				widget.NewLabel("Total run length"), widget.NewLabel(fmt.Sprintf("%.1f cm", est.Plan.TotalLength)),
			),
			widgets.NewProfileCanvas(est.Plan, 600, 260),
		))

	courseRows := container.NewVBox()
	courseHeader := container.NewGridWithColumns(5,
		widget.NewLabelWithStyle("Step", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Material", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Stack", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Mortar", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	courseRows.Add(courseHeader)
	courseRows.Add(widget.NewSeparator())
	for _, c := range est.Courses {
		note := widget.NewLabel("")
		if c.NeedsCutting {
			note = widget.NewLabel("top course cut")
			note.Importance = widget.WarningImportance
		}
		courseRows.Add(container.NewGridWithColumns(5,
			widget.NewLabel(fmt.Sprintf("%d", c.Step+1)),
			widget.NewLabel(c.MaterialName),
			widget.NewLabel(fmt.Sprintf("%d", c.UnitsInStack)),
			widget.NewLabel(fmt.Sprintf("%.2f cm", c.MortarHeight)),
			note,
		))
	}
	coursesSection := widget.NewCard("Courses", "", courseRows)

	totalsRows := container.NewVBox()
	for _, c := range est.Totals.Counts {
		totalsRows.Add(container.NewGridWithColumns(2,
			widget.NewLabel(c.MaterialName),
			widget.NewLabel(fmt.Sprintf("%d units", c.Units)),
		))
	}
	totalsRows.Add(container.NewGridWithColumns(2,
		widget.NewLabel("Mortar"),
		widget.NewLabel(fmt.Sprintf("%.1f kg", est.Totals.MortarKg)),
	))
	totalsSection := widget.NewCard("Masonry Units", "", totalsRows)

	slabsSection := widget.NewCard("Finishing Slabs",
		fmt.Sprintf("%s, %d tread + %d front slabs, %d cuts",
			est.Settings.SlabSize, est.Slabs.TotalStepSlabs, est.Slabs.TotalFrontSlabs, est.Slabs.TotalCuts),
		widgets.RenderSlabResults(est.Slabs))

	sections := []fyne.CanvasObject{
		planSection,
		coursesSection,
		totalsSection,
		slabsSection,
	}

	if len(est.Pricing) > 0 {
		priceRows := container.NewVBox()
		for _, line := range est.Pricing {
			priceRows.Add(container.NewGridWithColumns(2,
				widget.NewLabel(line.MaterialName),
				widget.NewLabel(fmt.Sprintf("%d x %.2f = %.2f", line.Units, line.PricePerUnit, line.Total)),
			))
		}
		priceRows.Add(container.NewGridWithColumns(2,
			widget.NewLabelWithStyle("Total", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle(fmt.Sprintf("%.2f", est.PricedTotal()), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		))
		sections = append(sections, widget.NewCard("Cost (informational)", "Prices never influence the plan", priceRows))
	}

	return container.NewVScroll(container.NewVBox(sections...))
}

// ─── Scenario Comparison ───────────────────────────────────

// showCompareDialog reruns the slab plan under alternative slab sizes and
// cut policies and shows the outcomes side by side.
func (a *App) showCompareDialog() {
	if a.estimate == nil {
		dialog.ShowInformation("No results", "Run an estimate first before comparing alternatives.", a.window)
		return
	}
	est := a.estimate

	scenarios := engine.BuildDefaultScenarios(est.Settings)
	results := engine.CompareScenarios(scenarios, est.Plan, est.Inputs.Overhang, est.Inputs.Sides)

	rows := container.NewVBox()
	rows.Add(container.NewGridWithColumns(4,
		widget.NewLabelWithStyle("Scenario", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Slabs", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Cuts", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Leftover Waste", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	))
	rows.Add(widget.NewSeparator())
	for _, r := range results {
		rows.Add(container.NewGridWithColumns(4,
			widget.NewLabel(r.Scenario.Name),
			widget.NewLabel(fmt.Sprintf("%d", r.Plan.TotalSlabs())),
			widget.NewLabel(fmt.Sprintf("%d", r.Plan.TotalCuts)),
			widget.NewLabel(fmt.Sprintf("%d pieces", len(r.Plan.LeftoverWaste))),
		))
	}

	d := dialog.NewCustom("Compare Alternatives", "Close", container.NewVScroll(rows), a.window)
	d.Resize(fyne.NewSize(550, 400))
	d.Show()
}
