package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/StairMason/internal/model"
)

// floatEntry creates an entry bound to a float64 field. Text that does not
// parse leaves the bound value unchanged.
func floatEntry(val *float64) *widget.Entry {
	e := widget.NewEntry()
	if *val != 0 {
		e.SetText(fmt.Sprintf("%.1f", *val))
	}
	e.OnChanged = func(text string) {
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			*val = v
		}
	}
	return e
}

// ─── Measurements Panel ────────────────────────────────────

func (a *App) buildMeasurementsPanel() fyne.CanvasObject {
	in := &a.inputs

	heightEntry := floatEntry(&in.TotalHeight)
	heightEntry.SetPlaceHolder("Overall rise in cm")
	widthEntry := floatEntry(&in.TotalWidth)
	widthEntry.SetPlaceHolder("Overall width in cm")
	stepHeightEntry := floatEntry(&in.StepHeight)
	stepHeightEntry.SetPlaceHolder("Desired step height in cm")
	treadEntry := floatEntry(&in.StepTread)
	treadEntry.SetPlaceHolder("Desired tread depth in cm")

	stairSection := widget.NewCard("Stair", "Overall measurements in cm",
		container.NewGridWithColumns(2,
			widget.NewLabel("Total Height (cm)"), heightEntry,
			widget.NewLabel("Total Width (cm)"), widthEntry,
			widget.NewLabel("Step Height (cm)"), stepHeightEntry,
			widget.NewLabel("Step Tread (cm)"), treadEntry,
		))

	slabSection := widget.NewCard("Finishing Slab Thickness", "Set to 0 for faces without slabs",
		container.NewGridWithColumns(2,
			widget.NewLabel("Top (cm)"), floatEntry(&in.Slab.Top),
			widget.NewLabel("Side (cm)"), floatEntry(&in.Slab.Side),
			widget.NewLabel("Front (cm)"), floatEntry(&in.Slab.Front),
		))

	overhangSection := widget.NewCard("Overhangs", "How far the tread slabs protrude past the core",
		container.NewGridWithColumns(2,
			widget.NewLabel("Front (cm)"), floatEntry(&in.Overhang.Front),
			widget.NewLabel("Side (cm)"), floatEntry(&in.Overhang.Side),
		))

	leftCheck := widget.NewCheck("Left side built up", func(b bool) { in.Sides.Left = b })
	leftCheck.Checked = in.Sides.Left
	rightCheck := widget.NewCheck("Right side built up", func(b bool) { in.Sides.Right = b })
	rightCheck.Checked = in.Sides.Right
	backCheck := widget.NewCheck("Back built up", func(b bool) { in.Sides.Back = b })
	backCheck.Checked = in.Sides.Back

	sidesSection := widget.NewCard("Sides", "Uncheck faces that abut an existing wall",
		container.NewVBox(leftCheck, rightCheck, backCheck))

	configSelect := widget.NewSelect([]string{"Fronts on top", "Steps to fronts"}, func(selected string) {
		if selected == "Steps to fronts" {
			in.Config = model.StepsToFronts
		} else {
			in.Config = model.FrontsOnTop
		}
	})
	if in.Config == model.StepsToFronts {
		configSelect.SetSelected("Steps to fronts")
	} else {
		configSelect.SetSelected("Fronts on top")
	}

	assemblySection := widget.NewCard("Assembly", "",
		container.NewGridWithColumns(2,
			widget.NewLabel("Step Configuration"), configSelect,
		))

	estimateBtn := widget.NewButton("Run Estimate", func() {
		a.runEstimate()
	})
	estimateBtn.Importance = widget.HighImportance

	return container.NewVScroll(container.NewVBox(
		stairSection,
		slabSection,
		overhangSection,
		sidesSection,
		assemblySection,
		estimateBtn,
	))
}
