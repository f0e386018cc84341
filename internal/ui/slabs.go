package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/StairMason/internal/model"
	"github.com/piwi3910/StairMason/internal/project"
)

// ─── Slab Settings Panel ───────────────────────────────────

func (a *App) buildSlabsPanel() fyne.CanvasObject {
	s := &a.settings

	sizeSelect := widget.NewSelect(model.SlabSizeNames(), func(selected string) {
		s.SlabSize = selected
	})
	sizeSelect.SetSelected(s.SlabSize)

	placementSelect := widget.NewSelect([]string{"Long ways", "Side ways"}, func(selected string) {
		if selected == "Side ways" {
			s.Placement = model.PlacementSideWays
		} else {
			s.Placement = model.PlacementLongWays
		}
	})
	if s.Placement == model.PlacementSideWays {
		placementSelect.SetSelected("Side ways")
	} else {
		placementSelect.SetSelected("Long ways")
	}

	policySelect := widget.NewSelect([]string{"One cut", "Two cuts (symmetric)"}, func(selected string) {
		if selected == "Two cuts (symmetric)" {
			s.Policy = model.TwoCuts
		} else {
			s.Policy = model.OneCut
		}
	})
	if s.Policy == model.TwoCuts {
		policySelect.SetSelected("Two cuts (symmetric)")
	} else {
		policySelect.SetSelected("One cut")
	}

	gapEntry := floatEntry(&s.GapMM)
	gapEntry.SetText(fmt.Sprintf("%.1f", s.GapMM))

	slabSection := widget.NewCard("Finishing Slabs", "Stock size and how rows are cut to width",
		container.NewGridWithColumns(2,
			widget.NewLabel("Slab Size"), sizeSelect,
			widget.NewLabel("Placement"), placementSelect,
			widget.NewLabel("Cut Policy"), policySelect,
			widget.NewLabel("Joint Gap (mm)"), gapEntry,
		))

	orientationSelect := widget.NewSelect([]string{"On side", "Flat"}, func(selected string) {
		if selected == "Flat" {
			s.Orientation = model.OrientationFlat
		} else {
			s.Orientation = model.OrientationOnSide
		}
	})
	orientationSelect.SetSelected(s.Orientation.String())

	masonrySection := widget.NewCard("Masonry", "How brick-type units are laid",
		container.NewGridWithColumns(2,
			widget.NewLabel("Brick Orientation"), orientationSelect,
		))

	saveDefaultsBtn := widget.NewButton("Save as Defaults", func() {
		a.config.DefaultSlabSize = s.SlabSize
		a.config.DefaultPlacement = string(s.Placement)
		a.config.DefaultGapMM = s.GapMM
		a.config.DefaultCutPolicy = string(s.Policy)
		a.config.DefaultOrientation = int(s.Orientation)
		if err := a.saveConfig(); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save defaults: %w", err), a.window)
		} else {
			dialog.ShowInformation("Defaults Saved", "New estimates will start from these settings.", a.window)
		}
	})

	return container.NewVScroll(container.NewVBox(
		slabSection,
		masonrySection,
		saveDefaultsBtn,
	))
}

// ─── Preferences Dialog ────────────────────────────────────

// showPreferencesDialog displays the application preferences editor.
func (a *App) showPreferencesDialog() {
	cfg := a.config

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	sizeSelect := widget.NewSelect(model.SlabSizeNames(), func(selected string) {
		cfg.DefaultSlabSize = selected
	})
	sizeSelect.SetSelected(cfg.DefaultSlabSize)

	placementSelect := widget.NewSelect([]string{string(model.PlacementLongWays), string(model.PlacementSideWays)}, func(selected string) {
		cfg.DefaultPlacement = selected
	})
	placementSelect.SetSelected(cfg.DefaultPlacement)

	policySelect := widget.NewSelect([]string{string(model.OneCut), string(model.TwoCuts)}, func(selected string) {
		cfg.DefaultCutPolicy = selected
	})
	policySelect.SetSelected(cfg.DefaultCutPolicy)

	configSelect := widget.NewSelect([]string{string(model.FrontsOnTop), string(model.StepsToFronts)}, func(selected string) {
		cfg.DefaultStepConfig = selected
	})
	configSelect.SetSelected(cfg.DefaultStepConfig)

	gapEntry := floatEntry(&cfg.DefaultGapMM)
	gapEntry.SetText(fmt.Sprintf("%.1f", cfg.DefaultGapMM))

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Slab Size", sizeSelect),
		widget.NewFormItem("Default Placement", placementSelect),
		widget.NewFormItem("Default Cut Policy", policySelect),
		widget.NewFormItem("Default Joint Gap (mm)", gapEntry),
		widget.NewFormItem("Default Step Configuration", configSelect),
	}

	d := dialog.NewForm("Preferences", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			a.config = cfg
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save preferences: %w", err), a.window)
			} else {
				dialog.ShowInformation("Preferences Saved", "Application preferences have been saved.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 450))
	d.Show()
}

// ─── Import / Export Data Dialog ───────────────────────────

// showImportExportDialog displays the full-backup import/export dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			if err := project.ExportAllData(path, a.config, a.catalogue, a.prices); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("All application data exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("stairmason-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your current preferences, unit catalogue, and price list.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					path := reader.URI().Path()
					backup, err := project.ImportAllData(path)
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.config = backup.Config
					a.catalogue = backup.Materials
					a.prices = backup.Prices
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					a.saveCatalogue()
					a.refreshMaterialsList()
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export all application data (preferences, unit catalogue, price list)\nto a backup file, or import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}
