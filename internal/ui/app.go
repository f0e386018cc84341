package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"github.com/piwi3910/StairMason/internal/engine"
	"github.com/piwi3910/StairMason/internal/export"
	unitimporter "github.com/piwi3910/StairMason/internal/importer"
	"github.com/piwi3910/StairMason/internal/model"
	"github.com/piwi3910/StairMason/internal/project"
)

// App holds all application state and UI references.
type App struct {
	window fyne.Window

	inputs    model.StairInputs
	settings  model.EstimateSettings
	catalogue []model.MaterialOption
	prices    project.PriceList
	config    model.AppConfig
	jobs      model.JobStore
	estimate  *model.Estimate
	history   *History

	tabs *container.AppTabs

	// UI references for dynamic updates
	materialsContainer *fyne.Container
	resultContainer    *fyne.Container
}

// NewApp creates the application state, loading the user's catalogue, price
// list, saved jobs, and preferences from disk. Missing files fall back to
// built-in defaults so a first run needs no setup.
func NewApp(window fyne.Window) *App {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		config = model.DefaultAppConfig()
	}

	catalogue, _, err := project.LoadOrCreateCatalogue()
	if err != nil {
		catalogue = model.DefaultMaterials()
	}

	prices, err := project.LoadDefaultPrices()
	if err != nil {
		prices = project.PriceList{}
	}

	jobs, err := project.LoadDefaultJobs()
	if err != nil {
		jobs = model.NewJobStore()
	}

	settings := model.DefaultEstimateSettings()
	config.ApplyToSettings(&settings)

	return &App{
		window:    window,
		inputs:    defaultInputs(config),
		settings:  settings,
		catalogue: catalogue,
		prices:    prices,
		config:    config,
		jobs:      jobs,
		history:   NewHistory(),
	}
}

// defaultInputs returns a blank set of measurements with the structural
// choices taken from the saved preferences.
func defaultInputs(config model.AppConfig) model.StairInputs {
	stepConfig := model.StepConfig(config.DefaultStepConfig)
	if stepConfig != model.StepsToFronts {
		stepConfig = model.FrontsOnTop
	}
	return model.StairInputs{
		Sides:  model.SideConfig{Left: true, Right: true},
		Config: stepConfig,
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Estimate", func() {
			a.history.Push(MakeSnapshot(a.inputs, a.settings, "New Estimate"))
			a.inputs = defaultInputs(a.config)
			settings := model.DefaultEstimateSettings()
			a.config.ApplyToSettings(&settings)
			a.settings = settings
			a.estimate = nil
			a.rebuildInputTabs()
			a.refreshResults()
		}),
		fyne.NewMenuItem("Open Job...", func() {
			a.showOpenJobDialog()
		}),
		fyne.NewMenuItem("Save Job...", func() {
			a.showSaveJobDialog()
		}),
		fyne.NewMenuItem("Open Job File (TOML)...", func() {
			a.openJobFile()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Units from CSV...", func() {
			a.importUnitsCSV()
		}),
		fyne.NewMenuItem("Import Units from Excel...", func() {
			a.importUnitsExcel()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF Report...", func() {
			a.exportReport("report.pdf", func(path string) error { return export.ExportPDF(path, a.estimate) })
		}),
		fyne.NewMenuItem("Export Excel Workbook...", func() {
			a.exportReport("estimate.xlsx", func(path string) error { return export.ExportExcel(path, a.estimate) })
		}),
		fyne.NewMenuItem("Export DXF Cut Diagram...", func() {
			a.exportReport("cut-plan.dxf", func(path string) error { return export.ExportDXF(path, a.estimate.Slabs) })
		}),
		fyne.NewMenuItem("Export Cut Labels...", func() {
			a.exportReport("labels.pdf", func(path string) error { return export.ExportLabels(path, a.estimate.Slabs) })
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() {
			a.undo()
		}),
		fyne.NewMenuItem("Redo", func() {
			a.redo()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset Measurements", func() {
			a.history.Push(MakeSnapshot(a.inputs, a.settings, "Reset Measurements"))
			a.inputs = defaultInputs(a.config)
			a.rebuildInputTabs()
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Run Estimate", func() {
			a.runEstimate()
		}),
		fyne.NewMenuItem("Compare Alternatives...", func() {
			a.showCompareDialog()
		}),
	)

	adminMenu := fyne.NewMenu("Admin",
		fyne.NewMenuItem("Price List...", func() {
			a.showPriceListDialog()
		}),
		fyne.NewMenuItem("Preferences...", func() {
			a.showPreferencesDialog()
		}),
		fyne.NewMenuItem("Import / Export Data...", func() {
			a.showImportExportDialog()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	mainMenu := fyne.NewMainMenu(
		fileMenu,
		editMenu,
		toolsMenu,
		adminMenu,
		helpMenu,
	)
	a.window.SetMainMenu(mainMenu)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About StairMason",
		"StairMason - Stair Construction Estimator\n\n"+
			"A cross-platform desktop application for planning masonry\n"+
			"stairs: step geometry, course selection, unit quantities,\n"+
			"and a finishing slab cutting plan with waste reuse.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	measurementsTab := container.NewTabItem("Measurements", a.buildMeasurementsPanel())
	materialsTab := container.NewTabItem("Masonry Units", a.buildMaterialsPanel())
	slabsTab := container.NewTabItem("Slabs", a.buildSlabsPanel())
	resultsTab := container.NewTabItem("Results", a.buildResultsPanel())

	a.tabs = container.NewAppTabs(measurementsTab, materialsTab, slabsTab, resultsTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	return a.tabs
}

// rebuildInputTabs recreates the panels whose entries are bound to the
// current inputs and settings, after those were replaced wholesale.
func (a *App) rebuildInputTabs() {
	if a.tabs == nil {
		return
	}
	a.tabs.Items[0].Content = a.buildMeasurementsPanel()
	a.tabs.Items[2].Content = a.buildSlabsPanel()
	a.tabs.Refresh()
	a.refreshMaterialsList()
}

// ─── Actions ───────────────────────────────────────────────

func (a *App) runEstimate() {
	estimator := engine.NewEstimator(a.settings)
	if len(a.prices) > 0 {
		estimator.Prices = a.prices.Lookup
	}

	est, err := estimator.Estimate(a.inputs, a.catalogue)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.estimate = est
	a.refreshResults()
	a.tabs.SelectIndex(3)
}

func (a *App) undo() {
	snap, ok := a.history.Undo(MakeSnapshot(a.inputs, a.settings, ""))
	if !ok {
		return
	}
	a.inputs = snap.Inputs
	a.settings = snap.Settings
	a.rebuildInputTabs()
}

func (a *App) redo() {
	snap, ok := a.history.Redo(MakeSnapshot(a.inputs, a.settings, ""))
	if !ok {
		return
	}
	a.inputs = snap.Inputs
	a.settings = snap.Settings
	a.rebuildInputTabs()
}

// exportReport asks for a destination and writes one report file.
func (a *App) exportReport(defaultName string, write func(path string) error) {
	if a.estimate == nil {
		dialog.ShowInformation("No results", "Run an estimate first before exporting.", a.window)
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := write(path); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Saved to %s", path), a.window)
		}
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}

// ─── Import Functions ───────────────────────────────────────

func (a *App) importUnitsCSV() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := unitimporter.ImportCSV(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) importUnitsExcel() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := unitimporter.ImportExcel(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) handleImportResult(result unitimporter.ImportResult) {
	// Show errors if any
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	// Show warnings if any
	if len(result.Warnings) > 0 {
		// Just log warnings, don't block
		fmt.Printf("Import warnings: %v\n", result.Warnings)
	}

	// Add imported units to the catalogue
	if len(result.Materials) > 0 {
		a.catalogue = append(a.catalogue, result.Materials...)
		a.saveCatalogue()
		a.refreshMaterialsList()

		msg := fmt.Sprintf("Successfully imported %d units.", len(result.Materials))
		if len(result.Errors) > 0 {
			msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
		}
		dialog.ShowInformation("Import Complete", msg, a.window)
	}
}

// saveCatalogue persists the current unit catalogue to disk.
func (a *App) saveCatalogue() {
	path, err := project.DefaultCataloguePath()
	if err != nil {
		return
	}
	if err := project.SaveCatalogue(path, a.catalogue); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save catalogue: %w", err), a.window)
	}
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}
