package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/StairMason/internal/model"
	"github.com/piwi3910/StairMason/internal/project"
)

// ─── Saved Jobs ────────────────────────────────────────────

// showSaveJobDialog stores the current measurements and settings under a
// name for later reuse. Results are never saved; re-running a job always
// goes through the full pipeline.
func (a *App) showSaveJobDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("e.g. Garden stair")

	descEntry := widget.NewEntry()
	descEntry.SetPlaceHolder("Optional description")

	form := dialog.NewForm("Save Job", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Description", descEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			if nameEntry.Text == "" {
				dialog.ShowError(fmt.Errorf("job name must not be empty"), a.window)
				return
			}
			job := model.NewSavedJob(nameEntry.Text, descEntry.Text, a.inputs, copySettings(a.settings))
			a.jobs.Add(job)
			if err := project.SaveDefaultJobs(a.jobs); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save job: %w", err), a.window)
				return
			}
			dialog.ShowInformation("Job Saved",
				fmt.Sprintf("Saved %q. Open it later via File > Open Job.", job.Name), a.window)
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 200))
	form.Show()
}

// showOpenJobDialog lets the user pick a saved job and restores its inputs
// and settings.
func (a *App) showOpenJobDialog() {
	if len(a.jobs.Jobs) == 0 {
		dialog.ShowInformation("No Saved Jobs",
			"No jobs saved yet. Use File > Save Job to keep the current setup.", a.window)
		return
	}

	names := a.jobs.Names()
	jobSelect := widget.NewSelect(names, nil)
	jobSelect.SetSelected(names[0])

	form := dialog.NewForm("Open Job", "Open", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Job", jobSelect),
		},
		func(ok bool) {
			if !ok {
				return
			}
			job := a.jobs.FindByName(jobSelect.Selected)
			if job == nil {
				return
			}
			a.history.Push(MakeSnapshot(a.inputs, a.settings, "Open Job"))
			a.inputs = job.Inputs
			a.settings = copySettings(job.Settings)
			a.estimate = nil
			a.rebuildInputTabs()
			a.refreshResults()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 150))
	form.Show()
}

// openJobFile loads measurements and settings from a TOML job file, the
// same format the command-line tool consumes.
func (a *App) openJobFile() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		job, err := project.LoadJobFile(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		settings, err := job.Settings(a.settings, a.catalogue)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		a.history.Push(MakeSnapshot(a.inputs, a.settings, "Open Job File"))
		a.inputs = job.Inputs()
		a.settings = settings
		if len(job.Prices) > 0 {
			a.prices = job.Prices
		}
		a.estimate = nil
		a.rebuildInputTabs()
		a.refreshResults()
	}, a.window)
	d.Show()
}
