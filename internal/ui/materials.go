package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/StairMason/internal/model"
	"github.com/piwi3910/StairMason/internal/project"
)

// ─── Masonry Units Panel ───────────────────────────────────

func (a *App) buildMaterialsPanel() fyne.CanvasObject {
	a.materialsContainer = container.NewVBox()
	a.refreshMaterialsList()

	addBtn := widget.NewButtonWithIcon("Add Unit", theme.ContentAddIcon(), func() {
		a.showAddMaterialDialog()
	})

	importBtn := widget.NewButtonWithIcon("Import...", theme.FolderOpenIcon(), func() {
		a.importCatalogue()
	})

	exportBtn := widget.NewButtonWithIcon("Export...", theme.DocumentSaveIcon(), func() {
		a.exportCatalogue()
	})

	clearBtn := widget.NewButton("Clear Selection", func() {
		a.settings.MaterialIDs = nil
		a.refreshMaterialsList()
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Unit Catalogue", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			clearBtn, addBtn, importBtn, exportBtn,
		),
		widget.NewLabel("Checked units are offered to the course selector. No selection means every unit may be used."),
		nil, nil,
		container.NewVScroll(a.materialsContainer),
	)
}

// selectedIDSet returns the current selection as a lookup set.
func (a *App) selectedIDSet() map[string]bool {
	set := make(map[string]bool, len(a.settings.MaterialIDs))
	for _, id := range a.settings.MaterialIDs {
		set[id] = true
	}
	return set
}

// toggleMaterial adds or removes one unit from the selection.
func (a *App) toggleMaterial(id string, selected bool) {
	if selected {
		a.settings.MaterialIDs = append(a.settings.MaterialIDs, id)
		return
	}
	ids := a.settings.MaterialIDs[:0]
	for _, existing := range a.settings.MaterialIDs {
		if existing != id {
			ids = append(ids, existing)
		}
	}
	a.settings.MaterialIDs = ids
}

func (a *App) refreshMaterialsList() {
	if a.materialsContainer == nil {
		return
	}
	a.materialsContainer.RemoveAll()

	if len(a.catalogue) == 0 {
		a.materialsContainer.Add(widget.NewLabel("The catalogue is empty. Click 'Add Unit' or import a list."))
		return
	}

	header := container.NewGridWithColumns(8,
		widget.NewLabelWithStyle("Use", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Kind", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Height (cm)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Width (cm)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Length (cm)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.materialsContainer.Add(header)
	a.materialsContainer.Add(widget.NewSeparator())

	selected := a.selectedIDSet()
	for i := range a.catalogue {
		idx := i // capture
		m := a.catalogue[idx]

		check := widget.NewCheck("", func(b bool) {
			a.toggleMaterial(m.ID, b)
		})
		check.Checked = selected[m.ID]

		row := container.NewGridWithColumns(8,
			check,
			widget.NewLabel(m.Name),
			widget.NewLabel(string(m.Kind)),
			widget.NewLabel(fmt.Sprintf("%.1f", m.CourseHeight)),
			widget.NewLabel(fmt.Sprintf("%.1f", m.Width)),
			widget.NewLabel(fmt.Sprintf("%.1f", m.Length)),
			newIconButtonWithTooltip(theme.DocumentCreateIcon(), "Edit unit", func() {
				a.showEditMaterialDialog(idx)
			}),
			newIconButtonWithTooltip(theme.DeleteIcon(), "Remove unit from catalogue", func() {
				a.toggleMaterial(a.catalogue[idx].ID, false)
				a.catalogue = append(a.catalogue[:idx], a.catalogue[idx+1:]...)
				a.saveCatalogue()
				a.refreshMaterialsList()
			}),
		)
		a.materialsContainer.Add(row)
	}
}

func (a *App) showAddMaterialDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Unit name")
	nameEntry.SetText(fmt.Sprintf("Unit %d", len(a.catalogue)+1))

	kindSelect := widget.NewSelect([]string{"brick", "block"}, nil)
	kindSelect.SetSelected("block")

	heightEntry := widget.NewEntry()
	heightEntry.SetPlaceHolder("Unit height in cm")

	widthEntry := widget.NewEntry()
	widthEntry.SetPlaceHolder("Unit width in cm")

	lengthEntry := widget.NewEntry()
	lengthEntry.SetPlaceHolder("Unit length in cm")

	form := dialog.NewForm("Add Masonry Unit", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Kind", kindSelect),
			widget.NewFormItem("Height (cm)", heightEntry),
			widget.NewFormItem("Width (cm)", widthEntry),
			widget.NewFormItem("Length (cm)", lengthEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			h, _ := strconv.ParseFloat(heightEntry.Text, 64)
			w, _ := strconv.ParseFloat(widthEntry.Text, 64)
			l, _ := strconv.ParseFloat(lengthEntry.Text, 64)
			if h <= 0 || w <= 0 || l <= 0 {
				dialog.ShowError(fmt.Errorf("height, width, and length must be > 0"), a.window)
				return
			}

			kind := model.KindBlock
			if kindSelect.Selected == "brick" {
				kind = model.KindBrick
			}

			a.catalogue = append(a.catalogue, model.NewMaterialOption(nameEntry.Text, kind, h, w, l))
			a.saveCatalogue()
			a.refreshMaterialsList()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 350))
	form.Show()
}

func (a *App) showEditMaterialDialog(idx int) {
	m := a.catalogue[idx]

	nameEntry := widget.NewEntry()
	nameEntry.SetText(m.Name)

	kindSelect := widget.NewSelect([]string{"brick", "block"}, nil)
	kindSelect.SetSelected(string(m.Kind))

	heightEntry := widget.NewEntry()
	heightEntry.SetText(fmt.Sprintf("%.1f", m.CourseHeight))

	widthEntry := widget.NewEntry()
	widthEntry.SetText(fmt.Sprintf("%.1f", m.Width))

	lengthEntry := widget.NewEntry()
	lengthEntry.SetText(fmt.Sprintf("%.1f", m.Length))

	form := dialog.NewForm("Edit Masonry Unit", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Kind", kindSelect),
			widget.NewFormItem("Height (cm)", heightEntry),
			widget.NewFormItem("Width (cm)", widthEntry),
			widget.NewFormItem("Length (cm)", lengthEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			h, _ := strconv.ParseFloat(heightEntry.Text, 64)
			w, _ := strconv.ParseFloat(widthEntry.Text, 64)
			l, _ := strconv.ParseFloat(lengthEntry.Text, 64)
			if h <= 0 || w <= 0 || l <= 0 {
				dialog.ShowError(fmt.Errorf("height, width, and length must be > 0"), a.window)
				return
			}

			a.catalogue[idx].Name = nameEntry.Text
			if kindSelect.Selected == "brick" {
				a.catalogue[idx].Kind = model.KindBrick
			} else {
				a.catalogue[idx].Kind = model.KindBlock
			}
			a.catalogue[idx].CourseHeight = h
			a.catalogue[idx].Width = w
			a.catalogue[idx].Length = l
			a.saveCatalogue()
			a.refreshMaterialsList()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 350))
	form.Show()
}

// ─── Catalogue Import / Export ─────────────────────────────

func (a *App) importCatalogue() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		merged, err := project.ImportCatalogue(reader.URI().Path(), a.catalogue)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		a.catalogue = merged
		a.saveCatalogue()
		a.refreshMaterialsList()
		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Catalogue now contains %d units.", len(a.catalogue)),
			a.window)
	}, a.window)
}

func (a *App) exportCatalogue() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		if err := project.ExportCatalogue(writer.URI().Path(), a.catalogue); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Catalogue exported to %s", writer.URI().Path()),
				a.window)
		}
	}, a.window)
	d.SetFileName("materials.json")
	d.Show()
}
