package ui

import (
	"fmt"
	"sort"
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

// ─── Price List Dialog ─────────────────────────────────────

// showPriceListDialog manages the per-unit price list. Prices are display
// only: they appear on reports but never influence the plan.
func (a *App) showPriceListDialog() {
	priceList := container.NewVBox()
	var refreshList func()

	refreshList = func() {
		priceList.RemoveAll()

		if len(a.prices) == 0 {
			priceList.Add(widget.NewLabel("No prices defined. Estimates simply omit the cost section."))
			return
		}

		header := container.NewGridWithColumns(4,
			widget.NewLabelWithStyle("Unit", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Price / Unit", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		)
		priceList.Add(header)
		priceList.Add(widget.NewSeparator())

		names := make([]string, 0, len(a.prices))
		for name := range a.prices {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			name := name // capture
			row := container.NewGridWithColumns(4,
				widget.NewLabel(name),
				widget.NewLabel(fmt.Sprintf("%.2f", a.prices[name])),
				widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
					a.showEditPriceDialog(name, refreshList)
				}),
				widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
					delete(a.prices, name)
					a.savePrices()
					refreshList()
				}),
			)
			priceList.Add(row)
		}
	}

	refreshList()

	addBtn := widget.NewButtonWithIcon("Add Price", theme.ContentAddIcon(), func() {
		a.showAddPriceDialog(refreshList)
	})

	toolbar := container.NewHBox(addBtn, layout.NewSpacer())

	content := container.NewBorder(
		toolbar,
		nil, nil, nil,
		container.NewVScroll(priceList),
	)

	d := dialog.NewCustom("Price List", "Close", content, a.window)
	d.Resize(fyne.NewSize(500, 450))
	d.Show()
}

func (a *App) showAddPriceDialog(onDone func()) {
	names := model.MaterialNames(a.catalogue)
	nameSelect := widget.NewSelect(names, nil)
	if len(names) > 0 {
		nameSelect.SetSelected(names[0])
	}

	priceEntry := widget.NewEntry()
	priceEntry.SetPlaceHolder("e.g. 2.10")

	form := dialog.NewForm("Add Price", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Unit", nameSelect),
			widget.NewFormItem("Price per Unit", priceEntry),
		},
		func(ok bool) {
			if !ok || nameSelect.Selected == "" {
				return
			}
			price, err := strconv.ParseFloat(priceEntry.Text, 64)
			if err != nil || price < 0 {
				dialog.ShowError(fmt.Errorf("price must be a non-negative number"), a.window)
				return
			}
			a.prices[nameSelect.Selected] = price
			a.savePrices()
			onDone()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 200))
	form.Show()
}

func (a *App) showEditPriceDialog(name string, onDone func()) {
	priceEntry := widget.NewEntry()
	priceEntry.SetText(fmt.Sprintf("%.2f", a.prices[name]))

	form := dialog.NewForm("Edit Price", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem(name, priceEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			price, err := strconv.ParseFloat(priceEntry.Text, 64)
			if err != nil || price < 0 {
				dialog.ShowError(fmt.Errorf("price must be a non-negative number"), a.window)
				return
			}
			a.prices[name] = price
			a.savePrices()
			onDone()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(350, 150))
	form.Show()
}

// savePrices persists the current price list to disk.
func (a *App) savePrices() {
	if err := project.SaveDefaultPrices(a.prices); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save prices: %w", err), a.window)
	}
}
