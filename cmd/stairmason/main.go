// StairMason - Stair Construction Estimator
//
// A cross-platform desktop application for planning masonry stairs:
// step geometry, course selection, unit quantities, and a finishing
// slab cutting plan with waste reuse.
//
// Build:
//   go build -o stairmason ./cmd/stairmason
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o stairmason.exe ./cmd/stairmason
//   GOOS=darwin  GOARCH=amd64 go build -o stairmason-darwin ./cmd/stairmason
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/StairMason/internal/ui"
)

func main() {
	application := app.NewWithID("com.piwi3910.stairmason")
	application.Settings().SetTheme(ui.NewStairMasonTheme())

	window := application.NewWindow("StairMason - Stair Construction Estimator")

	appUI := ui.NewApp(window)
	appUI.SetupMenus() // Setup the native menu bar
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1100, 750))
	window.CenterOnScreen()
	window.ShowAndRun()
}
