// NestCut - Rectangle Nesting Tool
//
// A cross-platform desktop application for nesting rectangular parts
// onto fixed-size stock sheets, with kerf-aware spacing and layout export.
//
// Build:
//   go build -o nestcut ./cmd/nestcut
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o nestcut.exe ./cmd/nestcut
//   GOOS=darwin  GOARCH=amd64 go build -o nestcut-darwin ./cmd/nestcut
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/NestCut/internal/ui"
)

func main() {
	application := app.NewWithID("com.piwi3910.nestcut")
	window := application.NewWindow("NestCut - Rectangle Nesting Tool")

	appUI := ui.NewApp(window)
	appUI.SetupMenus() // Setup the native menu bar
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1000, 700))
	window.CenterOnScreen()
	window.ShowAndRun()
}
