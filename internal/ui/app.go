package ui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/NestCut/internal/engine"
	"github.com/piwi3910/NestCut/internal/export"
	partimporter "github.com/piwi3910/NestCut/internal/importer"
	"github.com/piwi3910/NestCut/internal/model"
	"github.com/piwi3910/NestCut/internal/project"
	"github.com/piwi3910/NestCut/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	window    fyne.Window
	layout    model.Layout
	appConfig model.AppConfig
	tabs      *container.AppTabs

	// UI references for dynamic updates
	partsContainer  *fyne.Container
	resultContainer *fyne.Container
}

func NewApp(window fyne.Window) *App {
	l := model.NewLayout()
	appCfg := model.DefaultAppConfig()
	if cfg, err := project.LoadAppConfig(project.DefaultConfigPath()); err == nil {
		appCfg = cfg
	}
	appCfg.ApplyToConfig(&l.Config)
	return &App{
		window:    window,
		layout:    l,
		appConfig: appCfg,
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	// File Menu
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Layout", func() {
			a.layout = model.NewLayout()
			a.refreshPartsList()
			a.refreshResults()
		}),
		fyne.NewMenuItem("Open Layout...", func() {
			a.loadLayout()
		}),
		a.recentLayoutsMenuItem(),
		fyne.NewMenuItem("Save Layout...", func() {
			a.saveLayout()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Parts from CSV...", func() {
			a.importCSV()
		}),
		fyne.NewMenuItem("Import Parts from Excel...", func() {
			a.importExcel()
		}),
		fyne.NewMenuItem("Import Parts from DXF...", func() {
			a.importDXF()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Result as JSON...", func() {
			a.exportJSON()
		}),
		fyne.NewMenuItem("Export Layout PDF...", func() {
			a.exportPDF()
		}),
		fyne.NewMenuItem("Export Item Labels...", func() {
			a.exportLabels()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export All Data...", func() {
			a.exportAllData()
		}),
		fyne.NewMenuItem("Import All Data...", func() {
			a.importAllData()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	// Edit Menu
	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Clear All Parts", func() {
			a.layout.Parts = nil
			a.refreshPartsList()
		}),
		fyne.NewMenuItem("Save Settings as Defaults", func() {
			a.saveDefaults()
		}),
	)

	// Tools Menu
	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Pack", func() {
			a.runPack()
			a.tabs.SelectIndex(2) // Switch to Results tab
		}),
		fyne.NewMenuItem("Compare Scenarios", func() {
			a.showCompareDialog()
		}),
	)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	mainMenu := fyne.NewMainMenu(
		fileMenu,
		editMenu,
		toolsMenu,
		helpMenu,
	)
	a.window.SetMainMenu(mainMenu)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About NestCut",
		"NestCut - Rectangle Nesting Tool\n\n"+
			"A cross-platform desktop application for nesting\n"+
			"rectangular parts onto stock sheets.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	partsTab := container.NewTabItem("Parts", a.buildPartsPanel())
	settingsTab := container.NewTabItem("Settings", a.buildSettingsPanel())
	resultsTab := container.NewTabItem("Results", a.buildResultsPanel())

	a.tabs = container.NewAppTabs(partsTab, settingsTab, resultsTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	return a.tabs
}

// ─── Parts Panel ───────────────────────────────────────────

func (a *App) buildPartsPanel() fyne.CanvasObject {
	a.partsContainer = container.NewVBox()
	a.refreshPartsList()

	addBtn := widget.NewButtonWithIcon("Add Part", theme.ContentAddIcon(), func() {
		a.showAddPartDialog()
	})
	packBtn := widget.NewButtonWithIcon("Pack", theme.MediaPlayIcon(), func() {
		a.runPack()
		a.tabs.SelectIndex(2)
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Required Parts", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			packBtn,
			addBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.partsContainer),
	)
}

func (a *App) refreshPartsList() {
	a.partsContainer.RemoveAll()

	if len(a.layout.Parts) == 0 {
		a.partsContainer.Add(widget.NewLabel("No parts added yet. Click 'Add Part' to begin."))
		return
	}

	// Header
	header := container.NewGridWithColumns(7,
		widget.NewLabelWithStyle("Label", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Width (mm)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Height (mm)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Qty", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Rotatable", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.partsContainer.Add(header)
	a.partsContainer.Add(widget.NewSeparator())

	for i := range a.layout.Parts {
		idx := i // capture
		p := a.layout.Parts[idx]
		rotText := "yes"
		if !p.Rotatable {
			rotText = "no"
		}
		row := container.NewGridWithColumns(7,
			widget.NewLabel(p.Label),
			widget.NewLabel(fmt.Sprintf("%.1f", p.Width)),
			widget.NewLabel(fmt.Sprintf("%.1f", p.Height)),
			widget.NewLabel(fmt.Sprintf("%d", p.Quantity)),
			widget.NewLabel(rotText),
			widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
				a.showEditPartDialog(idx)
			}),
			widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				a.layout.Parts = append(a.layout.Parts[:idx], a.layout.Parts[idx+1:]...)
				a.refreshPartsList()
			}),
		)
		a.partsContainer.Add(row)
	}
}

func (a *App) showAddPartDialog() {
	labelEntry := widget.NewEntry()
	labelEntry.SetPlaceHolder("Part name")
	labelEntry.SetText(fmt.Sprintf("Part %d", len(a.layout.Parts)+1))

	widthEntry := widget.NewEntry()
	widthEntry.SetPlaceHolder("Width in mm")

	heightEntry := widget.NewEntry()
	heightEntry.SetPlaceHolder("Height in mm")

	qtyEntry := widget.NewEntry()
	qtyEntry.SetText("1")

	rotCheck := widget.NewCheck("", nil)
	rotCheck.Checked = true

	form := dialog.NewForm("Add Part", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Label", labelEntry),
			widget.NewFormItem("Width (mm)", widthEntry),
			widget.NewFormItem("Height (mm)", heightEntry),
			widget.NewFormItem("Quantity", qtyEntry),
			widget.NewFormItem("Rotatable", rotCheck),
		},
		func(ok bool) {
			if !ok {
				return
			}
			w, _ := strconv.ParseFloat(widthEntry.Text, 64)
			h, _ := strconv.ParseFloat(heightEntry.Text, 64)
			q, _ := strconv.Atoi(qtyEntry.Text)
			if w <= 0 || h <= 0 || q <= 0 {
				dialog.ShowError(fmt.Errorf("width, height, and quantity must be > 0"), a.window)
				return
			}

			part := model.NewPartSpec(labelEntry.Text, w, h, q)
			part.Rotatable = rotCheck.Checked

			a.layout.Parts = append(a.layout.Parts, part)
			a.refreshPartsList()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 350))
	form.Show()
}

func (a *App) showEditPartDialog(idx int) {
	p := a.layout.Parts[idx]

	labelEntry := widget.NewEntry()
	labelEntry.SetPlaceHolder("Part name")
	labelEntry.SetText(p.Label)

	widthEntry := widget.NewEntry()
	widthEntry.SetText(fmt.Sprintf("%.1f", p.Width))

	heightEntry := widget.NewEntry()
	heightEntry.SetText(fmt.Sprintf("%.1f", p.Height))

	qtyEntry := widget.NewEntry()
	qtyEntry.SetText(fmt.Sprintf("%d", p.Quantity))

	rotCheck := widget.NewCheck("", nil)
	rotCheck.Checked = p.Rotatable

	form := dialog.NewForm("Edit Part", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Label", labelEntry),
			widget.NewFormItem("Width (mm)", widthEntry),
			widget.NewFormItem("Height (mm)", heightEntry),
			widget.NewFormItem("Quantity", qtyEntry),
			widget.NewFormItem("Rotatable", rotCheck),
		},
		func(ok bool) {
			if !ok {
				return
			}
			w, _ := strconv.ParseFloat(widthEntry.Text, 64)
			h, _ := strconv.ParseFloat(heightEntry.Text, 64)
			q, _ := strconv.Atoi(qtyEntry.Text)
			if w <= 0 || h <= 0 || q <= 0 {
				dialog.ShowError(fmt.Errorf("width, height, and quantity must be > 0"), a.window)
				return
			}

			a.layout.Parts[idx].Label = labelEntry.Text
			a.layout.Parts[idx].Width = w
			a.layout.Parts[idx].Height = h
			a.layout.Parts[idx].Quantity = q
			a.layout.Parts[idx].Rotatable = rotCheck.Checked
			a.refreshPartsList()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 350))
	form.Show()
}

// ─── Settings Panel ────────────────────────────────────────

// binPreset defines a common stock sheet size for quick selection.
type binPreset struct {
	Label  string
	Width  float64
	Height float64
}

// Common bin presets covering standard panel sizes worldwide.
var binPresets = []binPreset{
	{Label: "Custom", Width: 0, Height: 0},
	{Label: "Full Sheet (2440 x 1220)", Width: 2440, Height: 1220},
	{Label: "Half Sheet (1220 x 1220)", Width: 1220, Height: 1220},
	{Label: "Quarter Sheet (1220 x 610)", Width: 1220, Height: 610},
	{Label: "Large Sheet (3050 x 1525)", Width: 3050, Height: 1525},
	{Label: "Euro Full (2500 x 1250)", Width: 2500, Height: 1250},
	{Label: "Euro Half (1250 x 1250)", Width: 1250, Height: 1250},
	{Label: "Small Panel (600 x 300)", Width: 600, Height: 300},
}

func (a *App) buildSettingsPanel() fyne.CanvasObject {
	c := &a.layout.Config

	// Helper to create a bound float entry
	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.1f", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				*val = v
			}
		}
		return e
	}

	intEntry := func(val *int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%d", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.Atoi(text); err == nil {
				*val = v
			}
		}
		return e
	}

	widthEntry := floatEntry(&c.BinWidth)
	heightEntry := floatEntry(&c.BinHeight)

	presetNames := make([]string, len(binPresets))
	for i, p := range binPresets {
		presetNames[i] = p.Label
	}
	presetSelect := widget.NewSelect(presetNames, func(selected string) {
		for _, p := range binPresets {
			if p.Label == selected && p.Width > 0 {
				c.BinWidth = p.Width
				c.BinHeight = p.Height
				widthEntry.SetText(fmt.Sprintf("%.0f", p.Width))
				heightEntry.SetText(fmt.Sprintf("%.0f", p.Height))
				break
			}
		}
	})
	presetSelect.PlaceHolder = "Select a preset size..."

	binSection := widget.NewCard("Bin", "", container.NewGridWithColumns(2,
		widget.NewLabel("Preset Size"), presetSelect,
		widget.NewLabel("Width (mm)"), widthEntry,
		widget.NewLabel("Height (mm)"), heightEntry,
		widget.NewLabel("Max Bins (0 = unlimited)"), intEntry(&c.MaxBins),
	))

	scoringSelect := widget.NewSelect([]string{"Best Short-Side Fit", "Best Area Fit"}, func(selected string) {
		switch selected {
		case "Best Area Fit":
			c.Scoring = model.ScoreBestArea
		default:
			c.Scoring = model.ScoreBestShortSide
		}
	})
	if c.Scoring == model.ScoreBestArea {
		scoringSelect.SetSelected("Best Area Fit")
	} else {
		scoringSelect.SetSelected("Best Short-Side Fit")
	}

	sortSelect := widget.NewSelect([]string{"Descending Area", "Input Order"}, func(selected string) {
		switch selected {
		case "Input Order":
			c.SortOrder = model.SortInputOrder
		default:
			c.SortOrder = model.SortDescendingArea
		}
	})
	if c.SortOrder == model.SortInputOrder {
		sortSelect.SetSelected("Input Order")
	} else {
		sortSelect.SetSelected("Descending Area")
	}

	rotCheck := widget.NewCheck("", func(b bool) { c.AllowRotation = b })
	rotCheck.Checked = c.AllowRotation

	originCheck := widget.NewCheck("", func(b bool) { c.OriginTopLeft = b })
	originCheck.Checked = c.OriginTopLeft

	packSection := widget.NewCard("Packing", "", container.NewGridWithColumns(2,
		widget.NewLabel("Kerf / Blade Width (mm)"), floatEntry(&c.Kerf),
		widget.NewLabel("Border Margin (mm)"), floatEntry(&c.Margin),
		widget.NewLabel("Allow 90° Rotation"), rotCheck,
		widget.NewLabel("Scoring"), scoringSelect,
		widget.NewLabel("Sort Order"), sortSelect,
	))

	outputSection := widget.NewCard("Output", "", container.NewGridWithColumns(2,
		widget.NewLabel("Top-Left Origin"), originCheck,
	))

	return container.NewVScroll(container.NewVBox(
		binSection,
		packSection,
		outputSection,
	))
}

// ─── Results Panel ─────────────────────────────────────────

func (a *App) buildResultsPanel() fyne.CanvasObject {
	a.resultContainer = container.NewStack(
		widget.NewLabel("No results yet. Add parts, then click Pack."),
	)
	return a.resultContainer
}

func (a *App) refreshResults() {
	a.resultContainer.RemoveAll()
	a.resultContainer.Add(widgets.RenderPackResult(a.layout.Result, a.layout.Config))
	a.resultContainer.Refresh()
}

// ─── Actions ───────────────────────────────────────────────

func (a *App) runPack() {
	if len(a.layout.Parts) == 0 {
		dialog.ShowInformation("Nothing to pack", "Add at least one part first.", a.window)
		return
	}

	result, err := engine.New(a.layout.Config).Pack(a.layout.Parts)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.layout.Result = &result
	a.refreshResults()
}

func (a *App) showCompareDialog() {
	if len(a.layout.Parts) == 0 {
		dialog.ShowInformation("Nothing to compare", "Add at least one part first.", a.window)
		return
	}

	scenarios := engine.BuildDefaultScenarios(a.layout.Config)
	results := engine.CompareScenarios(scenarios, a.layout.Parts)

	var lines []string
	for _, r := range results {
		line := fmt.Sprintf("%s: %d bins, %d placed, %.1f%% fill",
			r.Scenario.Name, r.BinsUsed, r.PlacedCount, r.TotalFill)
		if r.UnplacedCount > 0 {
			line += fmt.Sprintf(" (%d unplaced)", r.UnplacedCount)
		}
		lines = append(lines, line)
	}

	dialog.ShowInformation("Scenario Comparison", strings.Join(lines, "\n"), a.window)
}

func (a *App) saveDefaults() {
	a.appConfig.DefaultBinWidth = a.layout.Config.BinWidth
	a.appConfig.DefaultBinHeight = a.layout.Config.BinHeight
	a.appConfig.DefaultMargin = a.layout.Config.Margin
	a.appConfig.DefaultKerf = a.layout.Config.Kerf
	a.appConfig.DefaultRotation = a.layout.Config.AllowRotation
	a.appConfig.OriginTopLeft = a.layout.Config.OriginTopLeft

	if err := project.SaveAppConfig(project.DefaultConfigPath(), a.appConfig); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	dialog.ShowInformation("Defaults Saved", "Current settings will be used for new layouts.", a.window)
}

func (a *App) saveLayout() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.SaveLayout(path, a.layout); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.rememberLayout(path)
	}, a.window)
	d.SetFileName(a.layout.Name + ".json")
	d.Show()
}

func (a *App) loadLayout() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.loadLayoutFromPath(reader.URI().Path())
	}, a.window)
	d.Show()
}

func (a *App) loadLayoutFromPath(path string) {
	l, err := project.LoadLayout(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.layout = l
	a.refreshPartsList()
	if a.layout.Result != nil {
		a.refreshResults()
	}
	a.rememberLayout(path)
}

// rememberLayout records a layout path as most recently used, persists the
// app config and rebuilds the menus so the Open Recent entries stay current.
func (a *App) rememberLayout(path string) {
	a.appConfig.AddRecentLayout(path)
	if err := project.SaveAppConfig(project.DefaultConfigPath(), a.appConfig); err != nil {
		fmt.Printf("Warning: failed to save recent layouts: %v\n", err)
	}
	a.SetupMenus()
}

func (a *App) recentLayoutsMenuItem() *fyne.MenuItem {
	item := fyne.NewMenuItem("Open Recent", nil)
	if len(a.appConfig.RecentLayouts) == 0 {
		item.Disabled = true
		return item
	}
	var entries []*fyne.MenuItem
	for _, path := range a.appConfig.RecentLayouts {
		p := path
		entries = append(entries, fyne.NewMenuItem(filepath.Base(p), func() {
			a.loadLayoutFromPath(p)
		}))
	}
	item.ChildMenu = fyne.NewMenu("", entries...)
	return item
}

func (a *App) exportAllData() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		layoutsDir, err := project.DefaultLayoutsDir()
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if err := project.ExportBackup(path, layoutsDir, a.appConfig); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("All application data exported to:\n%s", path), a.window)
	}, a.window)
	d.SetFileName("nestcut-backup.json")
	d.Show()
}

func (a *App) importAllData() {
	dialog.ShowConfirm("Import Data",
		"Importing data will replace your current application settings.\n\nAre you sure you want to continue?",
		func(ok bool) {
			if !ok {
				return
			}
			d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
				if err != nil || reader == nil {
					return
				}
				defer reader.Close()
				backup, err := project.ImportAllData(reader.URI().Path())
				if err != nil {
					dialog.ShowError(err, a.window)
					return
				}
				a.appConfig = backup.Config
				if err := project.SaveAppConfig(project.DefaultConfigPath(), a.appConfig); err != nil {
					dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
					return
				}
				layoutsDir, err := project.DefaultLayoutsDir()
				if err != nil {
					dialog.ShowError(err, a.window)
					return
				}
				if err := project.RestoreBackup(backup, layoutsDir); err != nil {
					dialog.ShowError(err, a.window)
					return
				}
				a.SetupMenus()
				dialog.ShowInformation("Import Complete",
					fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
			}, a.window)
			d.Show()
		}, a.window)
}

// ─── Export Functions ───────────────────────────────────────

func (a *App) exportJSON() {
	if a.layout.Result == nil {
		dialog.ShowInformation("No results", "Run Pack first before exporting.", a.window)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := export.ExportJSON(writer.URI().Path(), *a.layout.Result, a.layout.Config); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName("result.json")
	d.Show()
}

func (a *App) exportPDF() {
	if a.layout.Result == nil || len(a.layout.Result.Bins) == 0 {
		dialog.ShowInformation("No results", "Run Pack first before exporting.", a.window)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := export.ExportPDF(path, *a.layout.Result, a.layout.Config); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Layout PDF saved to %s", path), a.window)
		}
	}, a.window)
	d.SetFileName(a.layout.Name + ".pdf")
	d.Show()
}

func (a *App) exportLabels() {
	if a.layout.Result == nil || len(a.layout.Result.Placements) == 0 {
		dialog.ShowInformation("No results", "Run Pack first before exporting labels.", a.window)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := export.ExportLabels(path, *a.layout.Result); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Labels saved to %s", path), a.window)
		}
	}, a.window)
	d.SetFileName("labels.pdf")
	d.Show()
}

// ─── Import Functions ───────────────────────────────────────

func (a *App) importCSV() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := partimporter.ImportCSV(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) importExcel() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := partimporter.ImportExcel(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) importDXF() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := partimporter.ImportDXF(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) handleImportResult(result partimporter.ImportResult) {
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

	// Add imported parts
	if len(result.Parts) > 0 {
		a.layout.Parts = append(a.layout.Parts, result.Parts...)
		a.refreshPartsList()

		msg := fmt.Sprintf("Successfully imported %d parts.", len(result.Parts))
		if len(result.Errors) > 0 {
			msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
		}
		dialog.ShowInformation("Import Complete", msg, a.window)
	}
}
