package widgets

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/NestCut/internal/model"
)

// Item colors, cycled for visual distinction.
var partColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

// colorIndex assigns palette slots to base part IDs in order of first
// appearance, so all copies of one part share a color across bins.
type colorIndex map[string]int

func (ci colorIndex) colorFor(itemID string) color.NRGBA {
	base := itemID
	if i := strings.LastIndex(base, "#"); i > 0 {
		base = base[:i]
	}
	idx, ok := ci[base]
	if !ok {
		idx = len(ci)
		ci[base] = idx
	}
	return partColors[idx%len(partColors)]
}

// BinCanvas renders a visual representation of a single packed bin.
type BinCanvas struct {
	widget.BaseWidget
	bin        model.Bin
	placements []model.Placement
	cfg        model.PackConfig
	colors     colorIndex
	maxWidth   float32
	maxHeight  float32
}

func NewBinCanvas(bin model.Bin, placements []model.Placement, cfg model.PackConfig, colors colorIndex, maxW, maxH float32) *BinCanvas {
	bc := &BinCanvas{
		bin:        bin,
		placements: placements,
		cfg:        cfg,
		colors:     colors,
		maxWidth:   maxW,
		maxHeight:  maxH,
	}
	bc.ExtendBaseWidget(bc)
	return bc
}

func (bc *BinCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newBinCanvasRenderer(bc)
}

type binCanvasRenderer struct {
	bc      *BinCanvas
	objects []fyne.CanvasObject
}

func newBinCanvasRenderer(bc *BinCanvas) *binCanvasRenderer {
	r := &binCanvasRenderer{bc: bc}
	r.rebuild()
	return r
}

func (r *binCanvasRenderer) scale() float32 {
	binW := float32(r.bc.bin.Width)
	binH := float32(r.bc.bin.Height)
	scale := r.bc.maxWidth / binW
	if s := r.bc.maxHeight / binH; s < scale {
		scale = s
	}
	return scale
}

func (r *binCanvasRenderer) rebuild() {
	r.objects = nil

	bin := r.bc.bin
	scale := r.scale()
	canvasW := float32(bin.Width) * scale
	canvasH := float32(bin.Height) * scale

	// Bin background
	bg := canvas.NewRectangle(color.NRGBA{R: 210, G: 180, B: 140, A: 255}) // wood color
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	bg.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, bg)

	// Bin border
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	border.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, border)

	// Packable area outline when a border margin is set
	if r.bc.cfg.Margin > 0 {
		m := float32(r.bc.cfg.Margin) * scale
		inner := canvas.NewRectangle(color.Transparent)
		inner.StrokeColor = color.NRGBA{R: 160, G: 120, B: 80, A: 255}
		inner.StrokeWidth = 1
		inner.Resize(fyne.NewSize(canvasW-2*m, canvasH-2*m))
		inner.Move(fyne.NewPos(m, m))
		r.objects = append(r.objects, inner)
	}

	// Placed items. The canvas draws top-down, so bottom-left origin
	// coordinates are flipped here.
	for _, p := range r.bc.placements {
		col := r.bc.colors.colorFor(p.ItemID)
		pw := float32(p.Width) * scale
		ph := float32(p.Height) * scale
		px := float32(p.X) * scale
		py := float32(p.Y) * scale
		if !r.bc.cfg.OriginTopLeft {
			py = float32(bin.Height-p.Y-p.Height) * scale
		}

		itemRect := canvas.NewRectangle(col)
		itemRect.Resize(fyne.NewSize(pw, ph))
		itemRect.Move(fyne.NewPos(px, py))
		r.objects = append(r.objects, itemRect)

		itemBorder := canvas.NewRectangle(color.Transparent)
		itemBorder.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		itemBorder.StrokeWidth = 1
		itemBorder.Resize(fyne.NewSize(pw, ph))
		itemBorder.Move(fyne.NewPos(px, py))
		r.objects = append(r.objects, itemBorder)

		// Label (only if big enough)
		if pw > 30 && ph > 16 {
			text := fmt.Sprintf("%s\n%.0fx%.0f", p.ItemID, p.Width, p.Height)
			if p.Rotated {
				text += " R"
			}
			label := canvas.NewText(text, color.Black)
			label.TextSize = 10
			label.Move(fyne.NewPos(px+3, py+2))
			r.objects = append(r.objects, label)
		}
	}
}

func (r *binCanvasRenderer) Layout(size fyne.Size)        {}
func (r *binCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *binCanvasRenderer) Destroy()                     {}
func (r *binCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *binCanvasRenderer) MinSize() fyne.Size {
	scale := r.scale()
	return fyne.NewSize(float32(r.bc.bin.Width)*scale, float32(r.bc.bin.Height)*scale)
}

// RenderPackResult creates a scrollable container of all packed bins.
func RenderPackResult(result *model.PackResult, cfg model.PackConfig) fyne.CanvasObject {
	if result == nil || len(result.Bins) == 0 {
		return widget.NewLabel("No results yet. Add parts, then click Pack.")
	}

	colors := colorIndex{}
	var items []fyne.CanvasObject

	for _, bin := range result.Bins {
		placements := result.BinPlacements(bin.Index)
		header := widget.NewLabel(fmt.Sprintf(
			"Bin %d (%.0f × %.0f) - %d items, %.1f%% fill",
			bin.Index+1, bin.Width, bin.Height,
			len(placements), result.Fill(bin.Index),
		))
		header.TextStyle = fyne.TextStyle{Bold: true}

		binCanvas := NewBinCanvas(bin, placements, cfg, colors, 600, 400)

		items = append(items, header, binCanvas, widget.NewSeparator())
	}

	if len(result.Unplaced) > 0 {
		warning := widget.NewLabel(fmt.Sprintf(
			"WARNING: %d items could not be placed!",
			len(result.Unplaced),
		))
		warning.Importance = widget.DangerImportance
		items = append(items, warning)
	}

	if len(result.Rejected) > 0 {
		for _, rej := range result.Rejected {
			note := widget.NewLabel(fmt.Sprintf(
				"Rejected %s: %s", rej.Part.Label, rej.Reason,
			))
			note.Importance = widget.WarningImportance
			items = append(items, note)
		}
	}

	summary := widget.NewLabel(fmt.Sprintf(
		"Total: %d bins used, %.1f%% overall fill",
		len(result.Bins), result.TotalFill(),
	))
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, summary)

	return container.NewVScroll(container.NewVBox(items...))
}
