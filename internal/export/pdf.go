package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/NestCut/internal/model"
)

// partColor represents an RGB color for a placed item.
type partColor struct {
	R, G, B int
}

// partColors mirrors the color scheme used in the UI bin canvas widget.
var partColors = []partColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// colorIndex assigns palette slots to base part IDs in order of first
// appearance, so all copies of one part share a color across pages.
type colorIndex map[string]int

func (ci colorIndex) colorFor(itemID string) partColor {
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

// ExportPDF generates a PDF document containing the nesting results.
// Each bin is rendered on its own page with a visual layout diagram,
// followed by a summary page with overall statistics.
func ExportPDF(path string, result model.PackResult, cfg model.PackConfig) error {
	if len(result.Bins) == 0 {
		return fmt.Errorf("no bins to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	colors := colorIndex{}
	for _, bin := range result.Bins {
		pdf.AddPage()
		renderBinPage(pdf, bin, result, cfg, colors)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result, cfg)

	return pdf.OutputFileAndClose(path)
}

// renderBinPage draws a single bin layout on the current PDF page.
func renderBinPage(pdf *fpdf.Fpdf, bin model.Bin, result model.PackResult, cfg model.PackConfig, colors colorIndex) {
	placements := result.BinPlacements(bin.Index)

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Bin %d (%.0f x %.0f mm)", bin.Index+1, bin.Width, bin.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Items: %d | Used area: %.0f mm² | Total area: %.0f mm² | Fill: %.1f%%",
		len(placements), result.UsedArea(bin.Index), bin.Width*bin.Height, result.Fill(bin.Index))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Calculate drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight

	// Calculate scale to fit the bin within the drawing area
	scale := math.Min(drawWidth/bin.Width, drawHeight/bin.Height)

	canvasW := bin.Width * scale
	canvasH := bin.Height * scale

	// Center the drawing horizontally
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Bin background
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Packable area outline when a border margin is set
	if cfg.Margin > 0 {
		m := cfg.Margin * scale
		pdf.SetDrawColor(160, 120, 80)
		pdf.SetLineWidth(0.2)
		pdf.Rect(offsetX+m, offsetY+m, canvasW-2*m, canvasH-2*m, "D")
	}

	// Placed items. The page is drawn top-down, so bottom-left origin
	// coordinates are flipped here.
	for _, p := range placements {
		col := colors.colorFor(p.ItemID)
		pw := p.Width * scale
		ph := p.Height * scale
		px := offsetX + p.X*scale
		py := offsetY + p.Y*scale
		if !cfg.OriginTopLeft {
			py = offsetY + (bin.Height-p.Y-p.Height)*scale
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		// Item label (only if rectangle is large enough)
		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := p.ItemID
			dims := fmt.Sprintf("%.0fx%.0f", p.Width, p.Height)

			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			// First line: item ID
			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}

			// Second line: dimensions
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, bin, scale, offsetX, offsetY, canvasW, canvasH)
	drawItemsLegend(pdf, placements, colors, offsetY+canvasH+5)
}

// drawDimensionAnnotations adds width and height dimension labels outside the bin rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, bin model.Bin, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Width annotation (below the bin)
	widthLabel := fmt.Sprintf("%.0f mm", bin.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Height annotation (to the left of the bin, rotated)
	heightLabel := fmt.Sprintf("%.0f mm", bin.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawItemsLegend renders a compact legend of placed items at the bottom of the bin page.
func drawItemsLegend(pdf *fpdf.Fpdf, placements []model.Placement, colors colorIndex, startY float64) {
	if len(placements) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Items placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for _, p := range placements {
		col := colors.colorFor(p.ItemID)
		label := fmt.Sprintf("%s (%.0fx%.0f)", p.ItemID, p.Width, p.Height)
		if p.Rotated {
			label += " R"
		}
		labelW := pdf.GetStringWidth(label) + 6

		// Wrap to next line if needed
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		// Color swatch
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final summary page with overall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.PackResult, cfg model.PackConfig) {
	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Nesting Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Bins Used", fmt.Sprintf("%d", len(result.Bins))},
		{"Overall Fill", fmt.Sprintf("%.1f%%", result.TotalFill())},
		{"Items Placed", fmt.Sprintf("%d", len(result.Placements))},
		{"Unplaced Items", fmt.Sprintf("%d", len(result.Unplaced))},
		{"Rejected Parts", fmt.Sprintf("%d", len(result.Rejected))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Per-bin breakdown table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Bin Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 50, 35, 35, 60}
	headers := []string{"Bin", "Dimensions", "Items", "Fill", "Used / Total Area"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, bin := range result.Bins {
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", bin.Index+1),
			fmt.Sprintf("%.0f x %.0f mm", bin.Width, bin.Height),
			fmt.Sprintf("%d", len(result.BinPlacements(bin.Index))),
			fmt.Sprintf("%.1f%%", result.Fill(bin.Index)),
			fmt.Sprintf("%.0f / %.0f mm²", result.UsedArea(bin.Index), bin.Width*bin.Height),
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Unplaced items warning
	if len(result.Unplaced) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Unplaced Items", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)

		for _, it := range result.Unplaced {
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s: %.0f x %.0f mm", it.ID, it.Width, it.Height)
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	// Run settings summary
	y += 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Settings", "", 0, "L", false, 0, "")
	y += 9

	rotation := "no"
	if cfg.AllowRotation {
		rotation = "yes"
	}
	settingsItems := []struct {
		label string
		value string
	}{
		{"Bin Size", fmt.Sprintf("%.0f x %.0f mm", cfg.BinWidth, cfg.BinHeight)},
		{"Kerf Width", fmt.Sprintf("%.1f mm", cfg.Kerf)},
		{"Border Margin", fmt.Sprintf("%.1f mm", cfg.Margin)},
		{"Rotation", rotation},
		{"Scoring", string(cfg.Scoring)},
		{"Sort Order", string(cfg.SortOrder)},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range settingsItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by NestCut - Rectangle Nesting Tool", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
