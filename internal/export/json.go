// Package export provides functionality for exporting nesting results to
// various file formats.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/piwi3910/NestCut/internal/model"
)

// jsonDocument is the top level structure of an exported result file.
type jsonDocument struct {
	Config     jsonConfig        `json:"config"`
	Bins       []jsonBin         `json:"bins"`
	Placements []model.Placement `json:"placements"`
	Unplaced   []jsonUnplaced    `json:"unplaced"`
	Rejected   []jsonRejected    `json:"rejected"`
	TotalFill  float64           `json:"totalFill"`
}

// jsonConfig echoes the run parameters so a result file is self-describing.
type jsonConfig struct {
	BinWidth      float64 `json:"binWidth"`
	BinHeight     float64 `json:"binHeight"`
	Margin        float64 `json:"margin"`
	Kerf          float64 `json:"kerf"`
	AllowRotation bool    `json:"allowRotation"`
	OriginTopLeft bool    `json:"originTopLeft"`
	SortOrder     string  `json:"sortOrder"`
	Scoring       string  `json:"scoring"`
	MaxBins       int     `json:"maxBins,omitempty"`
}

type jsonBin struct {
	Index  int     `json:"index"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fill   float64 `json:"fill"`
}

type jsonUnplaced struct {
	ID     string  `json:"id"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonRejected struct {
	ID       string  `json:"id"`
	Label    string  `json:"label,omitempty"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Quantity int     `json:"quantity"`
	Reason   string  `json:"reason"`
}

// MarshalResult renders a pack result and its configuration as indented JSON.
func MarshalResult(result model.PackResult, cfg model.PackConfig) ([]byte, error) {
	doc := jsonDocument{
		Config: jsonConfig{
			BinWidth:      cfg.BinWidth,
			BinHeight:     cfg.BinHeight,
			Margin:        cfg.Margin,
			Kerf:          cfg.Kerf,
			AllowRotation: cfg.AllowRotation,
			OriginTopLeft: cfg.OriginTopLeft,
			SortOrder:     string(cfg.SortOrder),
			Scoring:       string(cfg.Scoring),
			MaxBins:       cfg.MaxBins,
		},
		Bins:       make([]jsonBin, 0, len(result.Bins)),
		Placements: result.Placements,
		Unplaced:   make([]jsonUnplaced, 0, len(result.Unplaced)),
		Rejected:   make([]jsonRejected, 0, len(result.Rejected)),
		TotalFill:  result.TotalFill(),
	}
	if doc.Placements == nil {
		doc.Placements = []model.Placement{}
	}

	for _, b := range result.Bins {
		doc.Bins = append(doc.Bins, jsonBin{
			Index:  b.Index,
			Width:  b.Width,
			Height: b.Height,
			Fill:   result.Fill(b.Index),
		})
	}
	for _, it := range result.Unplaced {
		doc.Unplaced = append(doc.Unplaced, jsonUnplaced{
			ID:     it.ID,
			Width:  it.Width,
			Height: it.Height,
		})
	}
	for _, r := range result.Rejected {
		doc.Rejected = append(doc.Rejected, jsonRejected{
			ID:       r.Part.ID,
			Label:    r.Part.Label,
			Width:    r.Part.Width,
			Height:   r.Part.Height,
			Quantity: r.Part.Quantity,
			Reason:   r.Reason,
		})
	}

	return json.MarshalIndent(doc, "", "  ")
}

// ExportJSON writes a pack result to a JSON file.
func ExportJSON(path string, result model.PackResult, cfg model.PackConfig) error {
	data, err := MarshalResult(result, cfg)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write result file: %w", err)
	}
	return nil
}
