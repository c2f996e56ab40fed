// Package project handles persistence of layouts and application settings
// as JSON files under the user's configuration directory.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/NestCut/internal/model"
)

// DefaultLayoutsDir returns the default directory for saved layouts.
// This is located at ~/.nestcut/layouts.
func DefaultLayoutsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".nestcut", "layouts"), nil
}

// SaveLayout writes a layout to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveLayout(path string, layout model.Layout) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadLayout reads a layout from the specified JSON file.
func LoadLayout(path string) (model.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Layout{}, err
	}
	var layout model.Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return model.Layout{}, err
	}
	// Ensure Parts is never nil
	if layout.Parts == nil {
		layout.Parts = []model.PartSpec{}
	}
	return layout, nil
}

// ListLayouts returns the paths of all layouts saved under dir, sorted by
// name. A missing directory yields an empty list.
func ListLayouts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}
