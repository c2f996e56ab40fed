package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/NestCut/internal/model"
)

// BackupData is the top-level structure for import/export of all application data.
type BackupData struct {
	Version   string          `json:"version"`
	CreatedAt string          `json:"created_at"`
	Config    model.AppConfig `json:"config"`
	Layouts   []model.Layout  `json:"layouts,omitempty"`
}

// ExportAllData exports all application data (config and saved layouts)
// to a single JSON file at the specified path.
func ExportAllData(exportPath string, config model.AppConfig, layouts []model.Layout) error {
	backup := BackupData{
		Version:   "1.0.0",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Layouts:   layouts,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup data: %w", err)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ExportBackup gathers the app config and every layout saved under
// layoutsDir into a single backup file at exportPath. Layouts that fail to
// load are skipped.
func ExportBackup(exportPath, layoutsDir string, config model.AppConfig) error {
	paths, err := ListLayouts(layoutsDir)
	if err != nil {
		return fmt.Errorf("failed to list saved layouts: %w", err)
	}
	var layouts []model.Layout
	for _, p := range paths {
		layout, err := LoadLayout(p)
		if err != nil {
			continue
		}
		layouts = append(layouts, layout)
	}
	return ExportAllData(exportPath, config, layouts)
}

// RestoreBackup writes the layouts contained in a backup back into
// layoutsDir, one file per layout named after it. The caller is responsible
// for applying backup.Config.
func RestoreBackup(backup BackupData, layoutsDir string) error {
	for i, layout := range backup.Layouts {
		name := layout.Name
		if name == "" {
			name = fmt.Sprintf("restored-%d", i+1)
		}
		path := filepath.Join(layoutsDir, name+".json")
		if err := SaveLayout(path, layout); err != nil {
			return fmt.Errorf("failed to restore layout %q: %w", name, err)
		}
	}
	return nil
}

// ImportAllData reads a backup JSON file and returns the contained data.
// The caller is responsible for applying the imported config and layouts.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	// Ensure RecentLayouts is never nil
	if backup.Config.RecentLayouts == nil {
		backup.Config.RecentLayouts = []string{}
	}
	return backup, nil
}
