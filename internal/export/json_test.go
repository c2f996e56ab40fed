package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/NestCut/internal/model"
)

func TestMarshalResult(t *testing.T) {
	result := buildTestResult()
	result.Unplaced = []model.Item{{ID: "huge", Width: 3000, Height: 2000}}
	result.Rejected = []model.Rejection{
		{Part: model.PartSpec{ID: "bad", Width: -1, Height: 10, Quantity: 1}, Reason: "width must be positive"},
	}
	cfg := buildTestConfig()

	data, err := MarshalResult(result, cfg)
	if err != nil {
		t.Fatalf("MarshalResult returned error: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	config, ok := doc["config"].(map[string]interface{})
	if !ok {
		t.Fatal("missing config section")
	}
	if config["binWidth"] != 2440.0 {
		t.Errorf("expected binWidth 2440, got %v", config["binWidth"])
	}
	if config["kerf"] != cfg.Kerf {
		t.Errorf("expected kerf %v, got %v", cfg.Kerf, config["kerf"])
	}

	bins, ok := doc["bins"].([]interface{})
	if !ok || len(bins) != 2 {
		t.Fatalf("expected 2 bins, got %v", doc["bins"])
	}
	firstBin := bins[0].(map[string]interface{})
	if _, ok := firstBin["fill"]; !ok {
		t.Error("bin entries should carry a fill percentage")
	}

	placements, ok := doc["placements"].([]interface{})
	if !ok || len(placements) != 4 {
		t.Fatalf("expected 4 placements, got %v", doc["placements"])
	}

	unplaced, ok := doc["unplaced"].([]interface{})
	if !ok || len(unplaced) != 1 {
		t.Fatalf("expected 1 unplaced item, got %v", doc["unplaced"])
	}

	rejected, ok := doc["rejected"].([]interface{})
	if !ok || len(rejected) != 1 {
		t.Fatalf("expected 1 rejected part, got %v", doc["rejected"])
	}
	firstRejected := rejected[0].(map[string]interface{})
	if firstRejected["reason"] != "width must be positive" {
		t.Errorf("unexpected rejection reason: %v", firstRejected["reason"])
	}
}

func TestMarshalResult_EmptyResult(t *testing.T) {
	data, err := MarshalResult(model.PackResult{}, buildTestConfig())
	if err != nil {
		t.Fatalf("MarshalResult returned error: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc["totalFill"] != 0.0 {
		t.Errorf("expected totalFill 0, got %v", doc["totalFill"])
	}
	// Empty collections serialize as arrays, not null
	if _, ok := doc["placements"].([]interface{}); !ok {
		t.Errorf("expected placements to be an array, got %T", doc["placements"])
	}
}

func TestExportJSON_WritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result.json")

	err := ExportJSON(path, buildTestResult(), buildTestConfig())
	if err != nil {
		t.Fatalf("ExportJSON returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("JSON file was not created: %v", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("file content is not valid JSON: %v", err)
	}
}

func TestExportJSON_BadPath(t *testing.T) {
	err := ExportJSON("/nonexistent/dir/result.json", buildTestResult(), buildTestConfig())
	if err == nil {
		t.Fatal("expected error for unwritable path, got nil")
	}
}
