package main

import (
	"os"
	"strings"
	"testing"
)

// writeTempScenario writes a scenario JSON body to a temp file and returns
// its path. The file is removed when the test finishes.
func writeTempScenario(t *testing.T, body string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "test_scenario_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	if _, err := tmpfile.Write([]byte(body)); err != nil {
		t.Fatalf("Failed to write scenario: %v", err)
	}
	tmpfile.Close()
	return tmpfile.Name()
}

func TestValidateScenarioFile_Valid(t *testing.T) {
	path := writeTempScenario(t, `{
		"name": "test",
		"description": "Test scenario",
		"grid_width": 5,
		"grid_height": 5,
		"expandable": false,
		"obstacles": [[2, 2], [3, 1]],
		"start": {"x": 0, "y": 0},
		"start_heading": "N",
		"starting_battery": 100
	}`)

	result := validateScenarioFile(path)
	if !result.Valid {
		t.Errorf("Expected valid scenario, but got errors: %v", result.Errors)
	}

	joined := strings.Join(result.Errors, "\n")
	if !strings.Contains(joined, "✓ Structure") {
		t.Errorf("Expected structure info line, got: %v", result.Errors)
	}
	if !strings.Contains(joined, "All 23 free cells reachable") {
		t.Errorf("Expected connectivity info line, got: %v", result.Errors)
	}
}

func TestValidateScenarioFile_MissingName(t *testing.T) {
	path := writeTempScenario(t, `{
		"grid_width": 5,
		"grid_height": 5,
		"start": {"x": 0, "y": 0},
		"start_heading": "N",
		"starting_battery": 100
	}`)

	result := validateScenarioFile(path)
	if result.Valid {
		t.Error("Expected invalid scenario for missing name")
	}
	if !containsError(result.Errors, "Name is required") {
		t.Errorf("Expected name error, got: %v", result.Errors)
	}
}

func TestValidateScenarioFile_BadBatteryAndHeading(t *testing.T) {
	path := writeTempScenario(t, `{
		"name": "broken",
		"grid_width": 4,
		"grid_height": 4,
		"start": {"x": 0, "y": 0},
		"start_heading": "up",
		"starting_battery": 150
	}`)

	result := validateScenarioFile(path)
	if result.Valid {
		t.Error("Expected invalid scenario")
	}
	if !containsError(result.Errors, "Starting battery must be between 1 and 100") {
		t.Errorf("Expected battery error, got: %v", result.Errors)
	}
	if !containsError(result.Errors, `Invalid start heading "up"`) {
		t.Errorf("Expected heading error, got: %v", result.Errors)
	}
}

func TestValidateScenarioFile_ObstacleProblems(t *testing.T) {
	path := writeTempScenario(t, `{
		"name": "bad-obstacles",
		"grid_width": 3,
		"grid_height": 3,
		"obstacles": [[5, 5], [1, 1], [1, 1], [0, 0]],
		"start": {"x": 0, "y": 0},
		"start_heading": "N",
		"starting_battery": 50
	}`)

	result := validateScenarioFile(path)
	if result.Valid {
		t.Error("Expected invalid scenario")
	}
	if !containsError(result.Errors, "Obstacle (5,5) outside 3x3 grid") {
		t.Errorf("Expected out-of-bounds obstacle error, got: %v", result.Errors)
	}
	if !containsError(result.Errors, "Duplicate obstacle (1,1)") {
		t.Errorf("Expected duplicate obstacle error, got: %v", result.Errors)
	}
	if !containsError(result.Errors, "Obstacle (0,0) sits on the start cell") {
		t.Errorf("Expected start-cell obstacle error, got: %v", result.Errors)
	}
}

func TestValidateScenarioFile_UnreachableCells(t *testing.T) {
	// A full obstacle column walls off x=2 from the start at x=0.
	path := writeTempScenario(t, `{
		"name": "walled",
		"grid_width": 3,
		"grid_height": 3,
		"obstacles": [[1, 0], [1, 1], [1, 2]],
		"start": {"x": 0, "y": 0},
		"start_heading": "N",
		"starting_battery": 100
	}`)

	result := validateScenarioFile(path)
	if result.Valid {
		t.Error("Expected invalid scenario for unreachable cells")
	}
	if !containsError(result.Errors, "Connectivity failure: 3/6 free cells unreachable from start") {
		t.Errorf("Expected connectivity error, got: %v", result.Errors)
	}
	if !containsError(result.Errors, "Unreachable: Cell at (2,0)") {
		t.Errorf("Expected unreachable cell listed, got: %v", result.Errors)
	}
}

func TestValidateScenarioFile_DiagonalGapIsPassable(t *testing.T) {
	// Obstacles at (0,1) and (1,0) leave a diagonal step from (0,0) to (1,1).
	path := writeTempScenario(t, `{
		"name": "diagonal-gap",
		"grid_width": 2,
		"grid_height": 2,
		"obstacles": [[0, 1], [1, 0]],
		"start": {"x": 0, "y": 0},
		"start_heading": "NE",
		"starting_battery": 10
	}`)

	result := validateScenarioFile(path)
	if !result.Valid {
		t.Errorf("Expected valid scenario, got errors: %v", result.Errors)
	}
}

func TestValidateScenarioFile_InvalidJSON(t *testing.T) {
	path := writeTempScenario(t, `{not json`)

	result := validateScenarioFile(path)
	if result.Valid {
		t.Error("Expected invalid result for malformed JSON")
	}
	if !containsError(result.Errors, "Invalid JSON") {
		t.Errorf("Expected JSON error, got: %v", result.Errors)
	}
}

func TestValidateScenarioFile_MissingFile(t *testing.T) {
	result := validateScenarioFile("/nonexistent/scenario.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
	if !containsError(result.Errors, "Failed to read file") {
		t.Errorf("Expected read error, got: %v", result.Errors)
	}
}

func containsError(errors []string, substr string) bool {
	for _, e := range errors {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}
