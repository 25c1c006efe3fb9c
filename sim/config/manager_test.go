package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jeneen24/robot-grid-simulator/sim/engine"
)

const testScenario = `{
  "name": "test-field",
  "description": "A small test field.",
  "grid_width": 6,
  "grid_height": 4,
  "expandable": true,
  "obstacles": [[2, 2], [3, 1]],
  "start": {"x": 0, "y": 0},
  "start_heading": "E",
  "starting_battery": 75
}`

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "test-field.json"), []byte(testScenario), 0644); err != nil {
		t.Fatalf("Failed to write scenario file: %v", err)
	}
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	return m
}

func TestNewManager_MissingDirectory(t *testing.T) {
	if _, err := NewManager("/no/such/directory"); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestLoadScenario(t *testing.T) {
	m := newTestManager(t)

	sc, err := m.LoadScenario("test-field")
	if err != nil {
		t.Fatalf("LoadScenario failed: %v", err)
	}
	if sc.Name != "test-field" {
		t.Errorf("Expected name test-field, got %s", sc.Name)
	}
	if sc.GridWidth != 6 || sc.GridHeight != 4 {
		t.Errorf("Expected 6x4 grid, got %dx%d", sc.GridWidth, sc.GridHeight)
	}
	if !sc.Expandable {
		t.Error("Expected expandable grid")
	}
	if len(sc.Obstacles) != 2 {
		t.Errorf("Expected 2 obstacles, got %d", len(sc.Obstacles))
	}
	if sc.StartHeading != "E" {
		t.Errorf("Expected start heading E, got %s", sc.StartHeading)
	}
	if sc.StartingBattery != 75 {
		t.Errorf("Expected starting battery 75, got %d", sc.StartingBattery)
	}

	// The loaded scenario builds a working simulation.
	if _, err := engine.NewSimulation(sc); err != nil {
		t.Errorf("Loaded scenario failed to build a simulation: %v", err)
	}
}

func TestLoadScenario_NotFound(t *testing.T) {
	m := newTestManager(t)
	_, err := m.LoadScenario("nope")
	if !errors.Is(err, ErrScenarioNotFound) {
		t.Errorf("Expected ErrScenarioNotFound, got %v", err)
	}
}

func TestLoadScenario_Invalid(t *testing.T) {
	dir := t.TempDir()
	bad := `{"name": "bad", "grid_width": 0, "grid_height": 5, "start_heading": "N", "starting_battery": 100}`
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte(bad), 0644); err != nil {
		t.Fatalf("Failed to write scenario file: %v", err)
	}
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	_, err = m.LoadScenario("bad")
	if !errors.Is(err, ErrInvalidScenario) {
		t.Errorf("Expected ErrInvalidScenario, got %v", err)
	}
}

func TestListScenarios(t *testing.T) {
	m := newTestManager(t)

	infos, err := m.ListScenarios()
	if err != nil {
		t.Fatalf("ListScenarios failed: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("Expected 1 scenario, got %d", len(infos))
	}
	if infos[0].ScenarioID != "test-field" {
		t.Errorf("Expected scenario ID test-field, got %s", infos[0].ScenarioID)
	}
	if infos[0].GridWidth != 6 {
		t.Errorf("Expected grid width 6, got %d", infos[0].GridWidth)
	}
}

func TestSaveScenario(t *testing.T) {
	m := newTestManager(t)

	sc := engine.DefaultScenario()
	sc.Name = "saved"
	if err := m.SaveScenario("saved", sc); err != nil {
		t.Fatalf("SaveScenario failed: %v", err)
	}

	loaded, err := m.LoadScenario("saved")
	if err != nil {
		t.Fatalf("LoadScenario after save failed: %v", err)
	}
	if loaded.Name != "saved" {
		t.Errorf("Expected name saved, got %s", loaded.Name)
	}
}

func TestSaveScenario_RejectsInvalid(t *testing.T) {
	m := newTestManager(t)

	sc := engine.DefaultScenario()
	sc.GridWidth = -1
	if err := m.SaveScenario("broken", sc); err == nil {
		t.Error("Expected error saving invalid scenario")
	}
}

func TestGetDefault(t *testing.T) {
	m := newTestManager(t)
	sc := m.GetDefault()
	if err := engine.ValidateScenario(sc); err != nil {
		t.Errorf("Default scenario should validate, got %v", err)
	}
}
