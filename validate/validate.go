// Command validate provides a small CLI that validates scenario JSON files in
// the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Grid dimensions and starting battery constraints
//   - Start position and heading validity
//   - Obstacle bounds and duplicates
//   - Connectivity: every free cell is reachable from the start position
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeneen24/robot-grid-simulator/sim/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateScenarioFile loads and validates a single scenario JSON file.
// It performs structural checks, start/obstacle validation, and a
// reachability analysis over the free cells.
func validateScenarioFile(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var sc engine.Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	// Structural checks, collected individually so one report shows them all.
	if sc.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Name is required")
	}
	if sc.GridWidth < 1 || sc.GridHeight < 1 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Grid dimensions must be positive, got %dx%d", sc.GridWidth, sc.GridHeight))
	}
	if sc.StartingBattery < 1 || sc.StartingBattery > engine.MaxBattery {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Starting battery must be between 1 and %d, got %d", engine.MaxBattery, sc.StartingBattery))
	}
	if _, ok := engine.ParseHeading(sc.StartHeading); !ok {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid start heading %q", sc.StartHeading))
	}
	if sc.GridWidth > 0 && sc.GridHeight > 0 {
		if sc.Start.X < 0 || sc.Start.X >= sc.GridWidth || sc.Start.Y < 0 || sc.Start.Y >= sc.GridHeight {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Start (%d,%d) outside %dx%d grid", sc.Start.X, sc.Start.Y, sc.GridWidth, sc.GridHeight))
		}
	}

	seen := map[[2]int]bool{}
	for _, o := range sc.Obstacles {
		x, y := o[0], o[1]
		if x < 0 || x >= sc.GridWidth || y < 0 || y >= sc.GridHeight {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Obstacle (%d,%d) outside %dx%d grid", x, y, sc.GridWidth, sc.GridHeight))
			continue
		}
		if x == sc.Start.X && y == sc.Start.Y {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Obstacle (%d,%d) sits on the start cell", x, y))
		}
		if seen[[2]int{x, y}] {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Duplicate obstacle (%d,%d)", x, y))
		}
		seen[[2]int{x, y}] = true
	}

	if !result.Valid {
		return result
	}

	result.Errors = append(result.Errors,
		fmt.Sprintf("✓ Structure: %dx%d grid, %d obstacles, battery %d", sc.GridWidth, sc.GridHeight, len(sc.Obstacles), sc.StartingBattery))

	return validateConnectivity(&sc, result)
}

// validateConnectivity flood fills from the start cell over the free cells,
// moving in the eight directions the robot can travel, and flags any free
// cell the robot could never reach.
func validateConnectivity(sc *engine.Scenario, result ValidationResult) ValidationResult {
	obstacles := map[[2]int]bool{}
	for _, o := range sc.Obstacles {
		obstacles[[2]int{o[0], o[1]}] = true
	}

	isPassable := func(x, y int) bool {
		if x < 0 || x >= sc.GridWidth || y < 0 || y >= sc.GridHeight {
			return false
		}
		return !obstacles[[2]int{x, y}]
	}

	// BFS from the start cell.
	visited := map[string]bool{}
	queue := [][2]int{{sc.Start.X, sc.Start.Y}}
	visited[fmt.Sprintf("%d,%d", sc.Start.X, sc.Start.Y)] = true

	directions := [][2]int{
		{0, 1}, {1, 1}, {1, 0}, {1, -1},
		{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]

		for _, d := range directions {
			nx, ny := cell[0]+d[0], cell[1]+d[1]
			key := fmt.Sprintf("%d,%d", nx, ny)
			if !visited[key] && isPassable(nx, ny) {
				visited[key] = true
				queue = append(queue, [2]int{nx, ny})
			}
		}
	}

	// Check if all free cells are reachable
	unreachable := []string{}
	freeCells := 0
	for y := 0; y < sc.GridHeight; y++ {
		for x := 0; x < sc.GridWidth; x++ {
			if obstacles[[2]int{x, y}] {
				continue
			}
			freeCells++
			if !visited[fmt.Sprintf("%d,%d", x, y)] {
				unreachable = append(unreachable, fmt.Sprintf("Cell at (%d,%d)", x, y))
			}
		}
	}

	if len(unreachable) > 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Connectivity failure: %d/%d free cells unreachable from start", len(unreachable), freeCells))
		for _, cell := range unreachable {
			result.Errors = append(result.Errors, fmt.Sprintf("Unreachable: %s", cell))
		}
	} else {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Connectivity: All %d free cells reachable from start", freeCells))
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding scenario files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateScenarioFile(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All scenarios are valid!")
	} else {
		fmt.Println("❌ Some scenarios have errors")
		os.Exit(1)
	}
}
