// Command analyze prints quick, human-readable heuristics about scenario
// files in the project's configs directory. It summarizes dimensions, battery
// settings, obstacle density, and highlights cells the robot cannot reach on
// the starting battery alone (movement costs one unit per step, diagonal
// steps included, so range is measured in Chebyshev distance).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeneen24/robot-grid-simulator/sim/engine"
)

// AnalysisPoint denotes a grid coordinate used during analysis output.
type AnalysisPoint struct {
	X, Y int
}

func main() {
	files, err := filepath.Glob(filepath.Join("configs", "*.json"))
	if err != nil {
		fmt.Printf("Error finding scenario files: %v\n", err)
		os.Exit(1)
	}

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		analyzeScenario(file)
	}
}

func analyzeScenario(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var sc engine.Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", sc.Name)
	fmt.Printf("Grid Size: %d x %d\n", sc.GridWidth, sc.GridHeight)
	fmt.Printf("Expandable: %v\n", sc.Expandable)
	fmt.Printf("Starting Battery: %d\n", sc.StartingBattery)
	fmt.Printf("Start Position: (%d, %d) facing %s\n", sc.Start.X, sc.Start.Y, sc.StartHeading)

	obstacles := map[AnalysisPoint]bool{}
	for _, o := range sc.Obstacles {
		obstacles[AnalysisPoint{o[0], o[1]}] = true
	}

	totalCells := sc.GridWidth * sc.GridHeight
	fmt.Printf("Obstacles: %d (%.0f%% of %d cells)\n",
		len(obstacles), float64(len(obstacles))*100/float64(totalCells), totalCells)

	// A one-way trip costs Chebyshev distance in battery, ignoring detours
	// around obstacles. Cells further than the starting battery need at
	// least one charge command along the way.
	outOfRange := []AnalysisPoint{}
	maxDist := 0
	for y := 0; y < sc.GridHeight; y++ {
		for x := 0; x < sc.GridWidth; x++ {
			if obstacles[AnalysisPoint{x, y}] {
				continue
			}
			dist := chebyshev(x-sc.Start.X, y-sc.Start.Y)
			if dist > maxDist {
				maxDist = dist
			}
			if dist > sc.StartingBattery {
				outOfRange = append(outOfRange, AnalysisPoint{x, y})
			}
		}
	}

	fmt.Printf("Farthest free cell: %d step(s) from start\n", maxDist)

	if len(outOfRange) > 0 {
		fmt.Printf("⚠️  WARNING: %d cells exceed the starting battery range!\n", len(outOfRange))
		fmt.Printf("   Starting battery: %d, reaching them requires charging en route\n", sc.StartingBattery)
		for i, p := range outOfRange {
			if i < 5 { // Show first 5 out-of-range cells
				fmt.Printf("   Out of range: (%d, %d)\n", p.X, p.Y)
			}
		}
		if len(outOfRange) > 5 {
			fmt.Printf("   ... and %d more\n", len(outOfRange)-5)
		}
	} else {
		fmt.Printf("✅ Every free cell is reachable on the starting battery\n")
	}
}

// chebyshev returns max(|dx|, |dy|), the step count for a path that may
// move diagonally.
func chebyshev(dx, dy int) int {
	dx, dy = abs(dx), abs(dy)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
